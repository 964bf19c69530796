package academics

import "fmt"

// Staff is a non-teaching university employee.
type Staff struct {
	Person

	staffID    string
	department string
	position   string
	salary     float64
}

// NewStaff creates a staff member.
func NewStaff(name, email, phone, department, position string, salary float64) (*Staff, error) {
	person, err := newPerson(name, email, phone)
	if err != nil {
		return nil, err
	}

	validDepartment, err := validateDepartment(department)
	if err != nil {
		return nil, err
	}

	if err := validateSalary(salary); err != nil {
		return nil, err
	}

	return &Staff{
		Person:     person,
		staffID:    "STF" + person.ID(),
		department: validDepartment,
		position:   position,
		salary:     salary,
	}, nil
}

// StaffID returns the role-prefixed staff identifier.
func (s *Staff) StaffID() string {
	return s.staffID
}

// Department returns the staff member's department.
func (s *Staff) Department() string {
	return s.department
}

// Position returns the staff member's job title.
func (s *Staff) Position() string {
	return s.position
}

// Salary returns the annual salary.
func (s *Staff) Salary() float64 {
	return s.salary
}

// SetSalary replaces the salary after validation.
func (s *Staff) SetSalary(salary float64) error {
	if err := validateSalary(salary); err != nil {
		return err
	}
	s.salary = salary
	return nil
}

// Role implements Member.
func (s *Staff) Role() string {
	return "Staff"
}

// Responsibilities implements Member.
func (s *Staff) Responsibilities() []string {
	return []string{
		"Support university operations",
		"Assist students and faculty",
		fmt.Sprintf("Carry out %s duties for %s", s.position, s.department),
		"Maintain accurate administrative records",
	}
}

// BasicInfo implements Member.
func (s *Staff) BasicInfo() BasicInfo {
	return s.basicInfo(s.Role())
}
