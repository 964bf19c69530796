package academics

import (
	"fmt"
	"time"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// OfficeHours is a single day's start/end pair.
type OfficeHours struct {
	Start string
	End   string
}

// Publication is an entry in a faculty member's publication list.
type Publication struct {
	Title     string
	Journal   string
	Year      int
	DateAdded time.Time
}

// Workload is a faculty member's workload summary. Courses, TotalStudents,
// and Type are filled for every variant; the remaining fields are populated
// only by the variant that computes them, extending the base rather than
// replacing it.
type Workload struct {
	Type          string
	Courses       int
	TotalStudents int

	// Professor
	ResearchLoad int
	ServiceLoad  int

	// Lecturer
	TeachingIntensity int
	AverageEvaluation float64

	// Teaching assistant
	AssistanceLoad int
	GradingLoad    int
	LabLoad        int

	// Professor and TA
	TotalLoadPoints int
}

// FacultyMember is the faculty surface the registry layer composes over.
type FacultyMember interface {
	Member
	FacultyID() string
	Department() string
	CoursesTaught() []*Course
	AssignCourse(course *Course) error
	RemoveCourse(courseCode string) error
	CalculateWorkload() Workload
}

var validWeekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// Faculty holds the teaching-assignment state shared by all faculty variants.
type Faculty struct {
	Person

	facultyID         string
	department        string
	hireDate          time.Time
	salary            float64
	officeLocation    string
	coursesTaught     []*Course
	officeHours       map[string]OfficeHours
	researchInterests []string
	publications      []Publication
}

// newFaculty builds the shared faculty state.
func newFaculty(name, email, phone, department string, salary float64, officeLocation string) (Faculty, error) {
	person, err := newPerson(name, email, phone)
	if err != nil {
		return Faculty{}, err
	}

	validDepartment, err := validateDepartment(department)
	if err != nil {
		return Faculty{}, err
	}

	if err := validateSalary(salary); err != nil {
		return Faculty{}, err
	}

	return Faculty{
		Person:         person,
		facultyID:      "FAC" + person.ID(),
		department:     validDepartment,
		hireDate:       time.Now(),
		salary:         salary,
		officeLocation: officeLocation,
		officeHours:    make(map[string]OfficeHours),
	}, nil
}

// FacultyID returns the role-prefixed faculty identifier.
func (f *Faculty) FacultyID() string {
	return f.facultyID
}

// Department returns the department affiliation.
func (f *Faculty) Department() string {
	return f.department
}

// SetDepartment replaces the department after validation.
func (f *Faculty) SetDepartment(department string) error {
	validDepartment, err := validateDepartment(department)
	if err != nil {
		return err
	}
	f.department = validDepartment
	return nil
}

// HireDate returns when the faculty member was created.
func (f *Faculty) HireDate() time.Time {
	return f.hireDate
}

// Salary returns the annual salary.
func (f *Faculty) Salary() float64 {
	return f.salary
}

// SetSalary replaces the salary after validation.
func (f *Faculty) SetSalary(salary float64) error {
	if err := validateSalary(salary); err != nil {
		return err
	}
	f.salary = salary
	return nil
}

// OfficeLocation returns the office room/building.
func (f *Faculty) OfficeLocation() string {
	return f.officeLocation
}

// SetOfficeLocation replaces the office location.
func (f *Faculty) SetOfficeLocation(location string) {
	f.officeLocation = location
}

// CoursesTaught returns a copy of the taught-course list.
func (f *Faculty) CoursesTaught() []*Course {
	courses := make([]*Course, len(f.coursesTaught))
	copy(courses, f.coursesTaught)
	return courses
}

// AssignCourse adds a course to the teaching list and sets the course's
// instructor back-reference. Both sides are updated in the same call after
// all checks pass, so a failure leaves neither side touched.
func (f *Faculty) AssignCourse(course *Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	for _, taught := range f.coursesTaught {
		if taught.Code == course.Code {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyTeaching, course.Code)
		}
	}

	f.coursesTaught = append(f.coursesTaught, course)
	course.instructor = f

	return nil
}

// RemoveCourse is the symmetric inverse of AssignCourse: it removes the
// course from the teaching list and clears the instructor back-reference.
func (f *Faculty) RemoveCourse(courseCode string) error {
	for i, course := range f.coursesTaught {
		if course.Code == courseCode {
			f.coursesTaught = append(f.coursesTaught[:i], f.coursesTaught[i+1:]...)
			course.instructor = nil
			return nil
		}
	}

	return fmt.Errorf("%w: %s", apperrors.ErrNotTeaching, courseCode)
}

// SetOfficeHours records office hours for a weekday. The day is title-cased
// before validation, so "monday" is accepted.
func (f *Faculty) SetOfficeHours(day, start, end string) error {
	day = helpers.TitleCase(day)
	if !validWeekdays[day] {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidWeekday, day)
	}

	f.officeHours[day] = OfficeHours{Start: start, End: end}
	return nil
}

// OfficeHoursFor returns the office hours recorded for a weekday.
func (f *Faculty) OfficeHoursFor(day string) (OfficeHours, bool) {
	hours, ok := f.officeHours[helpers.TitleCase(day)]
	return hours, ok
}

// ResearchInterests returns a copy of the research interest list.
func (f *Faculty) ResearchInterests() []string {
	interests := make([]string, len(f.researchInterests))
	copy(interests, f.researchInterests)
	return interests
}

// AddResearchInterest appends a research interest, skipping duplicates and
// empty values.
func (f *Faculty) AddResearchInterest(interest string) {
	if interest == "" {
		return
	}
	for _, existing := range f.researchInterests {
		if existing == interest {
			return
		}
	}
	f.researchInterests = append(f.researchInterests, interest)
}

// Publications returns a copy of the publication list.
func (f *Faculty) Publications() []Publication {
	publications := make([]Publication, len(f.publications))
	copy(publications, f.publications)
	return publications
}

// AddPublication appends a publication. A year of 0 uses the current year.
func (f *Faculty) AddPublication(title, journal string, year int) {
	if year == 0 {
		year = time.Now().Year()
	}
	f.publications = append(f.publications, Publication{
		Title:     title,
		Journal:   journal,
		Year:      year,
		DateAdded: time.Now(),
	})
}

// CalculateWorkload returns the base workload: course count and the total
// number of students across taught courses. Variants extend this result.
func (f *Faculty) CalculateWorkload() Workload {
	return f.baseWorkload("Base")
}

// baseWorkload computes the figures shared by every variant.
func (f *Faculty) baseWorkload(workloadType string) Workload {
	totalStudents := 0
	for _, course := range f.coursesTaught {
		totalStudents += len(course.EnrolledStudents)
	}

	return Workload{
		Type:          workloadType,
		Courses:       len(f.coursesTaught),
		TotalStudents: totalStudents,
	}
}

// Role implements Member.
func (f *Faculty) Role() string {
	return "Faculty"
}

// Responsibilities implements Member.
func (f *Faculty) Responsibilities() []string {
	return []string{
		"Teach assigned courses",
		"Hold regular office hours",
		"Advise students",
		fmt.Sprintf("Serve the %s department", f.department),
	}
}

// BasicInfo implements Member.
func (f *Faculty) BasicInfo() BasicInfo {
	return f.basicInfo(f.Role())
}
