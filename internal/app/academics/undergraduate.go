package academics

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Class years in progression order.
const (
	ClassFreshman  = "Freshman"
	ClassSophomore = "Sophomore"
	ClassJunior    = "Junior"
	ClassSenior    = "Senior"
)

var validClassYears = map[string]bool{
	ClassFreshman:  true,
	ClassSophomore: true,
	ClassJunior:    true,
	ClassSenior:    true,
}

// GraduationRequirements is a variant's threshold table for CanGraduate.
type GraduationRequirements struct {
	MinCredits      int
	MinGPA          float64
	ResearchCredits int
}

// undergraduateRequirements are fixed for all undergraduates.
var undergraduateRequirements = GraduationRequirements{
	MinCredits: 120,
	MinGPA:     2.0,
}

// UndergraduateStudent is a student working toward a bachelor's degree.
type UndergraduateStudent struct {
	Student

	classYear string
	advisor   string
}

// NewUndergraduateStudent creates an undergraduate. classYear defaults to
// Freshman when empty; currentTerm "" derives the label from the wall clock.
func NewUndergraduateStudent(name, email, phone, major, classYear, currentTerm string) (*UndergraduateStudent, error) {
	base, err := newStudent(name, email, phone, major, currentTerm, "UG")
	if err != nil {
		return nil, err
	}

	u := &UndergraduateStudent{Student: base}

	if classYear == "" {
		classYear = ClassFreshman
	}
	if err := u.SetClassYear(classYear); err != nil {
		return nil, err
	}

	return u, nil
}

// ClassYear returns the student's class year.
func (u *UndergraduateStudent) ClassYear() string {
	return u.classYear
}

// SetClassYear replaces the class year after validation.
func (u *UndergraduateStudent) SetClassYear(classYear string) error {
	if !validClassYears[classYear] {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidClassYear, classYear)
	}
	u.classYear = classYear
	return nil
}

// Advisor returns the academic advisor's name, empty when unassigned.
func (u *UndergraduateStudent) Advisor() string {
	return u.advisor
}

// SetAdvisor assigns an academic advisor.
func (u *UndergraduateStudent) SetAdvisor(advisor string) {
	u.advisor = advisor
}

// GraduationRequirements returns the fixed undergraduate thresholds.
func (u *UndergraduateStudent) GraduationRequirements() GraduationRequirements {
	return undergraduateRequirements
}

// CalculateWorkload sums the credits of current-term courses still in
// Enrolled state.
func (u *UndergraduateStudent) CalculateWorkload() int {
	credits := 0
	for _, record := range u.enrolledCourses {
		if record.Semester == u.currentTerm && record.Status == StatusEnrolled {
			credits += record.Course.Credits
		}
	}
	return credits
}

// CanGraduate reports whether both credit and GPA thresholds are met.
func (u *UndergraduateStudent) CanGraduate() bool {
	return u.totalCredits >= undergraduateRequirements.MinCredits &&
		u.GPA("") >= undergraduateRequirements.MinGPA
}

// Transcript aggregates the student's academic state with the variant role
// in the identity snapshot.
func (u *UndergraduateStudent) Transcript() Transcript {
	transcript := u.Student.Transcript()
	transcript.StudentInfo = u.BasicInfo()
	return transcript
}

// Role implements Member.
func (u *UndergraduateStudent) Role() string {
	return fmt.Sprintf("Undergraduate Student (%s)", u.classYear)
}

// BasicInfo implements Member.
func (u *UndergraduateStudent) BasicInfo() BasicInfo {
	return u.basicInfo(u.Role())
}
