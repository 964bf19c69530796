package academics

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// DefaultCourseCapacity is the enrollment cap applied when none is given.
const DefaultCourseCapacity = 30

// Course is a catalog record. It holds no enforcement of its own: capacity
// and prerequisite checks live in Student.Enroll, and EnrolledStudents and
// the instructor link are mutated only by Student and Faculty operations.
type Course struct {
	Code          string
	Name          string
	Credits       int
	Prerequisites []string
	MaxEnrollment int

	// EnrolledStudents holds student IDs, not references, so a course never
	// owns the students sitting in it.
	EnrolledStudents []string

	// instructor is set exclusively by Faculty.AssignCourse / RemoveCourse.
	instructor *Faculty
}

// NewCourse creates a course. A maxEnrollment of 0 applies
// DefaultCourseCapacity. Prerequisites may be nil.
func NewCourse(code, name string, credits int, prerequisites []string, maxEnrollment int) (*Course, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	if ok := validation.NewNumericValidation(credits).WithMin(1).Validate(); !ok {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidCredits, credits)
	}

	if maxEnrollment == 0 {
		maxEnrollment = DefaultCourseCapacity
	}
	if maxEnrollment < 0 {
		return nil, fmt.Errorf("%w: max enrollment cannot be negative", apperrors.ErrValidationFailed)
	}

	if prerequisites == nil {
		prerequisites = []string{}
	}

	return &Course{
		Code:             code,
		Name:             name,
		Credits:          credits,
		Prerequisites:    prerequisites,
		MaxEnrollment:    maxEnrollment,
		EnrolledStudents: []string{},
	}, nil
}

// Instructor returns the faculty member teaching this course, nil when
// unassigned.
func (c *Course) Instructor() *Faculty {
	return c.instructor
}

// IsFull reports whether the course is at capacity.
func (c *Course) IsFull() bool {
	return len(c.EnrolledStudents) >= c.MaxEnrollment
}

// AvailableSeats returns the number of open seats, never negative.
func (c *Course) AvailableSeats() int {
	seats := c.MaxEnrollment - len(c.EnrolledStudents)
	if seats < 0 {
		return 0
	}
	return seats
}

// removeStudent deletes a student ID from the roster if present.
func (c *Course) removeStudent(studentID string) {
	for i, id := range c.EnrolledStudents {
		if id == studentID {
			c.EnrolledStudents = append(c.EnrolledStudents[:i], c.EnrolledStudents[i+1:]...)
			return
		}
	}
}

func (c *Course) String() string {
	return fmt.Sprintf("%s: %s (%d credits)", c.Code, c.Name, c.Credits)
}
