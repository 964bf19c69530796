package academics

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// TA levels.
const (
	TALevelUndergraduate = "Undergraduate"
	TALevelMasters       = "Masters"
	TALevelPhD           = "PhD"
)

var validTALevels = map[string]bool{
	TALevelUndergraduate: true,
	TALevelMasters:       true,
	TALevelPhD:           true,
}

// TA workload weights.
const (
	assistancePoints = 10
	gradingPoints    = 5
	labPoints        = 3
)

// TA is a teaching assistant. Courses it assists are tracked separately from
// any courses it teaches outright.
type TA struct {
	Faculty

	taLevel       string
	assisting     []*Course
	assistDuties  map[string][]string
	gradingDuties []string
	labSessions   []string
}

// NewTA creates a teaching assistant.
func NewTA(name, email, phone, department, taLevel string, salary float64) (*TA, error) {
	base, err := newFaculty(name, email, phone, department, salary, "")
	if err != nil {
		return nil, err
	}

	if !validTALevels[taLevel] {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTALevel, taLevel)
	}

	return &TA{
		Faculty:      base,
		taLevel:      taLevel,
		assistDuties: make(map[string][]string),
	}, nil
}

// TALevel returns the TA's academic level.
func (t *TA) TALevel() string {
	return t.taLevel
}

// AssistCourse records the TA as assisting a course with the given duties.
// Assisting is distinct from teaching: the course's instructor link is not
// touched.
func (t *TA) AssistCourse(course *Course, duties []string) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	for _, assisted := range t.assisting {
		if assisted.Code == course.Code {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyAssisting, course.Code)
		}
	}

	t.assisting = append(t.assisting, course)
	t.assistDuties[course.Code] = duties

	return nil
}

// AssistedCourses returns a copy of the assisted-course list.
func (t *TA) AssistedCourses() []*Course {
	courses := make([]*Course, len(t.assisting))
	copy(courses, t.assisting)
	return courses
}

// DutiesFor returns the duties recorded for an assisted course.
func (t *TA) DutiesFor(courseCode string) []string {
	duties := t.assistDuties[courseCode]
	out := make([]string, len(duties))
	copy(out, duties)
	return out
}

// AddGradingDuty records a standalone grading duty.
func (t *TA) AddGradingDuty(duty string) {
	if duty == "" {
		return
	}
	t.gradingDuties = append(t.gradingDuties, duty)
}

// AddLabSession records a lab session run by the TA.
func (t *TA) AddLabSession(session string) {
	if session == "" {
		return
	}
	t.labSessions = append(t.labSessions, session)
}

// CalculateWorkload extends the base workload with assistance, grading, and
// lab loads and their sum.
func (t *TA) CalculateWorkload() Workload {
	workload := t.baseWorkload("Teaching Assistant")

	workload.AssistanceLoad = assistancePoints * len(t.assisting)
	workload.GradingLoad = gradingPoints * len(t.gradingDuties)
	workload.LabLoad = labPoints * len(t.labSessions)
	workload.TotalLoadPoints = workload.AssistanceLoad + workload.GradingLoad + workload.LabLoad

	return workload
}

// Role implements Member.
func (t *TA) Role() string {
	return "Teaching Assistant"
}

// Responsibilities implements Member.
func (t *TA) Responsibilities() []string {
	return []string{
		"Assist instructors with assigned courses",
		"Grade assignments and exams",
		"Run lab sessions",
		"Hold student consultation hours",
	}
}

// BasicInfo implements Member.
func (t *TA) BasicInfo() BasicInfo {
	return t.basicInfo(t.Role())
}
