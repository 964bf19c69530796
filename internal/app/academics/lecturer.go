package academics

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// Lecturer contract types.
const (
	ContractFullTime = "Full-time"
	ContractPartTime = "Part-time"
	ContractAdjunct  = "Adjunct"
)

// contractTerms fixes the course cap and base teaching load per contract.
var contractTerms = map[string]struct {
	maxCourseLoad    int
	baseTeachingLoad int
}{
	ContractFullTime: {maxCourseLoad: 4, baseTeachingLoad: 12},
	ContractPartTime: {maxCourseLoad: 2, baseTeachingLoad: 6},
	ContractAdjunct:  {maxCourseLoad: 1, baseTeachingLoad: 3},
}

// evaluationMax bounds student evaluation ratings.
const evaluationMax = 5.0

// Lecturer is a teaching-focused faculty member on a fixed contract.
type Lecturer struct {
	Faculty

	contractType string
	evaluations  []float64
}

// NewLecturer creates a lecturer. contractType defaults to Full-time when
// empty.
func NewLecturer(name, email, phone, department, contractType string, salary float64) (*Lecturer, error) {
	base, err := newFaculty(name, email, phone, department, salary, "")
	if err != nil {
		return nil, err
	}

	if contractType == "" {
		contractType = ContractFullTime
	}
	if _, ok := contractTerms[contractType]; !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidContractType, contractType)
	}

	return &Lecturer{
		Faculty:      base,
		contractType: contractType,
	}, nil
}

// ContractType returns the lecturer's contract type.
func (l *Lecturer) ContractType() string {
	return l.contractType
}

// MaxCourseLoad returns the course cap fixed by the contract.
func (l *Lecturer) MaxCourseLoad() int {
	return contractTerms[l.contractType].maxCourseLoad
}

// BaseTeachingLoad returns the teaching-load number fixed by the contract.
func (l *Lecturer) BaseTeachingLoad() int {
	return contractTerms[l.contractType].baseTeachingLoad
}

// AddEvaluation records a student evaluation rating on a 0-5 scale.
func (l *Lecturer) AddEvaluation(rating float64) error {
	if rating < 0 || rating > evaluationMax {
		return fmt.Errorf("%w: evaluation rating %.2f out of range", apperrors.ErrValidationFailed, rating)
	}
	l.evaluations = append(l.evaluations, rating)
	return nil
}

// Evaluations returns a copy of the recorded ratings.
func (l *Lecturer) Evaluations() []float64 {
	evaluations := make([]float64, len(l.evaluations))
	copy(evaluations, l.evaluations)
	return evaluations
}

// AverageEvaluation returns the mean rating rounded to 2 decimals, 0.0 when
// none are recorded.
func (l *Lecturer) AverageEvaluation() float64 {
	if len(l.evaluations) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, rating := range l.evaluations {
		sum += rating
	}
	return helpers.Round2(sum / float64(len(l.evaluations)))
}

// CalculateWorkload extends the base workload with teaching intensity and
// the evaluation average.
func (l *Lecturer) CalculateWorkload() Workload {
	workload := l.baseWorkload("Lecturer")

	teachingIntensity := 0
	for _, course := range l.coursesTaught {
		teachingIntensity += len(course.EnrolledStudents)
	}
	workload.TeachingIntensity = teachingIntensity
	workload.AverageEvaluation = l.AverageEvaluation()

	return workload
}

// Role implements Member.
func (l *Lecturer) Role() string {
	return "Lecturer"
}

// Responsibilities implements Member.
func (l *Lecturer) Responsibilities() []string {
	return []string{
		"Teach assigned courses",
		"Prepare course materials",
		"Hold regular office hours",
		fmt.Sprintf("Carry a %s teaching load", l.contractType),
	}
}

// BasicInfo implements Member.
func (l *Lecturer) BasicInfo() BasicInfo {
	return l.basicInfo(l.Role())
}
