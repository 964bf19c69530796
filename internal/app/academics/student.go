package academics

import (
	"fmt"
	"time"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// EnrollmentStatus tracks a student's state in a single course.
type EnrollmentStatus string

const (
	// StatusEnrolled means the student sits in the course without a grade yet.
	StatusEnrolled EnrollmentStatus = "Enrolled"
	// StatusCompleted means a grade has been recorded.
	StatusCompleted EnrollmentStatus = "Completed"
)

// AcademicStatus classifies a student from their overall GPA.
type AcademicStatus string

const (
	StatusDeansList    AcademicStatus = "Dean's List"
	StatusGoodStanding AcademicStatus = "Good Standing"
	StatusProbation    AcademicStatus = "Academic Probation"
	StatusSuspension   AcademicStatus = "Academic Suspension"
)

// Enrollment is the per-course-code state a student holds: at most one entry
// per course code at a time, removed entirely on drop.
type Enrollment struct {
	Course   *Course
	Grade    *float64
	Semester string
	Status   EnrollmentStatus
}

// GPARecord is one semester's entry in the GPA history.
type GPARecord struct {
	Semester string
	GPA      float64
	Credits  int
}

// CourseRecord is the per-course line of a transcript snapshot.
type CourseRecord struct {
	CourseName string
	Credits    int
	Grade      *float64
	Semester   string
	Status     EnrollmentStatus
}

// Transcript aggregates a student's academic state at a point in time.
type Transcript struct {
	StudentInfo    BasicInfo
	Major          string
	TotalCredits   int
	CurrentGPA     float64
	AcademicStatus AcademicStatus
	Courses        map[string]CourseRecord
	GPAHistory     []GPARecord
}

// StudentRecord is the student surface consumed by the secure gateway and the
// registry layer. Every student variant satisfies it.
type StudentRecord interface {
	Member
	StudentID() string
	Major() string
	Enroll(course *Course, semester string) error
	Drop(courseCode string) error
	AddGrade(courseCode string, grade float64) error
	GPA(semester string) float64
	AcademicStatus() AcademicStatus
	EnrolledCount() int
	TotalCredits() int
	Enrollments() map[string]Enrollment
	Transcript() Transcript
}

// Student holds the enrollment state machine shared by all student variants.
// Per course code the states are NotEnrolled -> Enrolled -> Completed, with
// drop returning to NotEnrolled by deleting the record.
type Student struct {
	Person

	studentID       string
	major           string
	enrollmentDate  time.Time
	currentTerm     string
	enrolledCourses map[string]*Enrollment
	gpaHistory      []GPARecord
	academicStatus  AcademicStatus
	totalCredits    int
}

// newStudent builds the shared student state. Variant constructors pick the
// ID prefix ("STU", "UG", "GR").
func newStudent(name, email, phone, major, currentTerm, idPrefix string) (Student, error) {
	person, err := newPerson(name, email, phone)
	if err != nil {
		return Student{}, err
	}

	validMajor, err := validateMajor(major)
	if err != nil {
		return Student{}, err
	}

	if currentTerm == "" {
		currentTerm = TermFor(time.Now())
	}

	return Student{
		Person:          person,
		studentID:       idPrefix + person.ID(),
		major:           validMajor,
		enrollmentDate:  time.Now(),
		currentTerm:     currentTerm,
		enrolledCourses: make(map[string]*Enrollment),
		academicStatus:  StatusGoodStanding,
	}, nil
}

// NewStudent creates a plain student. currentTerm is the injected semester
// label; pass "" to derive it from the wall clock via TermFor.
func NewStudent(name, email, phone, major, currentTerm string) (*Student, error) {
	s, err := newStudent(name, email, phone, major, currentTerm, "STU")
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StudentID returns the role-prefixed student identifier.
func (s *Student) StudentID() string {
	return s.studentID
}

// Major returns the student's major.
func (s *Student) Major() string {
	return s.major
}

// SetMajor replaces the major after validation.
func (s *Student) SetMajor(major string) error {
	validMajor, err := validateMajor(major)
	if err != nil {
		return err
	}
	s.major = validMajor
	return nil
}

// EnrollmentDate returns when the student was created.
func (s *Student) EnrollmentDate() time.Time {
	return s.enrollmentDate
}

// CurrentTerm returns the injected semester label.
func (s *Student) CurrentTerm() string {
	return s.currentTerm
}

// SetCurrentTerm advances the student to a new semester label.
func (s *Student) SetCurrentTerm(term string) error {
	if term == "" {
		return fmt.Errorf("%w: term cannot be empty", apperrors.ErrValidationFailed)
	}
	s.currentTerm = term
	return nil
}

// TotalCredits returns the credits accumulated from completed courses.
func (s *Student) TotalCredits() int {
	return s.totalCredits
}

// Enroll adds the student to a course. The semester defaults to the current
// term when empty. All checks run before any mutation, so a failed call
// leaves both the student and the course untouched.
func (s *Student) Enroll(course *Course, semester string) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if _, exists := s.enrolledCourses[course.Code]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyEnrolled, course.Code)
	}

	if course.IsFull() {
		return fmt.Errorf("%w: %s", apperrors.ErrCourseFull, course.Code)
	}

	if !s.prerequisitesMet(course.Prerequisites) {
		return fmt.Errorf("%w: %s requires %v", apperrors.ErrPrerequisitesUnmet, course.Code, course.Prerequisites)
	}

	if semester == "" {
		semester = s.currentTerm
	}

	s.enrolledCourses[course.Code] = &Enrollment{
		Course:   course,
		Semester: semester,
		Status:   StatusEnrolled,
	}
	course.EnrolledStudents = append(course.EnrolledStudents, s.studentID)

	return nil
}

// Drop removes the enrollment record entirely; re-enrollment starts fresh.
func (s *Student) Drop(courseCode string) error {
	record, exists := s.enrolledCourses[courseCode]
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrNotEnrolled, courseCode)
	}

	delete(s.enrolledCourses, courseCode)
	record.Course.removeStudent(s.studentID)

	return nil
}

// AddGrade records a grade on the 4.0 scale and marks the course completed.
// Credits are added to the running total only on the first completion:
// re-grading an already completed course updates the grade without counting
// its credits twice.
func (s *Student) AddGrade(courseCode string, grade float64) error {
	record, exists := s.enrolledCourses[courseCode]
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrNotEnrolled, courseCode)
	}

	ok := validation.NewRangeValidation(grade, validation.GradeMin, validation.GradeMax).Validate()
	if !ok {
		return fmt.Errorf("%w: got %.2f", apperrors.ErrInvalidGrade, grade)
	}

	if record.Status != StatusCompleted {
		s.totalCredits += record.Course.Credits
	}

	record.Grade = &grade
	record.Status = StatusCompleted

	return nil
}

// GPA computes the credit-weighted grade average, rounded to 2 decimals.
// With a semester label it averages only that semester's graded entries; with
// "" it averages every graded entry and upserts the GPA history under the
// current term label. Returns 0.0 when no graded credits qualify.
func (s *Student) GPA(semester string) float64 {
	totalPoints := 0.0
	totalCredits := 0

	for _, record := range s.enrolledCourses {
		if semester != "" && record.Semester != semester {
			continue
		}
		if record.Grade == nil {
			continue
		}

		totalPoints += *record.Grade * float64(record.Course.Credits)
		totalCredits += record.Course.Credits
	}

	if totalCredits == 0 {
		return 0.0
	}

	gpa := helpers.Round2(totalPoints / float64(totalCredits))

	if semester == "" {
		s.upsertGPAHistory(gpa, totalCredits)
	}

	return gpa
}

// AcademicStatus derives the standing from the overall GPA and stores it.
// Boundary values land in the higher tier.
func (s *Student) AcademicStatus() AcademicStatus {
	gpa := s.GPA("")

	switch {
	case gpa >= 3.5:
		s.academicStatus = StatusDeansList
	case gpa >= 2.0:
		s.academicStatus = StatusGoodStanding
	case gpa >= 1.0:
		s.academicStatus = StatusProbation
	default:
		s.academicStatus = StatusSuspension
	}

	return s.academicStatus
}

// EnrolledCount returns the number of courses currently in Enrolled state.
func (s *Student) EnrolledCount() int {
	count := 0
	for _, record := range s.enrolledCourses {
		if record.Status == StatusEnrolled {
			count++
		}
	}
	return count
}

// Enrollments returns a copy of the enrollment map.
func (s *Student) Enrollments() map[string]Enrollment {
	snapshot := make(map[string]Enrollment, len(s.enrolledCourses))
	for code, record := range s.enrolledCourses {
		snapshot[code] = *record
	}
	return snapshot
}

// GPAHistory returns a copy of the per-semester GPA records.
func (s *Student) GPAHistory() []GPARecord {
	history := make([]GPARecord, len(s.gpaHistory))
	copy(history, s.gpaHistory)
	return history
}

// Transcript aggregates basic info, credits, GPA, standing, per-course
// records, and GPA history.
func (s *Student) Transcript() Transcript {
	courses := make(map[string]CourseRecord, len(s.enrolledCourses))
	for code, record := range s.enrolledCourses {
		courses[code] = CourseRecord{
			CourseName: record.Course.Name,
			Credits:    record.Course.Credits,
			Grade:      record.Grade,
			Semester:   record.Semester,
			Status:     record.Status,
		}
	}

	return Transcript{
		StudentInfo:    s.BasicInfo(),
		Major:          s.major,
		TotalCredits:   s.totalCredits,
		CurrentGPA:     s.GPA(""),
		AcademicStatus: s.AcademicStatus(),
		Courses:        courses,
		GPAHistory:     s.GPAHistory(),
	}
}

// Role implements Member.
func (s *Student) Role() string {
	return "Student"
}

// Responsibilities implements Member.
func (s *Student) Responsibilities() []string {
	return []string{
		"Attend classes regularly",
		"Complete assignments and projects",
		"Maintain academic standards",
		"Follow university policies",
		fmt.Sprintf("Complete degree requirements in %s", s.major),
	}
}

// BasicInfo implements Member.
func (s *Student) BasicInfo() BasicInfo {
	return s.basicInfo(s.Role())
}

// prerequisitesMet reports whether every prerequisite code has been completed
// with a grade of at least 2.0.
func (s *Student) prerequisitesMet(prerequisites []string) bool {
	for _, code := range prerequisites {
		record, exists := s.enrolledCourses[code]
		if !exists || record.Status != StatusCompleted || record.Grade == nil || *record.Grade < 2.0 {
			return false
		}
	}
	return true
}

// upsertGPAHistory records the overall GPA under the current term label,
// replacing an existing entry for the same semester.
func (s *Student) upsertGPAHistory(gpa float64, credits int) {
	for i := range s.gpaHistory {
		if s.gpaHistory[i].Semester == s.currentTerm {
			s.gpaHistory[i].GPA = gpa
			s.gpaHistory[i].Credits = credits
			return
		}
	}

	s.gpaHistory = append(s.gpaHistory, GPARecord{
		Semester: s.currentTerm,
		GPA:      gpa,
		Credits:  credits,
	})
}

// validateMajor applies the non-empty title-cased rule to a major.
func validateMajor(major string) (string, error) {
	validMajor, err := validateDepartment(major)
	if err != nil {
		return "", fmt.Errorf("%w: major must be a non-empty string", apperrors.ErrValidationFailed)
	}
	return validMajor, nil
}
