package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

const testTerm = "Fall 2026"

func newTestStudent(t *testing.T) *Student {
	t.Helper()
	student, err := NewStudent("John Doe", "john.doe@student.edu", "555-0100", "Computer Science", testTerm)
	require.NoError(t, err)
	return student
}

func newTestCourse(t *testing.T, code string, credits, capacity int, prerequisites ...string) *Course {
	t.Helper()
	course, err := NewCourse(code, "Course "+code, credits, prerequisites, capacity)
	require.NoError(t, err)
	return course
}

func TestStudent_Enroll_Succeeds(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, student.Enroll(course, testTerm))

	enrollments := student.Enrollments()
	require.Contains(t, enrollments, "CS101")
	assert.Equal(t, StatusEnrolled, enrollments["CS101"].Status)
	assert.Nil(t, enrollments["CS101"].Grade)
	assert.Equal(t, []string{student.StudentID()}, course.EnrolledStudents)
	assert.Equal(t, 1, student.EnrolledCount())
}

func TestStudent_Enroll_AlreadyEnrolled(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, student.Enroll(course, testTerm))
	err := student.Enroll(course, testTerm)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	// The rejected call must not duplicate the roster entry.
	assert.Len(t, course.EnrolledStudents, 1)
}

func TestStudent_Enroll_CourseFull(t *testing.T) {
	first := newTestStudent(t)
	second, err := NewStudent("Jane Roe", "jane@student.edu", "", "Math", testTerm)
	require.NoError(t, err)
	course := newTestCourse(t, "CS101", 3, 1)

	require.NoError(t, first.Enroll(course, testTerm))
	err = second.Enroll(course, testTerm)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)
	assert.Len(t, course.EnrolledStudents, 1)
	assert.Empty(t, second.Enrollments())
}

func TestStudent_Enroll_PrerequisitesUnmet(t *testing.T) {
	student := newTestStudent(t)
	advanced := newTestCourse(t, "CS201", 3, 30, "CS101")

	err := student.Enroll(advanced, testTerm)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPrerequisitesUnmet)
	// A failed check leaves both sides untouched.
	assert.Empty(t, advanced.EnrolledStudents)
	assert.Empty(t, student.Enrollments())
}

func TestStudent_Enroll_PrerequisiteNeedsPassingGrade(t *testing.T) {
	student := newTestStudent(t)
	intro := newTestCourse(t, "CS101", 3, 30)
	advanced := newTestCourse(t, "CS201", 3, 30, "CS101")

	require.NoError(t, student.Enroll(intro, testTerm))

	// Enrolled but not completed does not satisfy the prerequisite.
	assert.ErrorIs(t, student.Enroll(advanced, testTerm), apperrors.ErrPrerequisitesUnmet)

	// Completed below 2.0 still does not satisfy it.
	require.NoError(t, student.AddGrade("CS101", 1.9))
	assert.ErrorIs(t, student.Enroll(advanced, testTerm), apperrors.ErrPrerequisitesUnmet)

	// At exactly 2.0 the prerequisite is met.
	require.NoError(t, student.AddGrade("CS101", 2.0))
	assert.NoError(t, student.Enroll(advanced, testTerm))
}

func TestStudent_Enroll_DefaultsSemesterToCurrentTerm(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, student.Enroll(course, ""))
	assert.Equal(t, testTerm, student.Enrollments()["CS101"].Semester)
}

func TestStudent_Drop_RemovesBothSides(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, student.Enroll(course, testTerm))
	require.NoError(t, student.Drop("CS101"))

	assert.Empty(t, student.Enrollments())
	assert.Empty(t, course.EnrolledStudents)

	// Re-enrollment starts from a clean record.
	require.NoError(t, student.Enroll(course, testTerm))
	assert.Equal(t, StatusEnrolled, student.Enrollments()["CS101"].Status)
}

func TestStudent_Drop_NotEnrolled(t *testing.T) {
	student := newTestStudent(t)

	err := student.Drop("CS101")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestStudent_AddGrade_CompletesEnrollment(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, student.Enroll(course, testTerm))
	require.NoError(t, student.AddGrade("CS101", 3.5))

	record := student.Enrollments()["CS101"]
	assert.Equal(t, StatusCompleted, record.Status)
	require.NotNil(t, record.Grade)
	assert.Equal(t, 3.5, *record.Grade)
	assert.Equal(t, 3, student.TotalCredits())
	assert.Equal(t, 0, student.EnrolledCount())
}

func TestStudent_AddGrade_OutOfRange(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))

	for _, grade := range []float64{-0.1, 4.1} {
		err := student.AddGrade("CS101", grade)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
	}

	// Boundary values are accepted.
	assert.NoError(t, student.AddGrade("CS101", 0.0))
	assert.NoError(t, student.AddGrade("CS101", 4.0))
}

func TestStudent_AddGrade_NotEnrolled(t *testing.T) {
	student := newTestStudent(t)

	err := student.AddGrade("CS101", 3.0)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestStudent_AddGrade_RegradeDoesNotDoubleCountCredits(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))

	require.NoError(t, student.AddGrade("CS101", 2.0))
	require.NoError(t, student.AddGrade("CS101", 3.0))

	assert.Equal(t, 3, student.TotalCredits())
	assert.Equal(t, 3.0, *student.Enrollments()["CS101"].Grade)
}

func TestStudent_GPA_CreditWeighted(t *testing.T) {
	student := newTestStudent(t)
	threeCredit := newTestCourse(t, "CS101", 3, 30)
	fourCredit := newTestCourse(t, "MATH101", 4, 30)

	require.NoError(t, student.Enroll(threeCredit, testTerm))
	require.NoError(t, student.Enroll(fourCredit, testTerm))
	require.NoError(t, student.AddGrade("CS101", 3.0))
	require.NoError(t, student.AddGrade("MATH101", 4.0))

	// (3*3.0 + 4*4.0) / 7 rounded to 2 decimals.
	assert.Equal(t, 3.57, student.GPA(""))
}

func TestStudent_GPA_NoGradedCredits(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))

	assert.Equal(t, 0.0, student.GPA(""))
	assert.Equal(t, 0.0, student.GPA("Spring 2027"))
}

func TestStudent_GPA_SemesterFilter(t *testing.T) {
	student := newTestStudent(t)
	fall := newTestCourse(t, "CS101", 3, 30)
	spring := newTestCourse(t, "CS102", 3, 30)

	require.NoError(t, student.Enroll(fall, "Fall 2026"))
	require.NoError(t, student.Enroll(spring, "Spring 2027"))
	require.NoError(t, student.AddGrade("CS101", 4.0))
	require.NoError(t, student.AddGrade("CS102", 2.0))

	assert.Equal(t, 4.0, student.GPA("Fall 2026"))
	assert.Equal(t, 2.0, student.GPA("Spring 2027"))
	assert.Equal(t, 3.0, student.GPA(""))
}

func TestStudent_GPA_UpsertsHistoryUnderCurrentTerm(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))
	require.NoError(t, student.AddGrade("CS101", 3.0))

	student.GPA("")
	student.GPA("")

	history := student.GPAHistory()
	require.Len(t, history, 1)
	assert.Equal(t, testTerm, history[0].Semester)
	assert.Equal(t, 3.0, history[0].GPA)
	assert.Equal(t, 3, history[0].Credits)

	// A semester-filtered call never writes history.
	student.GPA("Spring 2027")
	assert.Len(t, student.GPAHistory(), 1)
}

func TestStudent_GPA_HistoryReplacedAfterRegrade(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))

	require.NoError(t, student.AddGrade("CS101", 2.0))
	student.GPA("")
	require.NoError(t, student.AddGrade("CS101", 4.0))
	student.GPA("")

	history := student.GPAHistory()
	require.Len(t, history, 1)
	assert.Equal(t, 4.0, history[0].GPA)
}

func TestStudent_AcademicStatus_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		grade float64
		want  AcademicStatus
	}{
		{"deans list boundary", 3.5, StatusDeansList},
		{"good standing upper", 3.49, StatusGoodStanding},
		{"good standing boundary", 2.0, StatusGoodStanding},
		{"probation upper", 1.99, StatusProbation},
		{"probation boundary", 1.0, StatusProbation},
		{"suspension", 0.99, StatusSuspension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := newTestStudent(t)
			course := newTestCourse(t, "CS101", 3, 30)
			require.NoError(t, student.Enroll(course, testTerm))
			require.NoError(t, student.AddGrade("CS101", tt.grade))

			assert.Equal(t, tt.want, student.AcademicStatus())
		})
	}
}

func TestStudent_AcademicStatus_NoGradesMeansSuspensionTier(t *testing.T) {
	student := newTestStudent(t)

	// GPA 0.0 with no graded credits falls below every threshold.
	assert.Equal(t, StatusSuspension, student.AcademicStatus())
}

func TestStudent_Transcript_Aggregates(t *testing.T) {
	student := newTestStudent(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, student.Enroll(course, testTerm))
	require.NoError(t, student.AddGrade("CS101", 3.7))

	transcript := student.Transcript()

	assert.Equal(t, student.StudentID(), "STU"+transcript.StudentInfo.ID)
	assert.Equal(t, "Computer Science", transcript.Major)
	assert.Equal(t, 3, transcript.TotalCredits)
	assert.Equal(t, 3.7, transcript.CurrentGPA)
	assert.Equal(t, StatusDeansList, transcript.AcademicStatus)
	require.Contains(t, transcript.Courses, "CS101")
	assert.Equal(t, StatusCompleted, transcript.Courses["CS101"].Status)
	require.Len(t, transcript.GPAHistory, 1)
}

func TestStudent_SetCurrentTerm(t *testing.T) {
	student := newTestStudent(t)

	require.Error(t, student.SetCurrentTerm(""))
	require.NoError(t, student.SetCurrentTerm("Spring 2027"))
	assert.Equal(t, "Spring 2027", student.CurrentTerm())
}
