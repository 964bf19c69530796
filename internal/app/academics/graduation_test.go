package academics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// completeCourses enrolls the student in enough uniquely-coded courses to
// accumulate the given credits, grading each at the given grade.
func completeCourses(t *testing.T, student StudentRecord, prefix string, credits int, creditsPer int, grade float64) {
	t.Helper()
	for earned := 0; earned < credits; earned += creditsPer {
		code := fmt.Sprintf("%s%03d", prefix, earned)
		course, err := NewCourse(code, "Course "+code, creditsPer, nil, 500)
		require.NoError(t, err)
		require.NoError(t, student.Enroll(course, testTerm))
		require.NoError(t, student.AddGrade(code, grade))
	}
}

func TestNewUndergraduateStudent_ClassYearDefaultsToFreshman(t *testing.T) {
	student, err := NewUndergraduateStudent("Jane Roe", "jane@b.com", "", "Math", "", testTerm)
	require.NoError(t, err)
	assert.Equal(t, ClassFreshman, student.ClassYear())
}

func TestUndergraduateStudent_SetClassYear_Invalid(t *testing.T) {
	student, err := NewUndergraduateStudent("Jane Roe", "jane@b.com", "", "Math", ClassSenior, testTerm)
	require.NoError(t, err)

	err = student.SetClassYear("Fifth Year")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidClassYear)
	assert.Equal(t, ClassSenior, student.ClassYear())
}

func TestUndergraduateStudent_CanGraduate(t *testing.T) {
	tests := []struct {
		name    string
		credits int
		grade   float64
		want    bool
	}{
		{"both thresholds met exactly", 120, 2.0, true},
		{"credits short", 117, 4.0, false},
		{"gpa short", 120, 1.9, false},
		{"both exceeded", 126, 3.8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student, err := NewUndergraduateStudent("Jane Roe", "jane@b.com", "", "Math", ClassSenior, testTerm)
			require.NoError(t, err)

			completeCourses(t, student, "UGC", tt.credits, 3, tt.grade)
			assert.Equal(t, tt.want, student.CanGraduate())
		})
	}
}

func TestUndergraduateStudent_CalculateWorkload(t *testing.T) {
	student, err := NewUndergraduateStudent("Jane Roe", "jane@b.com", "", "Math", ClassJunior, testTerm)
	require.NoError(t, err)

	current, err := NewCourse("CS101", "Intro", 3, nil, 30)
	require.NoError(t, err)
	completed, err := NewCourse("CS100", "Basics", 4, nil, 30)
	require.NoError(t, err)
	otherTerm, err := NewCourse("CS110", "Logic", 3, nil, 30)
	require.NoError(t, err)

	require.NoError(t, student.Enroll(current, testTerm))
	require.NoError(t, student.Enroll(completed, testTerm))
	require.NoError(t, student.AddGrade("CS100", 3.0))
	require.NoError(t, student.Enroll(otherTerm, "Spring 2027"))

	// Only current-term courses still in Enrolled state count.
	assert.Equal(t, 3, student.CalculateWorkload())
}

func TestNewGraduateStudent_DegreeDefaultsToMasters(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", "", testTerm)
	require.NoError(t, err)
	assert.Equal(t, DegreeMasters, student.DegreeType())
}

func TestNewGraduateStudent_InvalidDegreeType(t *testing.T) {
	_, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", "Doctorate", testTerm)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDegreeType)
}

func TestGraduateStudent_CalculateWorkload_SplitsByResearchName(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreePhD, testTerm)
	require.NoError(t, err)

	coursework, err := NewCourse("PHY501", "Quantum Mechanics", 3, nil, 30)
	require.NoError(t, err)
	research, err := NewCourse("PHY699", "Research Seminar", 6, nil, 30)
	require.NoError(t, err)

	require.NoError(t, student.Enroll(coursework, testTerm))
	require.NoError(t, student.Enroll(research, testTerm))

	workload := student.CalculateWorkload()
	assert.Equal(t, 3, workload.CourseworkCredits)
	assert.Equal(t, 6, workload.ResearchCredits)
	assert.Equal(t, 9, workload.TotalCredits)
}

func TestGraduateStudent_CanGraduate_Masters(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreeMasters, testTerm)
	require.NoError(t, err)

	// 30 coursework credits plus 6 research credits at GPA 3.5.
	completeCourses(t, student, "PHY", 30, 3, 3.5)
	research, err := NewCourse("PHY699", "Research Project", 6, nil, 30)
	require.NoError(t, err)
	require.NoError(t, student.Enroll(research, testTerm))
	require.NoError(t, student.AddGrade("PHY699", 3.5))

	assert.True(t, student.CanGraduate())
}

func TestGraduateStudent_CanGraduate_ResearchCreditsRequired(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreeMasters, testTerm)
	require.NoError(t, err)

	// 36 credits at a qualifying GPA, but none from research courses.
	completeCourses(t, student, "PHY", 36, 3, 3.5)

	assert.False(t, student.CanGraduate())
}

func TestGraduateStudent_CanGraduate_GPAShort(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreeMasters, testTerm)
	require.NoError(t, err)

	completeCourses(t, student, "PHY", 30, 3, 2.9)
	research, err := NewCourse("PHY699", "Research Project", 6, nil, 30)
	require.NoError(t, err)
	require.NoError(t, student.Enroll(research, testTerm))
	require.NoError(t, student.AddGrade("PHY699", 2.9))

	assert.False(t, student.CanGraduate())
}

func TestGraduateStudent_Requirements(t *testing.T) {
	masters, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreeMasters, testTerm)
	require.NoError(t, err)
	phd, err := NewGraduateStudent("Ann Lee", "ann@b.com", "", "Physics", DegreePhD, testTerm)
	require.NoError(t, err)

	assert.Equal(t, GraduationRequirements{MinCredits: 36, MinGPA: 3.0, ResearchCredits: 6}, masters.GraduationRequirements())
	assert.Equal(t, GraduationRequirements{MinCredits: 72, MinGPA: 3.0, ResearchCredits: 24}, phd.GraduationRequirements())
}

func TestGraduateStudent_CommitteeAndThesis(t *testing.T) {
	student, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreePhD, testTerm)
	require.NoError(t, err)

	student.SetThesisAdvisor("Dr. Curie")
	student.SetThesisTopic("Radiation")
	student.AddCommitteeMember("Dr. Bohr")
	student.AddCommitteeMember("")

	assert.Equal(t, "Dr. Curie", student.ThesisAdvisor())
	assert.Equal(t, "Radiation", student.ThesisTopic())
	assert.Equal(t, []string{"Dr. Bohr"}, student.CommitteeMembers())
}

func TestVariantTranscript_UsesVariantRole(t *testing.T) {
	undergrad, err := NewUndergraduateStudent("Jane Roe", "jane@b.com", "", "Math", ClassSenior, testTerm)
	require.NoError(t, err)
	grad, err := NewGraduateStudent("Jim Poe", "jim@b.com", "", "Physics", DegreeMasters, testTerm)
	require.NoError(t, err)

	assert.Equal(t, "Undergraduate Student (Senior)", undergrad.Transcript().StudentInfo.Role)
	assert.Equal(t, "Graduate Student (Masters)", grad.Transcript().StudentInfo.Role)
}
