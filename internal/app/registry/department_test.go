package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/academics"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

const testTerm = "Fall 2026"

func newTestProfessor(t *testing.T, name, email string) *academics.Professor {
	t.Helper()
	professor, err := academics.NewProfessor(name, email, "", "Computer Science", 90000, true)
	require.NoError(t, err)
	return professor
}

func newTestDepartment(t *testing.T) *Department {
	t.Helper()
	head := newTestProfessor(t, "Alan Turing", "alan@university.edu")
	department, err := NewDepartment("CS", "Computer Science", head)
	require.NoError(t, err)
	return department
}

func newTestCourse(t *testing.T, code string, credits, capacity int, prerequisites ...string) *academics.Course {
	t.Helper()
	course, err := academics.NewCourse(code, "Course "+code, credits, prerequisites, capacity)
	require.NoError(t, err)
	return course
}

func newTestUndergrad(t *testing.T, name, email string) *academics.UndergraduateStudent {
	t.Helper()
	student, err := academics.NewUndergraduateStudent(name, email, "", "Computer Science", "", testTerm)
	require.NoError(t, err)
	return student
}

func TestNewDepartment_RequiresCodeAndName(t *testing.T) {
	_, err := NewDepartment("", "Computer Science", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = NewDepartment("CS", "", nil)
	require.Error(t, err)
}

func TestNewDepartment_HeadJoinsRoster(t *testing.T) {
	department := newTestDepartment(t)

	assert.Equal(t, 1, department.FacultyCount())
	assert.Equal(t, "Alan Turing", department.Head().Name())
}

func TestDepartment_AddFaculty_Duplicate(t *testing.T) {
	department := newTestDepartment(t)
	lecturer, err := academics.NewLecturer("Ada Lovelace", "ada@university.edu", "", "Computer Science", "", 65000)
	require.NoError(t, err)

	require.NoError(t, department.AddFaculty(lecturer))
	err = department.AddFaculty(lecturer)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateFaculty)
	assert.Equal(t, 2, department.FacultyCount())
}

func TestDepartment_AddCourse_Duplicate(t *testing.T) {
	department := newTestDepartment(t)
	course := newTestCourse(t, "CS101", 3, 30)

	require.NoError(t, department.AddCourse(course))
	err := department.AddCourse(course)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCourse)
}

func TestDepartment_AddStudent_Duplicate(t *testing.T) {
	department := newTestDepartment(t)
	student := newTestUndergrad(t, "Alice Smith", "alice@student.edu")

	require.NoError(t, department.AddStudent(student))
	err := department.AddStudent(student)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
}

func TestDepartment_Lookups(t *testing.T) {
	department := newTestDepartment(t)

	_, err := department.CourseByCode("CS101")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = department.StudentByID("UG00000000")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDepartment_AssignInstructor(t *testing.T) {
	department := newTestDepartment(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, department.AddCourse(course))

	err := department.AssignInstructor("CS101", "FACmissing")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)

	require.NoError(t, department.AssignInstructor("CS101", department.Head().FacultyID()))
	require.NotNil(t, course.Instructor())
	assert.Equal(t, "Alan Turing", course.Instructor().Name())
}

func TestDepartment_RegisterStudentForCourse(t *testing.T) {
	department := newTestDepartment(t)
	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, department.AddCourse(course))
	student := newTestUndergrad(t, "Alice Smith", "alice@student.edu")
	require.NoError(t, department.AddStudent(student))

	require.NoError(t, department.RegisterStudentForCourse(student.StudentID(), "CS101", testTerm))
	assert.Len(t, course.EnrolledStudents, 1)

	// Enrollment errors surface unchanged.
	err := department.RegisterStudentForCourse(student.StudentID(), "CS101", testTerm)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestDepartment_EnrollmentStatistics(t *testing.T) {
	department := newTestDepartment(t)

	lecturer, err := academics.NewLecturer("Ada Lovelace", "ada@university.edu", "", "Computer Science", "", 65000)
	require.NoError(t, err)
	ta, err := academics.NewTA("Grace Hopper", "grace@university.edu", "", "Computer Science", academics.TALevelPhD, 22000)
	require.NoError(t, err)
	require.NoError(t, department.AddFaculty(lecturer))
	require.NoError(t, department.AddFaculty(ta))

	undergrad := newTestUndergrad(t, "Alice Smith", "alice@student.edu")
	grad, err := academics.NewGraduateStudent("Carol White", "carol@student.edu", "", "Computer Science", "", testTerm)
	require.NoError(t, err)
	require.NoError(t, department.AddStudent(undergrad))
	require.NoError(t, department.AddStudent(grad))

	first := newTestCourse(t, "CS101", 3, 30)
	second := newTestCourse(t, "CS102", 3, 30)
	require.NoError(t, department.AddCourse(first))
	require.NoError(t, department.AddCourse(second))
	require.NoError(t, department.AssignInstructor("CS101", lecturer.FacultyID()))
	require.NoError(t, department.RegisterStudentForCourse(undergrad.StudentID(), "CS101", testTerm))
	require.NoError(t, department.RegisterStudentForCourse(grad.StudentID(), "CS101", testTerm))
	require.NoError(t, department.RegisterStudentForCourse(undergrad.StudentID(), "CS102", testTerm))

	stats := department.EnrollmentStatistics()

	assert.Equal(t, "CS", stats.DepartmentInfo.Code)
	assert.Equal(t, "Alan Turing", stats.DepartmentInfo.Head)

	assert.Equal(t, 3, stats.FacultyStats.Total)
	assert.Equal(t, 1, stats.FacultyStats.Professors)
	assert.Equal(t, 1, stats.FacultyStats.Lecturers)
	assert.Equal(t, 1, stats.FacultyStats.TAs)

	assert.Equal(t, 2, stats.StudentStats.Total)
	assert.Equal(t, 1, stats.StudentStats.Undergraduate)
	assert.Equal(t, 1, stats.StudentStats.Graduate)

	assert.Equal(t, 2, stats.CourseStats.TotalCourses)
	assert.Equal(t, 1, stats.CourseStats.CoursesWithInstructors)
	assert.Equal(t, 3, stats.CourseStats.TotalEnrollment)
	assert.Equal(t, 1.5, stats.CourseStats.AverageClassSize)
}

func TestDepartment_CourseSchedule(t *testing.T) {
	department := newTestDepartment(t)

	second := newTestCourse(t, "CS102", 3, 30)
	first := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, department.AddCourse(second))
	require.NoError(t, department.AddCourse(first))
	require.NoError(t, department.AssignInstructor("CS101", department.Head().FacultyID()))

	schedule := department.CourseSchedule()

	require.Len(t, schedule, 2)
	assert.Equal(t, "CS101", schedule[0].CourseCode)
	assert.Equal(t, "Alan Turing", schedule[0].Instructor)
	assert.Equal(t, "CS102", schedule[1].CourseCode)
	assert.Equal(t, "TBA", schedule[1].Instructor)
	assert.Equal(t, 30, schedule[0].AvailableSeats)
}

func TestDepartment_FacultyWorkloadReport(t *testing.T) {
	department := newTestDepartment(t)
	lecturer, err := academics.NewLecturer("Ada Lovelace", "ada@university.edu", "", "Computer Science", "", 65000)
	require.NoError(t, err)
	require.NoError(t, department.AddFaculty(lecturer))

	course := newTestCourse(t, "CS101", 3, 30)
	require.NoError(t, department.AddCourse(course))
	require.NoError(t, department.AssignInstructor("CS101", lecturer.FacultyID()))

	report := department.FacultyWorkloadReport()

	require.Len(t, report, 2)
	byRole := make(map[string]WorkloadEntry, len(report))
	for _, entry := range report {
		byRole[entry.Role] = entry
	}

	require.Contains(t, byRole, "Professor")
	require.Contains(t, byRole, "Lecturer")
	assert.Equal(t, "Professor", byRole["Professor"].Workload.Type)
	assert.Equal(t, "Lecturer", byRole["Lecturer"].Workload.Type)
	assert.Equal(t, 1, byRole["Lecturer"].Workload.Courses)
	assert.Equal(t, 0, byRole["Professor"].Workload.Courses)
}

func TestDepartment_Courses_Sorted(t *testing.T) {
	department := newTestDepartment(t)
	require.NoError(t, department.AddCourse(newTestCourse(t, "CS301", 3, 30)))
	require.NoError(t, department.AddCourse(newTestCourse(t, "CS101", 3, 30)))
	require.NoError(t, department.AddCourse(newTestCourse(t, "CS201", 3, 30)))

	courses := department.Courses()

	codes := []string{courses[0].Code, courses[1].Code, courses[2].Code}
	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, codes)
}
