package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yigit/registrar/internal/app/academics"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// CourseOption is a course a student could register for.
type CourseOption struct {
	CourseCode     string
	CourseName     string
	AvailableSeats int
}

// DepartmentOptions groups a department's open courses for one student.
type DepartmentOptions struct {
	DepartmentName string
	Courses        []CourseOption
}

// SystemOverview totals the registration system's contents.
type SystemOverview struct {
	TotalDepartments   int
	TotalStudents      int
	TotalCourses       int
	TotalRegistrations int
}

// SystemEfficiency summarizes how well seats are being used.
type SystemEfficiency struct {
	RegistrationSuccessRate float64
	AverageClassSize        float64
	CourseUtilization       float64
}

// PopularCourse is a course ranked by enrollment.
type PopularCourse struct {
	CourseCode string
	CourseName string
	Enrolled   int
}

// SystemReport is the system-wide registration report.
type SystemReport struct {
	Overview       SystemOverview
	Efficiency     SystemEfficiency
	PopularCourses []PopularCourse
}

// RegistrationSystem lets students register for courses across departments.
type RegistrationSystem struct {
	departments map[string]*Department
	attempts    int
	successes   int
}

// NewRegistrationSystem creates an empty registration system.
func NewRegistrationSystem() *RegistrationSystem {
	return &RegistrationSystem{
		departments: make(map[string]*Department),
	}
}

// AddDepartment registers a department with the system.
func (r *RegistrationSystem) AddDepartment(department *Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if _, exists := r.departments[department.Code()]; exists {
		return fmt.Errorf("%w: department %s already registered", apperrors.ErrValidationFailed, department.Code())
	}

	r.departments[department.Code()] = department
	return nil
}

// DepartmentCount returns the number of registered departments.
func (r *RegistrationSystem) DepartmentCount() int {
	return len(r.departments)
}

// CrossRegister enrolls a student from any department in a course offered by
// any department. Registration attempts and successes feed the system report.
func (r *RegistrationSystem) CrossRegister(studentID, courseCode, semester string) error {
	r.attempts++

	student, err := r.findStudent(studentID)
	if err != nil {
		return r.registrationFailed(err, studentID, courseCode, semester)
	}

	course, err := r.findCourse(courseCode)
	if err != nil {
		return r.registrationFailed(err, studentID, courseCode, semester)
	}

	if err := student.Enroll(course, semester); err != nil {
		return r.registrationFailed(err, studentID, courseCode, semester)
	}

	r.successes++
	logger.Info().Str("student_id", studentID).Str("course_code", courseCode).
		Str("semester", semester).Msg("Cross-registration succeeded")
	return nil
}

// registrationFailed logs a failed attempt and wraps the cause with the
// attempt's context. The cause stays reachable through errors.Is.
func (r *RegistrationSystem) registrationFailed(cause error, studentID, courseCode, semester string) error {
	message := "cross-registration rejected"
	if apperrors.Is(cause, apperrors.ErrStudentNotFound, apperrors.ErrCourseNotFound) {
		message = "cross-registration target not found"
	}

	logger.Warn().Str("student_id", studentID).Str("course_code", courseCode).Err(cause).
		Msg("Cross-registration failed")

	return apperrors.NewCustomError(cause, message).
		WithCode("CROSS_REGISTRATION_FAILED").
		WithDetails(map[string]interface{}{
			"student_id":  studentID,
			"course_code": courseCode,
			"semester":    semester,
		})
}

// StudentOptions lists, per department, the open courses the student is not
// already enrolled in. Keyed by department code.
func (r *RegistrationSystem) StudentOptions(studentID string) (map[string]DepartmentOptions, error) {
	student, err := r.findStudent(studentID)
	if err != nil {
		return nil, err
	}

	enrollments := student.Enrollments()
	options := make(map[string]DepartmentOptions, len(r.departments))

	for code, department := range r.departments {
		deptOptions := DepartmentOptions{DepartmentName: department.Name()}

		for _, course := range department.Courses() {
			if _, enrolled := enrollments[course.Code]; enrolled {
				continue
			}
			if course.IsFull() {
				continue
			}
			deptOptions.Courses = append(deptOptions.Courses, CourseOption{
				CourseCode:     course.Code,
				CourseName:     course.Name,
				AvailableSeats: course.AvailableSeats(),
			})
		}

		options[code] = deptOptions
	}

	return options, nil
}

// GenerateSystemReport computes the system-wide overview, efficiency figures,
// and the courses ranked by enrollment.
func (r *RegistrationSystem) GenerateSystemReport() SystemReport {
	var report SystemReport

	report.Overview.TotalDepartments = len(r.departments)
	report.Overview.TotalRegistrations = r.successes

	totalEnrollment := 0
	totalCapacity := 0

	for _, department := range r.departments {
		report.Overview.TotalStudents += department.StudentCount()
		report.Overview.TotalCourses += department.CourseCount()

		for _, course := range department.Courses() {
			totalEnrollment += len(course.EnrolledStudents)
			totalCapacity += course.MaxEnrollment
			report.PopularCourses = append(report.PopularCourses, PopularCourse{
				CourseCode: course.Code,
				CourseName: course.Name,
				Enrolled:   len(course.EnrolledStudents),
			})
		}
	}

	if r.attempts > 0 {
		report.Efficiency.RegistrationSuccessRate = helpers.Round2(
			100 * float64(r.successes) / float64(r.attempts))
	}
	if report.Overview.TotalCourses > 0 {
		report.Efficiency.AverageClassSize = helpers.Round2(
			float64(totalEnrollment) / float64(report.Overview.TotalCourses))
	}
	if totalCapacity > 0 {
		report.Efficiency.CourseUtilization = helpers.Round2(
			100 * float64(totalEnrollment) / float64(totalCapacity))
	}

	sort.Slice(report.PopularCourses, func(i, j int) bool {
		if report.PopularCourses[i].Enrolled != report.PopularCourses[j].Enrolled {
			return report.PopularCourses[i].Enrolled > report.PopularCourses[j].Enrolled
		}
		return report.PopularCourses[i].CourseCode < report.PopularCourses[j].CourseCode
	})

	return report
}

// findStudent scans every department roster for a student ID.
func (r *RegistrationSystem) findStudent(studentID string) (academics.StudentRecord, error) {
	for _, department := range r.departments {
		student, err := department.StudentByID(studentID)
		if err == nil {
			return student, nil
		}
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentID)
}

// findCourse scans every department catalog for a course code.
func (r *RegistrationSystem) findCourse(courseCode string) (*academics.Course, error) {
	for _, department := range r.departments {
		course, err := department.CourseByCode(courseCode)
		if err == nil {
			return course, nil
		}
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, courseCode)
}
