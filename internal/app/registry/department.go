// Package registry composes students, courses, and faculty into departments
// and a cross-department registration system. It consumes only the public
// operations of the academics package and holds no enrollment logic of its
// own.
package registry

import (
	"fmt"
	"sort"

	"github.com/yigit/registrar/internal/app/academics"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// DepartmentInfo identifies a department in reports.
type DepartmentInfo struct {
	Code string
	Name string
	Head string
}

// FacultyStats breaks the faculty roster down by variant.
type FacultyStats struct {
	Total      int
	Professors int
	Lecturers  int
	TAs        int
}

// StudentStats breaks the student roster down by variant.
type StudentStats struct {
	Total         int
	Undergraduate int
	Graduate      int
}

// CourseStats summarizes the course catalog and its enrollment.
type CourseStats struct {
	TotalCourses           int
	CoursesWithInstructors int
	TotalEnrollment        int
	AverageClassSize       float64
}

// EnrollmentStatistics is a department's full statistics snapshot.
type EnrollmentStatistics struct {
	DepartmentInfo DepartmentInfo
	FacultyStats   FacultyStats
	StudentStats   StudentStats
	CourseStats    CourseStats
}

// ScheduleEntry is one course line of a department schedule.
type ScheduleEntry struct {
	CourseCode     string
	CourseName     string
	Instructor     string
	Enrolled       int
	AvailableSeats int
}

// WorkloadEntry pairs a faculty member with their computed workload.
type WorkloadEntry struct {
	FacultyID string
	Name      string
	Role      string
	Workload  academics.Workload
}

// Department aggregates the faculty, students, and courses of one academic
// unit.
type Department struct {
	code     string
	name     string
	head     *academics.Professor
	faculty  map[string]academics.FacultyMember
	students map[string]academics.StudentRecord
	courses  map[string]*academics.Course
}

// NewDepartment creates a department led by the given professor. The head is
// also added to the faculty roster.
func NewDepartment(code, name string, head *academics.Professor) (*Department, error) {
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: department code and name are required", apperrors.ErrValidationFailed)
	}

	d := &Department{
		code:     code,
		name:     name,
		head:     head,
		faculty:  make(map[string]academics.FacultyMember),
		students: make(map[string]academics.StudentRecord),
		courses:  make(map[string]*academics.Course),
	}

	if head != nil {
		d.faculty[head.FacultyID()] = head
	}

	return d, nil
}

// Code returns the department code.
func (d *Department) Code() string {
	return d.code
}

// Name returns the department name.
func (d *Department) Name() string {
	return d.name
}

// Head returns the department head, nil when unset.
func (d *Department) Head() *academics.Professor {
	return d.head
}

// AddFaculty adds a faculty member to the roster.
func (d *Department) AddFaculty(member academics.FacultyMember) error {
	if member == nil {
		return fmt.Errorf("%w: faculty member is nil", apperrors.ErrValidationFailed)
	}

	if _, exists := d.faculty[member.FacultyID()]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateFaculty, member.FacultyID())
	}

	d.faculty[member.FacultyID()] = member
	return nil
}

// FacultyCount returns the size of the faculty roster.
func (d *Department) FacultyCount() int {
	return len(d.faculty)
}

// AddCourse adds a course to the catalog.
func (d *Department) AddCourse(course *academics.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if _, exists := d.courses[course.Code]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCourse, course.Code)
	}

	d.courses[course.Code] = course
	return nil
}

// CourseCount returns the size of the course catalog.
func (d *Department) CourseCount() int {
	return len(d.courses)
}

// CourseByCode looks up a course in the catalog.
func (d *Department) CourseByCode(code string) (*academics.Course, error) {
	course, exists := d.courses[code]
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, code)
	}
	return course, nil
}

// AddStudent adds a student to the roster.
func (d *Department) AddStudent(student academics.StudentRecord) error {
	if student == nil {
		return fmt.Errorf("%w", apperrors.ErrNilStudent)
	}

	if _, exists := d.students[student.StudentID()]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateStudent, student.StudentID())
	}

	d.students[student.StudentID()] = student
	return nil
}

// StudentCount returns the size of the student roster.
func (d *Department) StudentCount() int {
	return len(d.students)
}

// StudentByID looks up a student in the roster.
func (d *Department) StudentByID(studentID string) (academics.StudentRecord, error) {
	student, exists := d.students[studentID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, studentID)
	}
	return student, nil
}

// AssignInstructor assigns a catalog course to a rostered faculty member.
func (d *Department) AssignInstructor(courseCode, facultyID string) error {
	course, err := d.CourseByCode(courseCode)
	if err != nil {
		return err
	}

	member, exists := d.faculty[facultyID]
	if !exists {
		return fmt.Errorf("%w: %s", apperrors.ErrFacultyNotFound, facultyID)
	}

	return member.AssignCourse(course)
}

// RegisterStudentForCourse enrolls a rostered student in a catalog course.
func (d *Department) RegisterStudentForCourse(studentID, courseCode, semester string) error {
	student, err := d.StudentByID(studentID)
	if err != nil {
		return err
	}

	course, err := d.CourseByCode(courseCode)
	if err != nil {
		return err
	}

	return student.Enroll(course, semester)
}

// EnrollmentStatistics computes the department statistics snapshot.
func (d *Department) EnrollmentStatistics() EnrollmentStatistics {
	stats := EnrollmentStatistics{
		DepartmentInfo: DepartmentInfo{
			Code: d.code,
			Name: d.name,
		},
	}
	if d.head != nil {
		stats.DepartmentInfo.Head = d.head.Name()
	}

	stats.FacultyStats.Total = len(d.faculty)
	for _, member := range d.faculty {
		switch member.(type) {
		case *academics.Professor:
			stats.FacultyStats.Professors++
		case *academics.Lecturer:
			stats.FacultyStats.Lecturers++
		case *academics.TA:
			stats.FacultyStats.TAs++
		}
	}

	stats.StudentStats.Total = len(d.students)
	for _, student := range d.students {
		switch student.(type) {
		case *academics.UndergraduateStudent:
			stats.StudentStats.Undergraduate++
		case *academics.GraduateStudent:
			stats.StudentStats.Graduate++
		}
	}

	stats.CourseStats.TotalCourses = len(d.courses)
	for _, course := range d.courses {
		if course.Instructor() != nil {
			stats.CourseStats.CoursesWithInstructors++
		}
		stats.CourseStats.TotalEnrollment += len(course.EnrolledStudents)
	}
	if len(d.courses) > 0 {
		stats.CourseStats.AverageClassSize = helpers.Round2(
			float64(stats.CourseStats.TotalEnrollment) / float64(len(d.courses)))
	}

	return stats
}

// CourseSchedule returns the catalog as schedule lines sorted by course code.
func (d *Department) CourseSchedule() []ScheduleEntry {
	schedule := make([]ScheduleEntry, 0, len(d.courses))

	for _, course := range d.courses {
		entry := ScheduleEntry{
			CourseCode:     course.Code,
			CourseName:     course.Name,
			Instructor:     "TBA",
			Enrolled:       len(course.EnrolledStudents),
			AvailableSeats: course.AvailableSeats(),
		}
		if instructor := course.Instructor(); instructor != nil {
			entry.Instructor = instructor.Name()
		}
		schedule = append(schedule, entry)
	}

	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].CourseCode < schedule[j].CourseCode
	})

	return schedule
}

// FacultyWorkloadReport computes every rostered member's workload, sorted by
// faculty ID for stable output.
func (d *Department) FacultyWorkloadReport() []WorkloadEntry {
	report := make([]WorkloadEntry, 0, len(d.faculty))

	for _, member := range d.faculty {
		report = append(report, WorkloadEntry{
			FacultyID: member.FacultyID(),
			Name:      member.BasicInfo().Name,
			Role:      member.Role(),
			Workload:  member.CalculateWorkload(),
		})
	}

	sort.Slice(report, func(i, j int) bool {
		return report[i].FacultyID < report[j].FacultyID
	})

	return report
}

// Courses returns the catalog sorted by course code.
func (d *Department) Courses() []*academics.Course {
	courses := make([]*academics.Course, 0, len(d.courses))
	for _, course := range d.courses {
		courses = append(courses, course)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Code < courses[j].Code
	})

	return courses
}
