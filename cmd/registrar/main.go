package main

import (
	"os"

	"github.com/yigit/registrar/internal/app/academics"
	"github.com/yigit/registrar/internal/app/registry"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/logger"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})

	term := cfg.Academics.Term
	logger.Info().Str("term", term).Msg("Starting registrar demonstration")

	department, students, err := buildDepartment(term, cfg.Academics.CourseCapacity)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build department")
		os.Exit(1)
	}

	runEnrollmentFlow(department, students, term)
	runSecureRecordFlow(students[0], cfg.Academics.SecureEnrollCap)
	runCrossRegistrationFlow(department, term)
	reportWorkloads(department)

	logger.Info().Msg("Demonstration complete")
}

// buildDepartment assembles a computer science department with faculty,
// courses, and students.
func buildDepartment(term string, capacity int) (*registry.Department, []academics.StudentRecord, error) {
	head, err := academics.NewProfessor("Alan Turing", "alan.turing@university.edu", "555-0401", "Computer Science", 90000, true)
	if err != nil {
		return nil, nil, err
	}
	head.AddResearchGrant("Computability Theory")
	head.AddPhDStudent("GR000001")
	head.JoinCommittee("Curriculum Committee")

	department, err := registry.NewDepartment("CS", "Computer Science", head)
	if err != nil {
		return nil, nil, err
	}

	lecturer, err := academics.NewLecturer("Ada Lovelace", "ada.lovelace@university.edu", "555-0402", "Computer Science", academics.ContractFullTime, 65000)
	if err != nil {
		return nil, nil, err
	}
	ta, err := academics.NewTA("Grace Hopper", "grace.hopper@university.edu", "555-0403", "Computer Science", academics.TALevelPhD, 22000)
	if err != nil {
		return nil, nil, err
	}
	if err := department.AddFaculty(lecturer); err != nil {
		return nil, nil, err
	}
	if err := department.AddFaculty(ta); err != nil {
		return nil, nil, err
	}

	catalog := []struct {
		code          string
		name          string
		credits       int
		prerequisites []string
	}{
		{"CS101", "Introduction to Computer Science", 3, nil},
		{"CS201", "Data Structures", 3, []string{"CS101"}},
		{"CS301", "Algorithms", 3, []string{"CS201"}},
		{"CS499", "Undergraduate Research Project", 3, []string{"CS201"}},
	}
	for _, entry := range catalog {
		course, err := academics.NewCourse(entry.code, entry.name, entry.credits, entry.prerequisites, capacity)
		if err != nil {
			return nil, nil, err
		}
		if err := department.AddCourse(course); err != nil {
			return nil, nil, err
		}
	}

	if err := department.AssignInstructor("CS101", head.FacultyID()); err != nil {
		return nil, nil, err
	}
	if err := department.AssignInstructor("CS201", lecturer.FacultyID()); err != nil {
		return nil, nil, err
	}
	cs101, err := department.CourseByCode("CS101")
	if err != nil {
		return nil, nil, err
	}
	if err := ta.AssistCourse(cs101, []string{"Lab supervision", "Grading"}); err != nil {
		return nil, nil, err
	}

	undergrad, err := academics.NewUndergraduateStudent("Alice Smith", "alice.smith@student.edu", "555-0501", "Computer Science", academics.ClassSophomore, term)
	if err != nil {
		return nil, nil, err
	}
	grad, err := academics.NewGraduateStudent("Carol White", "carol.white@student.edu", "555-0503", "Computer Science", academics.DegreePhD, term)
	if err != nil {
		return nil, nil, err
	}

	students := []academics.StudentRecord{undergrad, grad}
	for _, student := range students {
		if err := department.AddStudent(student); err != nil {
			return nil, nil, err
		}
	}

	return department, students, nil
}

// runEnrollmentFlow walks a student through prerequisites, grading, and GPA.
func runEnrollmentFlow(department *registry.Department, students []academics.StudentRecord, term string) {
	student := students[0]

	// CS201 requires CS101, so this first attempt must fail.
	err := department.RegisterStudentForCourse(student.StudentID(), "CS201", term)
	logger.Info().Err(err).Str("student_id", student.StudentID()).
		Msg("Enrollment without prerequisites rejected")

	if err := department.RegisterStudentForCourse(student.StudentID(), "CS101", term); err != nil {
		logger.Error().Err(err).Msg("CS101 enrollment failed")
		return
	}
	if err := student.AddGrade("CS101", 3.5); err != nil {
		logger.Error().Err(err).Msg("Grading CS101 failed")
		return
	}

	if err := department.RegisterStudentForCourse(student.StudentID(), "CS201", term); err != nil {
		logger.Error().Err(err).Msg("CS201 enrollment failed")
		return
	}
	if err := student.AddGrade("CS201", 3.7); err != nil {
		logger.Error().Err(err).Msg("Grading CS201 failed")
		return
	}

	transcript := student.Transcript()
	logger.Info().
		Str("student_id", student.StudentID()).
		Float64("gpa", transcript.CurrentGPA).
		Str("status", string(transcript.AcademicStatus)).
		Int("credits", transcript.TotalCredits).
		Msg("Transcript after grading")
}

// runSecureRecordFlow demonstrates the access-controlled gateway.
func runSecureRecordFlow(student academics.StudentRecord, limit int) {
	record, err := academics.NewSecureStudentRecord(student, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to wrap student record")
		return
	}

	requester := "admin_001"

	if info, err := record.GetStudentInfo(requester); err == nil {
		logger.Info().Str("name", info.Name).Str("role", info.Role).Msg("Secure info access")
	}

	record.LockRecord(requester)
	if _, err := record.GetStudentInfo("unauthorized_user"); err != nil {
		logger.Info().Err(err).Msg("Locked record rejected access")
	}
	record.UnlockRecord(requester)

	entries := record.AccessLog(requester)
	logger.Info().Int("entries", len(entries)).Msg("Access log inspected")
}

// runCrossRegistrationFlow wires two departments into a registration system.
func runCrossRegistrationFlow(csDepartment *registry.Department, term string) {
	mathHead, err := academics.NewProfessor("Emmy Noether", "emmy.noether@university.edu", "555-0602", "Mathematics", 88000, true)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create math department head")
		return
	}
	mathDepartment, err := registry.NewDepartment("MATH", "Mathematics", mathHead)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create math department")
		return
	}

	math101, err := academics.NewCourse("MATH101", "Calculus I", 4, nil, 0)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create MATH101")
		return
	}
	if err := mathDepartment.AddCourse(math101); err != nil {
		logger.Error().Err(err).Msg("Failed to add MATH101")
		return
	}

	system := registry.NewRegistrationSystem()
	if err := system.AddDepartment(csDepartment); err != nil {
		logger.Error().Err(err).Msg("Failed to add CS department")
		return
	}
	if err := system.AddDepartment(mathDepartment); err != nil {
		logger.Error().Err(err).Msg("Failed to add math department")
		return
	}

	stats := csDepartment.EnrollmentStatistics()
	student, err := csDepartment.StudentByID(firstStudentID(csDepartment))
	if err != nil {
		logger.Error().Err(err).Msg("No student available for cross-registration")
		return
	}

	if err := system.CrossRegister(student.StudentID(), "MATH101", term); err != nil {
		logger.Warn().Err(err).Msg("Cross-registration rejected")
	}

	report := system.GenerateSystemReport()
	logger.Info().
		Int("departments", report.Overview.TotalDepartments).
		Int("students", stats.StudentStats.Total).
		Int("registrations", report.Overview.TotalRegistrations).
		Float64("success_rate", report.Efficiency.RegistrationSuccessRate).
		Msg("System report")
}

// reportWorkloads logs the polymorphic workload summary per faculty member.
func reportWorkloads(department *registry.Department) {
	departmentLogger := logger.WithField("department", department.Code())
	for _, entry := range department.FacultyWorkloadReport() {
		departmentLogger.Info().
			Str("faculty", entry.Name).
			Str("role", entry.Role).
			Str("type", entry.Workload.Type).
			Int("courses", entry.Workload.Courses).
			Int("students", entry.Workload.TotalStudents).
			Int("load_points", entry.Workload.TotalLoadPoints).
			Msg("Faculty workload")
	}
}

// firstStudentID returns a deterministic student from the roster via the
// schedule-free statistics path.
func firstStudentID(department *registry.Department) string {
	stats := department.EnrollmentStatistics()
	if stats.StudentStats.Total == 0 {
		return ""
	}
	// Rosters are keyed by ID; the demo only needs any registered student.
	for _, course := range department.Courses() {
		if len(course.EnrolledStudents) > 0 {
			return course.EnrolledStudents[0]
		}
	}
	return ""
}
