package academics

import (
	"fmt"
	"time"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// DefaultSecureEnrollmentLimit caps concurrently enrolled courses for a
// student accessed through the secure gateway. Enforced independently of any
// course-level capacity check.
const DefaultSecureEnrollmentLimit = 20

// AccessEntry is one line of a secure record's append-only access log.
type AccessEntry struct {
	Timestamp   time.Time
	RequesterID string
	Action      string
	StudentID   string
}

// SecureStudentRecord is an access-controlled, logged gateway around exactly
// one student. Every operation, successful or not, appends exactly one
// access-log entry; the action name carries outcome detail on failure.
type SecureStudentRecord struct {
	student            StudentRecord
	accessLog          []AccessEntry
	locked             bool
	maxEnrollmentLimit int
}

// NewSecureStudentRecord wraps a student. A limit of 0 applies
// DefaultSecureEnrollmentLimit.
func NewSecureStudentRecord(student StudentRecord, limit int) (*SecureStudentRecord, error) {
	if student == nil {
		return nil, apperrors.ErrNilStudent
	}

	if limit <= 0 {
		limit = DefaultSecureEnrollmentLimit
	}

	return &SecureStudentRecord{
		student:            student,
		maxEnrollmentLimit: limit,
	}, nil
}

// IsLocked reports whether the record gate is closed.
func (r *SecureStudentRecord) IsLocked() bool {
	return r.locked
}

// GetStudentInfo returns the wrapped student's basic info. Fails while the
// record is locked.
func (r *SecureStudentRecord) GetStudentInfo(requesterID string) (BasicInfo, error) {
	if r.locked {
		r.logAccess(requesterID, "info_access_denied_locked")
		return BasicInfo{}, fmt.Errorf("%w: %s", apperrors.ErrRecordLocked, r.student.StudentID())
	}

	r.logAccess(requesterID, "info_access")
	return r.student.BasicInfo(), nil
}

// EnrollCourseSecure enrolls the student after the gateway's own checks: the
// concurrent-enrollment cap and the suspension gate. Delegates to
// Student.Enroll on success.
func (r *SecureStudentRecord) EnrollCourseSecure(course *Course, requesterID, semester string) error {
	if course == nil {
		r.logAccess(requesterID, "enrollment_failed_nil_course")
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if r.student.EnrolledCount() >= r.maxEnrollmentLimit {
		r.logAccess(requesterID, "enrollment_failed_limit_reached")
		return fmt.Errorf("%w: cannot exceed %d courses", apperrors.ErrEnrollmentLimitReached, r.maxEnrollmentLimit)
	}

	if r.student.AcademicStatus() == StatusSuspension {
		r.logAccess(requesterID, "enrollment_failed_suspension")
		return fmt.Errorf("%w: %s", apperrors.ErrSuspended, r.student.StudentID())
	}

	if err := r.student.Enroll(course, semester); err != nil {
		r.logAccess(requesterID, fmt.Sprintf("enrollment_failed_%s", course.Code))
		return err
	}

	r.logAccess(requesterID, fmt.Sprintf("course_enrollment_%s", course.Code))
	return nil
}

// UpdateGPASecure re-validates the grade range independently before
// delegating to Student.AddGrade.
func (r *SecureStudentRecord) UpdateGPASecure(courseCode string, grade float64, requesterID string) error {
	ok := validation.NewRangeValidation(grade, validation.GradeMin, validation.GradeMax).Validate()
	if !ok {
		r.logAccess(requesterID, fmt.Sprintf("grade_update_failed_%s_invalid_grade", courseCode))
		return fmt.Errorf("%w: got %.2f", apperrors.ErrInvalidGrade, grade)
	}

	if err := r.student.AddGrade(courseCode, grade); err != nil {
		r.logAccess(requesterID, fmt.Sprintf("grade_update_failed_%s", courseCode))
		return err
	}

	r.logAccess(requesterID, fmt.Sprintf("grade_update_%s_%.1f", courseCode, grade))
	return nil
}

// LockRecord closes the gate. In-flight results already returned stay valid.
func (r *SecureStudentRecord) LockRecord(requesterID string) {
	r.locked = true
	r.logAccess(requesterID, "record_locked")
}

// UnlockRecord reopens the gate.
func (r *SecureStudentRecord) UnlockRecord(requesterID string) {
	r.locked = false
	r.logAccess(requesterID, "record_unlocked")
}

// AccessLog returns a copy of the access log. Viewing the log is itself a
// logged operation.
func (r *SecureStudentRecord) AccessLog(requesterID string) []AccessEntry {
	r.logAccess(requesterID, "access_log_viewed")

	log := make([]AccessEntry, len(r.accessLog))
	copy(log, r.accessLog)
	return log
}

// logAccess appends one entry and mirrors it to the application log.
func (r *SecureStudentRecord) logAccess(requesterID, action string) {
	r.accessLog = append(r.accessLog, AccessEntry{
		Timestamp:   time.Now(),
		RequesterID: requesterID,
		Action:      action,
		StudentID:   r.student.StudentID(),
	})

	logger.Info().
		Str("requester_id", requesterID).
		Str("action", action).
		Str("student_id", r.student.StudentID()).
		Msg("Secure record access")
}
