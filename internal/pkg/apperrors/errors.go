package apperrors

import "errors"

// Validation errors. These are fatal to the call that triggered them: the
// caller supplied bad input and must fix it.
var (
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidName         = errors.New("name must be a non-empty string of at least 2 characters")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidGrade        = errors.New("grade must be between 0.0 and 4.0")
	ErrInvalidSalary       = errors.New("salary cannot be negative")
	ErrInvalidCredits      = errors.New("credits must be a positive integer")
	ErrInvalidWeekday      = errors.New("invalid day of the week")
	ErrInvalidClassYear    = errors.New("invalid class year")
	ErrInvalidDegreeType   = errors.New("invalid degree type")
	ErrInvalidContractType = errors.New("invalid contract type")
	ErrInvalidTALevel      = errors.New("invalid TA level")
	ErrNilStudent          = errors.New("a valid student is required")
)

// Enrollment errors. Expected, recoverable conditions reported as values the
// caller branches on with errors.Is.
var (
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrCourseFull         = errors.New("course is full")
	ErrPrerequisitesUnmet = errors.New("prerequisites not met")
	ErrNotEnrolled        = errors.New("not enrolled in course")
)

// Teaching assignment errors
var (
	ErrAlreadyTeaching  = errors.New("already teaching course")
	ErrNotTeaching      = errors.New("not currently teaching course")
	ErrAlreadyAssisting = errors.New("already assisting course")
)

// Secure record errors
var (
	ErrRecordLocked           = errors.New("student record is locked")
	ErrEnrollmentLimitReached = errors.New("secure enrollment limit reached")
	ErrSuspended              = errors.New("cannot enroll while on academic suspension")
)

// Registry errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrFacultyNotFound  = errors.New("faculty member not found")
	ErrDuplicateCourse  = errors.New("course already offered by department")
	ErrDuplicateStudent = errors.New("student already registered with department")
	ErrDuplicateFaculty = errors.New("faculty member already in department")
)

// Is returns whether err matches target or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
