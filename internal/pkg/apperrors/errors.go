package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Authentication / authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Attendance lifecycle errors
var (
	// ErrDuplicateOpenSession is returned when a student already has an open
	// record for today's date.
	ErrDuplicateOpenSession = errors.New("duplicate open session")
	// ErrNoOpenSession is returned by checkout when no open record exists.
	ErrNoOpenSession = errors.New("no open session")
	// ErrRecordNotFound covers missing records, records owned by another
	// supervisor and records already in a terminal state.
	ErrRecordNotFound = errors.New("attendance record not found")
	// ErrMissingObservation is returned when a rejection carries no observation.
	ErrMissingObservation = errors.New("observation is required")
	// ErrStudentNotFound is returned when the student row backing an operation
	// is missing or inconsistent.
	ErrStudentNotFound = errors.New("student not found")
	// ErrSupervisorNotFound is returned when the supervisor row is missing.
	ErrSupervisorNotFound = errors.New("supervisor not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
