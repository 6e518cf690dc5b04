package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNumberExists    = errors.New("school number already exists")
)

// Incident errors
var (
	ErrIncidentNotFound    = errors.New("incident not found")
	ErrAlreadyInvolved     = errors.New("student already involved in incident")
	ErrInvolvementNotFound = errors.New("student is not involved in incident")
	ErrInvalidRole         = errors.New("invalid involvement role")
)

// Catalog errors
var (
	ErrSelectionMissing = errors.New("incident and student selection required")
	ErrCategoryNotFound = errors.New("penalty category not found")
	ErrArticleNotFound  = errors.New("penalty article not found")
)

// Document errors
var (
	ErrUnknownTemplate = errors.New("unknown document template")
	ErrContextMissing  = errors.New("document context requires a selected incident and student")
)

// Settings errors
var (
	ErrBoardMemberNotFound = errors.New("board member not found")
	ErrBoardTooSmall       = errors.New("board must keep at least 3 members")
)

// Import errors
var (
	ErrNoStudentBlocks = errors.New("no student blocks found in workbook")
)

// NewValidationError creates a validation error with a user-facing message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a user-facing message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// CustomError wraps a sentinel error with additional context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
