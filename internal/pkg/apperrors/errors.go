package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Moderation errors
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Dependency errors (backing store, blob storage)
	ErrDependencyFailure = errors.New("dependency failure")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRegNumberExists    = errors.New("registration number already exists")
	ErrUsernameExists     = errors.New("username already exists")
)

// Content errors
var (
	ErrBlogNotFound    = errors.New("blog not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Reaction errors
var (
	ErrLikeNotFound   = errors.New("like not found")
	ErrAlreadyLiked   = errors.New("already liked")
	ErrNotParticipant = errors.New("user is not an event participant")
)

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewTransitionError creates an invalid-state-transition error with a message
func NewTransitionError(message string) error {
	return &CustomError{
		Err:     ErrInvalidStateTransition,
		Message: message,
	}
}

// NewDependencyError wraps a lower-level failure from the store or a collaborator
func NewDependencyError(message string, cause error) error {
	return &CustomError{
		Err:     ErrDependencyFailure,
		Message: message,
		Cause:   cause,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
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

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
