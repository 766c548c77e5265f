package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrUniversityNotFound = errors.New("university not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAttributeNotFound  = errors.New("rating attribute not found")
	ErrProfessorNotFound  = errors.New("professor not found")
	ErrTANotFound         = errors.New("teaching assistant not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidRatingValue = errors.New("rating value outside accepted range")
	ErrInvalidCourseCode  = errors.New("malformed course code")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrBadRequest         = errors.New("bad request")
)

// Conflict errors
var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrUniversityAlreadyExists = errors.New("university with this code already exists")
	ErrCourseAlreadyExists     = errors.New("course with this code already exists at this university")
	ErrAttributeAlreadyExists  = errors.New("rating attribute with this name already exists")
	ErrDuplicateRating         = errors.New("account has already rated this course")
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}



// Is returns whether target matches any of the errors in errList
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




