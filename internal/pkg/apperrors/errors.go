package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrUnsafeContent    = errors.New("content failed safety check")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// Note errors
var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteFileNotFound = errors.New("note file not found")
	ErrCommentNotFound  = errors.New("comment not found")
)

// Vendor errors
var (
	ErrVendorNotFound = errors.New("vendor not found")
)

// Accommodation errors
var (
	ErrAccommodationNotFound = errors.New("accommodation not found")
)

// Tutor errors
var (
	ErrTutorNotFound        = errors.New("tutor not found")
	ErrSlotNotFound         = errors.New("availability slot not found")
	ErrSlotAlreadyBooked    = errors.New("availability slot already booked")
	ErrSessionNotFound      = errors.New("tutor session not found")
	ErrInvalidSessionStatus = errors.New("invalid session status transition")
)

// Advertisement errors
var (
	ErrAdvertisementNotFound = errors.New("advertisement not found")
)

// File errors
var (
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
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

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// Is reports whether err matches target or any of the extra errors
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
