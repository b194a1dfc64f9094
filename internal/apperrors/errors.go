package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the supplied credentials or token were rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotConfigured is returned when an upstream provider has no usable credentials.
var ErrNotConfigured = errors.New("provider not configured")

// ErrRateLimited is returned when an upstream provider answered 429.
var ErrRateLimited = errors.New("upstream rate limit exceeded")

// ErrUpstream wraps any other non-success answer from an upstream provider.
var ErrUpstream = errors.New("upstream provider error")

// ErrStoreUnavailable is returned by every call against a store that could not be opened.
var ErrStoreUnavailable = errors.New("persistent store unavailable")

// AppError is an error carrying the HTTP status and the user-facing message.
// It serializes to the standard failure envelope.
type AppError struct {
	Code    int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

func NewTooManyRequestsError(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, ErrRateLimited)
}

func NewServiceUnavailableError(message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, ErrNotConfigured)
}

// NewInternalServerError never exposes the underlying cause in its message.
func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}
