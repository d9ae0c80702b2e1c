package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound                = errors.New("resource not found")
	ErrForbidden               = errors.New("forbidden")
	ErrMissingField            = errors.New("missing required field")
	ErrIdentityNotOwned        = errors.New("identity not owned by caller")
	ErrNotGroupMember          = errors.New("caller is not a group member")
	ErrGroupNotFound           = errors.New("group not found")
	ErrResolverUnavailable     = errors.New("identity resolver unavailable")
	ErrGroupServiceUnavailable = errors.New("group service unavailable")
	ErrFeeTransferFailed       = errors.New("fee transfer failed")
	ErrImmutableFieldChange    = errors.New("immutable field change rejected")
	ErrRecordLimitReached      = errors.New("record id space exhausted")
	ErrInvalidInput            = errors.New("invalid input")
	ErrUnauthorized            = errors.New("unauthorized")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// StatusOf maps a domain error to the HTTP status it should surface as.
// Collaborator-unavailability maps to 503 so callers can tell "try again
// later" apart from a rejected request.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotGroupMember):
		return http.StatusForbidden
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrIdentityNotOwned), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrFeeTransferFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrImmutableFieldChange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRecordLimitReached):
		return http.StatusConflict
	case errors.Is(err, ErrResolverUnavailable), errors.Is(err, ErrGroupServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
