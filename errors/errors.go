package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Zharokiecoder/GITEX2/logger"
)

type ErrorType string

const (
	ValidationError         ErrorType = "VALIDATION_ERROR"
	NotFoundError           ErrorType = "NOT_FOUND"
	AuthError               ErrorType = "AUTHENTICATION_ERROR"
	StorageError            ErrorType = "STORAGE_ERROR"
	StorageUnavailableError ErrorType = "STORAGE_UNAVAILABLE"
	ServerError             ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a request payload that failed validation.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingFields reports the exact set of mandatory fields absent from a
// submission.
func MissingFields(fields []string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
		Detail:     strings.Join(fields, ","),
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidCredentials reports a failed admin login attempt.
func InvalidCredentials() *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    "Invalid username or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewStorageError wraps a failed durable write. The original error is logged
// but a sanitized message is returned to the caller.
func NewStorageError(err error) *AppError {
	logger.GetLogger().Errorw("Storage error", "error", err)
	return &AppError{
		Type:       StorageError,
		Message:    "Storage operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// StorageUnavailable marks a read-time connectivity failure. Admin query
// endpoints degrade to empty results instead of surfacing this to callers.
func StorageUnavailable(err error) *AppError {
	return &AppError{
		Type:       StorageUnavailableError,
		Message:    "Storage backend unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Raw:        err,
	}
}

// NotFound reports an unmatched API route, echoing the requested path.
func NotFound(path string) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("no API route matches %s", path),
		HTTPStatus: http.StatusNotFound,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case AuthError:
		return http.StatusUnauthorized
	case StorageError:
		return http.StatusInternalServerError
	case StorageUnavailableError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
