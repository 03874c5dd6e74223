package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotActive      = errors.New("user not active")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrConflict           = errors.New("unique constraint violation")
)

// FieldError is a single inline validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents application error with HTTP status
type AppError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "ERR_UNAUTHORIZED", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "ERR_FORBIDDEN", message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_CONFLICT", message, ErrConflict)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", "internal server error", err)
}

// Validation wraps per-field failures into a 400 the form can render inline.
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "ERR_VALIDATION",
		Message: "validation failed",
		Fields:  fields,
		Err:     ErrInvalidInput,
	}
}

// SlugTaken is the uniqueness-conflict error surfaced both by the advisory
// pre-check and by the store's unique-constraint violation at save time.
func SlugTaken(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_SLUG_TAKEN", message, ErrSlugTaken)
}
