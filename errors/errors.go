package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorCode identifies the failure class carried by an AppError.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeConflict  ErrorCode = "CONFLICT"
	ErrCodeStorage   ErrorCode = "STORAGE_ERROR"

	// Payment errors
	ErrCodePaymentGateway ErrorCode = "PAYMENT_GATEWAY_ERROR"
	ErrCodePaymentConfig  ErrorCode = "PAYMENT_NOT_CONFIGURED"
)

// AppError is the application failure type. Message is safe to return to a
// client; Err carries the underlying cause for logs only.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error class to the response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodePaymentGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func NewPaymentError(message string, err error) *AppError {
	return NewAppError(ErrCodePaymentGateway, message, err)
}

// GetAppError returns the AppError inside err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// FromDB translates a gorm/driver failure into the storage taxonomy:
// record-not-found becomes NOT_FOUND, unique violations become CONFLICT and
// everything else a STORAGE_ERROR. The driver message stays on Err so raw
// connection details never reach a client.
func FromDB(err error, entity string) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewAppError(ErrCodeNotFound, entity+" not found", err)
	}
	if isUniqueViolation(err) {
		return NewAppError(ErrCodeConflict, entity+" already exists", err)
	}
	return NewAppError(ErrCodeStorage, "storage failure", err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	// pgx surfaces SQLSTATE 23505, sqlite "UNIQUE constraint failed".
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
