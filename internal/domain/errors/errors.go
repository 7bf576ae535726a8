package errors

import (
	"net/http"

	"ngopi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Cafe-related errors
	ErrCafeNotFound = NewBaseError(
		http.StatusNotFound,
		"CAFE_NOT_FOUND",
		"Kafe tidak ditemukan",
		"",
	)

	ErrCafeCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAFE_CREATION_FAILED",
		"Gagal menyimpan kafe",
		"",
	)

	ErrCafeUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAFE_UPDATE_FAILED",
		"Gagal memperbarui kafe",
		"",
	)

	// Rating-related errors
	ErrRatingCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"RATING_CREATION_FAILED",
		"Gagal menyimpan ulasan",
		"",
	)

	// Session-related errors
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Sesi tidak valid atau sudah berakhir",
		"",
	)

	ErrSessionIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_ISSUE_FAILED",
		"Gagal membuat sesi",
		"",
	)

	// Curator-related errors
	ErrCuratorKeyInvalid = NewBaseError(
		http.StatusForbidden,
		"CURATOR_KEY_INVALID",
		"Kunci kurator tidak valid",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Data yang dikirim tidak valid",
		"",
	)

	// Photo-related errors
	ErrPhotoTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PHOTO_TOO_LARGE",
		"Ukuran foto melebihi batas",
		"",
	)

	ErrPhotoTypeUnsupported = NewBaseError(
		http.StatusUnsupportedMediaType,
		"PHOTO_TYPE_UNSUPPORTED",
		"Format foto tidak didukung",
		"",
	)

	ErrPhotoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_UPLOAD_FAILED",
		"Gagal mengunggah foto",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Akses ditolak",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Sumber daya tidak ditemukan",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Konflik pada sumber daya",
		"",
	)
)
