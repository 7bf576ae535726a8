package errors

import (
	"fmt"
	"net/http"
	"time"

	"ngopi/internal/errors"
)

// RateLimitError reports that the store refused an operation because the
// sliding-window budget for the Sheets API is exhausted. It is never retried;
// callers wait for ResetAt or surface the failure.
type RateLimitError struct {
	Limit    int
	InWindow int
	ResetAt  time.Time
}

// NewRateLimitError creates a rate limit error from a window snapshot
func NewRateLimitError(limit, inWindow int, resetAt time.Time) *RateLimitError {
	return &RateLimitError{
		Limit:    limit,
		InWindow: inWindow,
		ResetAt:  resetAt,
	}
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("sheets api rate limit reached: %d/%d in window, resets at %s",
		e.InWindow, e.Limit, e.ResetAt.Format(time.RFC3339))
}

// HTTPCode returns the HTTP status code
func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

// ErrorCode returns the business error code
func (e *RateLimitError) ErrorCode() string {
	return "RATE_LIMITED"
}

// Message returns the user-friendly error message
func (e *RateLimitError) Message() string {
	return "Terlalu banyak permintaan, coba lagi nanti"
}

// Details returns detailed error information
func (e *RateLimitError) Details() string {
	return e.Error()
}

// NetworkError reports that the device is offline or the transport failed
// before an upstream response was produced. Retryable while connectivity holds.
type NetworkError struct {
	Op  string
	Err error
}

// NewNetworkError creates a network error for the named store operation
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("network unavailable for %s", e.Op)
	}

	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error, if any
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return "Tidak ada koneksi internet"
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.Error()
}

// SheetsError reports a response from the Sheets API that signals failure.
// Server-side statuses (>= 500) are retryable, client-side statuses are not.
type SheetsError struct {
	StatusCode int
	Reason     string
	Err        error
}

// NewSheetsError creates an upstream API error
func NewSheetsError(statusCode int, reason string, err error) *SheetsError {
	return &SheetsError{
		StatusCode: statusCode,
		Reason:     reason,
		Err:        err,
	}
}

// Error implements the error interface
func (e *SheetsError) Error() string {
	return fmt.Sprintf("sheets api error (status %d): %s", e.StatusCode, e.Reason)
}

// Unwrap returns the underlying API error, if any
func (e *SheetsError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the upstream failure is worth another attempt
func (e *SheetsError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// HTTPCode returns the HTTP status code
func (e *SheetsError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *SheetsError) ErrorCode() string {
	return "SHEETS_API_ERROR"
}

// Message returns the user-friendly error message
func (e *SheetsError) Message() string {
	return "Penyimpanan data sedang bermasalah"
}

// Details returns detailed error information
func (e *SheetsError) Details() string {
	return e.Error()
}

// Retryable classifies a store failure for the retry loops. Rate limit refusals
// and client-side API errors are final; transport failures and server-side API
// errors may succeed on a later attempt.
func Retryable(err error) bool {
	if _, ok := errors.AsType[*RateLimitError](err); ok {
		return false
	}
	if _, ok := errors.AsType[*NetworkError](err); ok {
		return true
	}
	if sheetsErr, ok := errors.AsType[*SheetsError](err); ok {
		return sheetsErr.Retryable()
	}

	return false
}
