package utils

import "net/http"

type AppError struct {
	Code    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

// Standard error codes for the application
const (
	// Resource errors
	ErrNotFound     = "NOT_FOUND"
	ErrDuplicate    = "DUPLICATE"
	ErrInvalidInput = "INVALID_INPUT"

	// Infrastructure errors
	ErrDatabaseUnavailable = "DATABASE_UNAVAILABLE"
	ErrDatabase            = "DATABASE_ERROR"

	// Pinning provider errors are relayed verbatim; this code only marks
	// failures reaching the provider at all.
	ErrProvider = "PROVIDER_ERROR"
)

func NewAppError(code string, message string, originalErr error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Origin:  originalErr,
	}
}

// IsErrorCode checks whether err is an AppError carrying the given code.
func IsErrorCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// AppErrorToHTTPStatus converts an AppError code to an HTTP status code.
func AppErrorToHTTPStatus(errorCode string) int {
	switch errorCode {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidInput:
		return http.StatusBadRequest
	case ErrDuplicate:
		return http.StatusConflict
	case ErrDatabase, ErrDatabaseUnavailable, ErrProvider:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
