package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when signing up with an email that is taken.
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenMissing is returned when a request carries no bearer token.
	ErrTokenMissing = errors.New("access token is required")
	// ErrTokenExpired is returned when a token's TTL has elapsed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned when a token is malformed or tampered with.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrContactNotFound is returned when a contact does not exist under the
	// requesting owner. Cross-tenant access yields this same error.
	ErrContactNotFound = errors.New("contact not found")
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field failures in the order they were detected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError wraps a non-empty list of field failures.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HTTPError pairs a transport status with a safe, typed payload.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
		Errors:  e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes an opaque 500 so internal details never cross the boundary.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_FAILED")
		httpErr.Fields = verr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTokenMissing):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_MISSING")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TOKEN_INVALID")
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTACT_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
