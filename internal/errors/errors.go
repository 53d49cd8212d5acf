package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrBookNotFound is returned when a book lookup by id misses.
	ErrBookNotFound = errors.New("book not found")
	// ErrISBNTaken is returned when creating a book with an ISBN that already exists.
	ErrISBNTaken = errors.New("isbn already registered")
	// ErrBookUnavailable is returned when a borrow targets a missing or already borrowed book.
	ErrBookUnavailable = errors.New("book not available")
	// ErrUserNotFound is returned when a borrow references a user that does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecordNotFound is returned when a return references a missing borrow record.
	ErrRecordNotFound = errors.New("borrow record not found")
	// ErrAlreadyReturned is returned when a return targets a record that is no longer borrowed.
	ErrAlreadyReturned = errors.New("borrow record already returned")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy is an infrastructure failure and collapses to a 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, ErrISBNTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "ISBN_TAKEN")
	case errors.Is(err, ErrBookUnavailable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BOOK_UNAVAILABLE")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECORD_NOT_FOUND")
	case errors.Is(err, ErrAlreadyReturned):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RETURNED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
