package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrBookNotFound, http.StatusNotFound, "BOOK_NOT_FOUND"},
		{ErrISBNTaken, http.StatusConflict, "ISBN_TAKEN"},
		{ErrBookUnavailable, http.StatusBadRequest, "BOOK_UNAVAILABLE"},
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrRecordNotFound, http.StatusNotFound, "RECORD_NOT_FOUND"},
		{ErrAlreadyReturned, http.StatusConflict, "ALREADY_RETURNED"},
		{errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		he := MapErrorToHTTP(tc.err)
		assert.Equal(t, tc.status, he.StatusCode, tc.code)
		assert.Equal(t, tc.code, he.Code)
	}
}

func TestMapErrorToHTTP_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("borrow: %w", ErrBookUnavailable)

	he := MapErrorToHTTP(wrapped)

	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "BOOK_UNAVAILABLE", he.Code)
}

func TestToErrorResponse(t *testing.T) {
	he := NewHTTPError(http.StatusNotFound, "book not found", "BOOK_NOT_FOUND")
	resp := he.ToErrorResponse()

	assert.Equal(t, "book not found", resp.Error)
	assert.Equal(t, "BOOK_NOT_FOUND", resp.Code)
}
