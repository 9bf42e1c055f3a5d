package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeMissingField, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeInvalidReference, http.StatusBadRequest},
		{CodeDuplicate, http.StatusBadRequest}, // 400, never 409
		{CodeReferenceNotFound, http.StatusNotFound},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestWithStatusOverride(t *testing.T) {
	err := MissingField("email")
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())

	overridden := err.WithStatus(http.StatusUnprocessableEntity)
	assert.Equal(t, http.StatusUnprocessableEntity, overridden.HTTPStatus())
	// Original is unchanged.
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	// Code and message carry over.
	assert.Equal(t, CodeMissingField, overridden.Code)
	assert.Equal(t, "Missing `email` in request body.", overridden.Message)
}

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("Folder not found")
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrDuplicate))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, Is(wrapped, ErrNotFound))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "store write failed")
	assert.Equal(t, cause, Unwrap(err))
	assert.Contains(t, err.Error(), "disk full")
}
