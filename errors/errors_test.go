package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	err := MissingFields([]string{"firstName", "email"})

	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, http.StatusBadRequest, err.GetHTTPStatus())
	assert.Contains(t, err.Message, "firstName")
	assert.Contains(t, err.Message, "email")
}

func TestInvalidCredentials(t *testing.T) {
	err := InvalidCredentials()

	assert.Equal(t, AuthError, err.Type)
	assert.Equal(t, http.StatusUnauthorized, err.GetHTTPStatus())
}

func TestNotFoundEchoesPath(t *testing.T) {
	err := NotFound("/api/unknown")

	assert.Equal(t, http.StatusNotFound, err.GetHTTPStatus())
	assert.Contains(t, err.Message, "/api/unknown")
}

func TestStorageErrorSanitized(t *testing.T) {
	raw := errors.New("open /data/registrations.json: permission denied")
	err := NewStorageError(raw)

	assert.Equal(t, http.StatusInternalServerError, err.GetHTTPStatus())
	assert.NotContains(t, err.Message, "permission denied")
	assert.ErrorIs(t, err, raw)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, StorageError, "write failed"))
}

func TestErrorString(t *testing.T) {
	err := New(ValidationError, "rating out of range", "got 9")
	assert.Equal(t, "VALIDATION_ERROR: rating out of range (got 9)", err.Error())
}
