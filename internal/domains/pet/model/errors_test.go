package model

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError([]string{"Pet name cannot be blank"}), http.StatusBadRequest, CodeValidation},
		{"unauthorized", NewUnauthorizedPetAction("user-456", "pet-123", "update"), http.StatusForbidden, CodeUnauthorized},
		{"pet not found", NewPetNotFound("pet-123"), http.StatusNotFound, CodePetNotFound},
		{"photo not found", NewPhotoNotFound("pets/u/p/a.jpg"), http.StatusNotFound, CodePhotoNotFound},
		{"photo too large", NewPhotoSizeExceeded(5 << 20), http.StatusRequestEntityTooLarge, CodePhotoSizeExceeded},
		{"pet limit", NewPetLimitExceeded(10), http.StatusConflict, CodePetLimitExceeded},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _, code := MapErrorToHTTP(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestUnauthorizedPetActionMessage(t *testing.T) {
	err := NewUnauthorizedPetAction("user-456", "pet-123", "update")
	assert.Equal(t, "User user-456 is not authorized to update pet pet-123", GetErrorMessage(err))
}

func TestPetErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := NewPhotoUploadError(cause)
	assert.ErrorIs(t, err, cause)
}
