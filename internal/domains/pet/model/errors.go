package model

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// PetError is the base error for the pet domain.
type PetError struct {
	Code    string
	Message string
	Err     error
}

func (e *PetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PetError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodePetNotFound       = "PET_NOT_FOUND"
	CodePhotoNotFound     = "PHOTO_NOT_FOUND"
	CodePhotoUpload       = "PHOTO_UPLOAD_ERROR"
	CodePhotoSizeExceeded = "PHOTO_SIZE_EXCEEDED"
	CodePetLimitExceeded  = "PET_LIMIT_EXCEEDED"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewValidationError joins all collected violations into one message.
func NewValidationError(violations []string) *PetError {
	return &PetError{
		Code:    CodeValidation,
		Message: strings.Join(violations, "; "),
	}
}

func NewInvalidContentType(contentType string) *PetError {
	return &PetError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("Invalid content type: %s (allowed: image/jpeg, image/png)", contentType),
	}
}

func NewInvalidPhotoKey(photoKey, expectedPrefix string) *PetError {
	return &PetError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("Photo key %s does not match expected prefix %s", photoKey, expectedPrefix),
	}
}

func NewPetNotFound(petID string) *PetError {
	return &PetError{
		Code:    CodePetNotFound,
		Message: fmt.Sprintf("Pet not found: %s", petID),
	}
}

func NewUnauthorizedPetAction(userID, petID, action string) *PetError {
	return &PetError{
		Code:    CodeUnauthorized,
		Message: fmt.Sprintf("User %s is not authorized to %s pet %s", userID, action, petID),
	}
}

func NewPhotoNotFound(photoKey string) *PetError {
	return &PetError{
		Code:    CodePhotoNotFound,
		Message: fmt.Sprintf("Photo not found in storage: %s", photoKey),
	}
}

// Reserved for related flows (direct upload, registration caps) that the
// current use cases do not exercise.

func NewPhotoUploadError(err error) *PetError {
	return &PetError{
		Code:    CodePhotoUpload,
		Message: "Failed to upload photo",
		Err:     err,
	}
}

func NewPhotoSizeExceeded(maxBytes int64) *PetError {
	return &PetError{
		Code:    CodePhotoSizeExceeded,
		Message: fmt.Sprintf("Photo exceeds maximum size of %d bytes", maxBytes),
	}
}

func NewPetLimitExceeded(limit int) *PetError {
	return &PetError{
		Code:    CodePetLimitExceeded,
		Message: fmt.Sprintf("Pet limit of %d reached for this user", limit),
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func isCode(err error, code string) bool {
	var petErr *PetError
	return errors.As(err, &petErr) && petErr.Code == code
}

func IsValidationError(err error) bool {
	return isCode(err, CodeValidation)
}

func IsUnauthorized(err error) bool {
	return isCode(err, CodeUnauthorized)
}

func IsPetNotFound(err error) bool {
	return isCode(err, CodePetNotFound)
}

func IsPhotoNotFound(err error) bool {
	return isCode(err, CodePhotoNotFound)
}

func IsDomainError(err error) bool {
	var petErr *PetError
	return errors.As(err, &petErr)
}

func GetErrorCode(err error) string {
	var petErr *PetError
	if errors.As(err, &petErr) {
		return petErr.Code
	}
	return "UNKNOWN_ERROR"
}

func GetErrorMessage(err error) string {
	var petErr *PetError
	if errors.As(err, &petErr) {
		return petErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP translates domain errors into HTTP status codes.
// Gateway errors that carry no domain code fall through as 500.
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch {
	case IsValidationError(err):
		return http.StatusBadRequest, GetErrorMessage(err), GetErrorCode(err)

	case IsUnauthorized(err):
		return http.StatusForbidden, GetErrorMessage(err), GetErrorCode(err)

	case IsPetNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), GetErrorCode(err)

	case IsPhotoNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), GetErrorCode(err)

	case IsDomainError(err):
		var petErr *PetError
		errors.As(err, &petErr)
		switch petErr.Code {
		case CodePhotoSizeExceeded:
			return http.StatusRequestEntityTooLarge, petErr.Message, petErr.Code
		case CodePetLimitExceeded:
			return http.StatusConflict, petErr.Message, petErr.Code
		default:
			return http.StatusInternalServerError, petErr.Message, petErr.Code
		}

	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
