package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Commands are request-scoped: built from the HTTP layer once per call,
// validated before any gateway is touched.

type UpdatePetCommand struct {
	PetID  string
	UserID string

	Name      string
	Species   Species
	Breed     *string
	Age       int
	Birthdate *time.Time
	Weight    *decimal.Decimal
	Nickname  *string
	PhotoURL  *string
}

// Validate collects ALL violations, not just the first, so a client can
// fix a request in one round trip.
func (c UpdatePetCommand) Validate(now time.Time) error {
	var violations []string

	if strings.TrimSpace(c.UserID) == "" {
		violations = append(violations, "User ID cannot be blank")
	}
	if strings.TrimSpace(c.Name) == "" {
		violations = append(violations, "Pet name cannot be blank")
	}
	if c.Age < 0 {
		violations = append(violations, "Pet age must be zero or greater")
	}
	if c.Weight != nil && !c.Weight.IsPositive() {
		violations = append(violations, "Pet weight must be greater than zero")
	}
	if c.Birthdate != nil && c.Birthdate.After(now) {
		violations = append(violations, "Pet birthdate cannot be in the future")
	}

	if len(violations) > 0 {
		return NewValidationError(violations)
	}
	return nil
}

type DeletePetCommand struct {
	PetID  string
	UserID string
}

// Allowed avatar content types.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

type GeneratePresignedURLCommand struct {
	UserID      string
	PetID       string
	ContentType string
}

func (c GeneratePresignedURLCommand) Validate() error {
	switch c.ContentType {
	case ContentTypeJPEG, ContentTypePNG:
		return nil
	}
	return NewInvalidContentType(c.ContentType)
}

type ConfirmAvatarUploadCommand struct {
	UserID   string
	PetID    string
	PhotoKey string
}

// ExpectedPrefix is the key namespace presigned uploads are issued under.
func (c ConfirmAvatarUploadCommand) ExpectedPrefix() string {
	return fmt.Sprintf("pets/%s/%s/", c.UserID, c.PetID)
}

func (c ConfirmAvatarUploadCommand) Validate() error {
	if !strings.HasPrefix(c.PhotoKey, c.ExpectedPrefix()) {
		return NewInvalidPhotoKey(c.PhotoKey, c.ExpectedPrefix())
	}
	return nil
}
