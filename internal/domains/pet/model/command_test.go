package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestUpdatePetCommand_ValidCommandPasses(t *testing.T) {
	birthdate := testNow.AddDate(-2, 0, 0)
	cmd := UpdatePetCommand{
		PetID:     "pet-123",
		UserID:    "user-123",
		Name:      "Rex",
		Species:   SpeciesDog,
		Age:       2,
		Birthdate: &birthdate,
		Weight:    dec("12.5"),
	}

	assert.NoError(t, cmd.Validate(testNow))
}

func TestUpdatePetCommand_OptionalFieldsMayBeNil(t *testing.T) {
	cmd := UpdatePetCommand{
		PetID:   "pet-123",
		UserID:  "user-123",
		Name:    "Rex",
		Species: SpeciesDog,
		Age:     0,
	}

	assert.NoError(t, cmd.Validate(testNow))
}

func TestUpdatePetCommand_CollectsEveryViolation(t *testing.T) {
	future := testNow.Add(time.Hour)
	cmd := UpdatePetCommand{
		PetID:     "pet-123",
		UserID:    "   ",
		Name:      " ",
		Age:       -1,
		Weight:    dec("-3"),
		Birthdate: &future,
	}

	err := cmd.Validate(testNow)

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t,
		"User ID cannot be blank; Pet name cannot be blank; Pet age must be zero or greater; Pet weight must be greater than zero; Pet birthdate cannot be in the future",
		GetErrorMessage(err))
}

func TestUpdatePetCommand_SingleViolationMessage(t *testing.T) {
	cmd := UpdatePetCommand{
		PetID:  "pet-123",
		UserID: "user-123",
		Name:   "Rex",
		Age:    -1,
	}

	err := cmd.Validate(testNow)

	require.Error(t, err)
	assert.Equal(t, "Pet age must be zero or greater", GetErrorMessage(err))
}

func TestUpdatePetCommand_ZeroWeightRejected(t *testing.T) {
	cmd := UpdatePetCommand{
		PetID:  "pet-123",
		UserID: "user-123",
		Name:   "Rex",
		Weight: dec("0"),
	}

	err := cmd.Validate(testNow)

	require.Error(t, err)
	assert.Equal(t, "Pet weight must be greater than zero", GetErrorMessage(err))
}

func TestUpdatePetCommand_BirthdateAtNowAllowed(t *testing.T) {
	birthdate := testNow
	cmd := UpdatePetCommand{
		PetID:     "pet-123",
		UserID:    "user-123",
		Name:      "Rex",
		Birthdate: &birthdate,
	}

	assert.NoError(t, cmd.Validate(testNow))
}

func TestGeneratePresignedURLCommand_ContentTypeGate(t *testing.T) {
	cases := []struct {
		contentType string
		ok          bool
	}{
		{ContentTypeJPEG, true},
		{ContentTypePNG, true},
		{"image/gif", false},
		{"application/pdf", false},
		{"", false},
	}

	for _, tc := range cases {
		cmd := GeneratePresignedURLCommand{
			UserID:      "user-123",
			PetID:       "pet-456",
			ContentType: tc.contentType,
		}
		err := cmd.Validate()
		if tc.ok {
			assert.NoError(t, err, tc.contentType)
		} else {
			assert.True(t, IsValidationError(err), tc.contentType)
		}
	}
}

func TestConfirmAvatarUploadCommand_KeyMustMatchOwnNamespace(t *testing.T) {
	cmd := ConfirmAvatarUploadCommand{
		UserID:   "user-123",
		PetID:    "pet-456",
		PhotoKey: "pets/user-123/pet-456/avatar.jpg",
	}
	assert.NoError(t, cmd.Validate())

	foreign := ConfirmAvatarUploadCommand{
		UserID:   "user-123",
		PetID:    "pet-456",
		PhotoKey: "pets/user-999/pet-456/avatar.jpg",
	}
	err := foreign.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
