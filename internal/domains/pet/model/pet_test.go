package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetKeepsDeletedAtThroughJSONRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pet := Pet{
		ID:               "pet-123",
		Name:             "Rex",
		Species:          SpeciesDog,
		Owner:            "user-123",
		RegistrationDate: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		DeletedAt:        &at,
	}

	data, err := json.Marshal(pet)
	require.NoError(t, err)

	var decoded Pet
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.DeletedAt, "soft-delete marker must survive serialization")
	assert.True(t, decoded.IsDeleted())
	assert.True(t, decoded.DeletedAt.Equal(at))
}

func TestPetResponseNeverExposesDeletionMarker(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pet := Pet{
		ID:        "pet-123",
		Name:      "Rex",
		Species:   SpeciesDog,
		Owner:     "user-123",
		DeletedAt: &at,
	}

	data, err := json.Marshal(pet.ToResponse())
	require.NoError(t, err)

	assert.False(t, strings.Contains(string(data), "deleted_at"))
}
