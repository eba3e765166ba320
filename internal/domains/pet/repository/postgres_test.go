package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petregistry-backend/internal/domains/pet/model"
)

// jsonCache mirrors the redis cache semantics: values are stored as JSON
// and round-tripped through marshal/unmarshal on every read.
type jsonCache struct {
	store map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{store: map[string][]byte{}}
}

func (c *jsonCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *jsonCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = data
	return nil
}

func (c *jsonCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

func (c *jsonCache) Ping(ctx context.Context) error {
	return nil
}

// A soft-deleted pet served from the cache must still carry its deletion
// marker, or the service layer would treat it as live. The pool is nil
// here: a cache hit never reaches the database.
func TestFindByID_CachedPetKeepsDeletionMarker(t *testing.T) {
	cache := newJSONCache()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pet := &model.Pet{
		ID:               "pet-123",
		Name:             "Rex",
		Species:          model.SpeciesDog,
		Owner:            "user-123",
		RegistrationDate: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		DeletedAt:        &at,
	}
	require.NoError(t, cache.Set(context.Background(), petCacheKey("pet-123"), pet, petCacheTTL))

	repo := NewPostgresRepository(nil, cache)

	got, err := repo.FindByID(context.Background(), "pet-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.DeletedAt, "deletion marker lost in the cache round trip")
	assert.True(t, got.IsDeleted())
}

func TestFindByID_CachedPetKeepsAllFields(t *testing.T) {
	cache := newJSONCache()
	photoURL := "https://storage.local/pet-photos/pets/user-123/pet-123/a.jpg"
	pet := &model.Pet{
		ID:               "pet-123",
		Name:             "Rex",
		Species:          model.SpeciesDog,
		Age:              3,
		Owner:            "user-123",
		RegistrationDate: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		PhotoURL:         &photoURL,
	}
	require.NoError(t, cache.Set(context.Background(), petCacheKey("pet-123"), pet, petCacheTTL))

	repo := NewPostgresRepository(nil, cache)

	got, err := repo.FindByID(context.Background(), "pet-123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, pet.Name, got.Name)
	assert.Equal(t, pet.Owner, got.Owner)
	assert.True(t, pet.RegistrationDate.Equal(got.RegistrationDate))
	require.NotNil(t, got.PhotoURL)
	assert.Equal(t, photoURL, *got.PhotoURL)
	assert.Nil(t, got.DeletedAt)
}
