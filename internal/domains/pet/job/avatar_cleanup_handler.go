package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/internal/domains/pet/repository"
)

// Storage is the slice of the photo store the housekeeping jobs need.
type Storage interface {
	DeletePhoto(ctx context.Context, key string) error
	ListPhotosOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]string, error)
	BuildPhotoURL(key string) string
}

// AvatarDeleteHandler removes a single replaced avatar object.
type AvatarDeleteHandler struct {
	storage Storage
}

func NewAvatarDeleteHandler(storage Storage) *AvatarDeleteHandler {
	return &AvatarDeleteHandler{storage: storage}
}

func (h *AvatarDeleteHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.AvatarDeletePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal AvatarDelete payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.storage.DeletePhoto(ctx, payload.PhotoKey); err != nil {
		log.Error().
			Err(err).
			Str("pet_id", payload.PetID).
			Str("photo_key", payload.PhotoKey).
			Msg("Failed to delete replaced avatar")
		return fmt.Errorf("delete photo: %w", err)
	}

	log.Info().
		Str("pet_id", payload.PetID).
		Str("photo_key", payload.PhotoKey).
		Msg("Replaced avatar deleted")
	return nil
}

// AvatarSweepHandler removes uploads that received a presigned URL but
// were never confirmed: objects under pets/ older than maxAge whose key
// no pet record references.
type AvatarSweepHandler struct {
	repo    repository.Repository
	storage Storage
	maxAge  time.Duration
}

func NewAvatarSweepHandler(repo repository.Repository, storage Storage, maxAge time.Duration) *AvatarSweepHandler {
	return &AvatarSweepHandler{
		repo:    repo,
		storage: storage,
		maxAge:  maxAge,
	}
}

func (h *AvatarSweepHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	cutoff := time.Now().Add(-h.maxAge)

	keys, err := h.storage.ListPhotosOlderThan(ctx, "pets/", cutoff)
	if err != nil {
		return fmt.Errorf("list stale photos: %w", err)
	}

	var swept int
	for _, key := range keys {
		inUse, err := h.repo.ExistsByPhotoURL(ctx, h.storage.BuildPhotoURL(key))
		if err != nil {
			return fmt.Errorf("check photo in use: %w", err)
		}
		if inUse {
			continue
		}

		if err := h.storage.DeletePhoto(ctx, key); err != nil {
			// Keep sweeping; the next run picks this one up again.
			log.Warn().Err(err).Str("photo_key", key).Msg("Failed to sweep orphaned upload")
			continue
		}
		swept++
	}

	log.Info().
		Int("candidates", len(keys)).
		Int("swept", swept).
		Msg("Avatar sweep completed")
	return nil
}
