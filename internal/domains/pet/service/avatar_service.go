package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"petregistry-backend/internal/domains/pet/model"
)

// GenerateAvatarPresignedURL issues a time-limited upload URL. It never
// mutates the pet — the photo URL is only set once the upload is
// confirmed.
func (s *petService) GenerateAvatarPresignedURL(ctx context.Context, cmd model.GeneratePresignedURLCommand) (*model.PresignedUploadURL, error) {
	// Content-type gate runs before any gateway call.
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pet, err := s.repo.FindByID(ctx, cmd.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, model.NewPetNotFound(cmd.PetID)
	}
	if pet.Owner != cmd.UserID {
		return nil, model.NewUnauthorizedPetAction(cmd.UserID, cmd.PetID, "upload a photo for")
	}

	return s.storage.GeneratePresignedURL(ctx, cmd.UserID, cmd.PetID, cmd.ContentType, s.presignExpiry)
}

// ConfirmAvatarUpload verifies the uploaded object and persists its
// public URL on the pet. The record is only written on this final step,
// so a failure partway leaves it unchanged.
func (s *petService) ConfirmAvatarUpload(ctx context.Context, cmd model.ConfirmAvatarUploadCommand) (*model.Pet, error) {
	// Key namespace gate runs before any gateway call.
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pet, err := s.repo.FindByID(ctx, cmd.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, model.NewPetNotFound(cmd.PetID)
	}
	if pet.Owner != cmd.UserID {
		return nil, model.NewUnauthorizedPetAction(cmd.UserID, cmd.PetID, "confirm a photo for")
	}

	exists, err := s.storage.VerifyPhotoExists(ctx, cmd.PhotoKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewPhotoNotFound(cmd.PhotoKey)
	}

	previousPhotoURL := pet.PhotoURL

	photoURL := s.storage.BuildPhotoURL(cmd.PhotoKey)
	pet.PhotoURL = &photoURL

	updated, err := s.repo.Update(ctx, pet)
	if err != nil {
		return nil, err
	}

	s.enqueueReplacedAvatarCleanup(ctx, cmd, previousPhotoURL, photoURL)

	return updated, nil
}

// enqueueReplacedAvatarCleanup schedules deletion of the object the new
// avatar replaced. Best effort: a queue failure is logged, never
// surfaced to the caller.
func (s *petService) enqueueReplacedAvatarCleanup(ctx context.Context, cmd model.ConfirmAvatarUploadCommand, previousPhotoURL *string, newPhotoURL string) {
	if s.queue == nil || previousPhotoURL == nil || *previousPhotoURL == newPhotoURL {
		return
	}

	oldKey, ok := photoKeyFromURL(*previousPhotoURL, cmd.ExpectedPrefix())
	if !ok {
		return
	}

	payload := model.AvatarDeletePayload{
		PetID:    cmd.PetID,
		PhotoKey: oldKey,
	}
	if err := s.queue.EnqueueAvatarDelete(ctx, payload); err != nil {
		log.Warn().
			Err(err).
			Str("pet_id", cmd.PetID).
			Str("photo_key", oldKey).
			Msg("Failed to enqueue replaced avatar cleanup")
	}
}

// photoKeyFromURL extracts the object key from a public photo URL by
// locating the pet's key namespace inside it.
func photoKeyFromURL(photoURL, prefix string) (string, bool) {
	idx := strings.Index(photoURL, prefix)
	if idx < 0 {
		return "", false
	}
	return photoURL[idx:], true
}
