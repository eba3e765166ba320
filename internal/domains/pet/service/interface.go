package service

import (
	"context"
	"iter"
	"time"

	"petregistry-backend/internal/domains/pet/model"
)

// Service is the pet use-case layer: ownership, validation and
// upload-confirmation rules live here and nowhere else.
type Service interface {
	RegisterPet(ctx context.Context, input RegisterPetInput) (*model.Pet, error)
	GetPetByID(ctx context.Context, petID, userID string) (*model.Pet, error)

	// ListPets streams the caller's non-deleted pets in gateway order.
	// A failure after partial emission terminates the sequence with a
	// non-nil error; already-yielded pets stand.
	ListPets(ctx context.Context, userID string) iter.Seq2[model.Pet, error]

	UpdatePet(ctx context.Context, cmd model.UpdatePetCommand) (*model.Pet, error)
	DeletePet(ctx context.Context, cmd model.DeletePetCommand) error

	GenerateAvatarPresignedURL(ctx context.Context, cmd model.GeneratePresignedURLCommand) (*model.PresignedUploadURL, error)
	ConfirmAvatarUpload(ctx context.Context, cmd model.ConfirmAvatarUploadCommand) (*model.Pet, error)
}

// RegisterPetInput carries the raw registration values. The owner is
// taken as given — the caller was already authenticated as that owner.
type RegisterPetInput struct {
	Name    string
	Species model.Species
	Breed   *string
	Age     int
	Owner   string
}

// PhotoStorage is the object-storage gateway the avatar flow consumes.
type PhotoStorage interface {
	// GeneratePresignedURL issues a time-limited PUT URL under the key
	// pets/{userID}/{petID}/{randomFileName}.{ext}. Side-effect-free on
	// the pet record.
	GeneratePresignedURL(ctx context.Context, userID, petID, contentType string, expiry time.Duration) (*model.PresignedUploadURL, error)

	// VerifyPhotoExists checks the object is actually in the store.
	VerifyPhotoExists(ctx context.Context, key string) (bool, error)

	// BuildPhotoURL computes the public URL for a confirmed key.
	BuildPhotoURL(key string) string
}

// TaskQueue enqueues background housekeeping. Implementations must be
// best-effort from the caller's point of view; a nil TaskQueue disables
// enqueueing entirely.
type TaskQueue interface {
	EnqueueAvatarDelete(ctx context.Context, payload model.AvatarDeletePayload) error
}
