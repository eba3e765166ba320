package repository

import (
	"context"
	"iter"

	"petregistry-backend/internal/domains/pet/model"
)

// Repository is the persistence gateway for pet records.
//
// FindByID returns soft-deleted rows too (nil means truly absent) — the
// service layer decides how a deleted row surfaces per operation.
// FindAllByOwner excludes soft-deleted rows and owns the ordering.
type Repository interface {
	// Save inserts the pet and returns it with its assigned ID.
	Save(ctx context.Context, pet *model.Pet) (*model.Pet, error)

	// FindByID returns the pet or nil when no row exists.
	FindByID(ctx context.Context, id string) (*model.Pet, error)

	// Update overwrites the editable fields of an existing row.
	Update(ctx context.Context, pet *model.Pet) (*model.Pet, error)

	// SoftDelete marks deleted_at; it never removes the row.
	SoftDelete(ctx context.Context, id string) error

	// FindAllByOwner streams the owner's non-deleted pets lazily.
	// The sequence yields (pet, nil) per row and terminates with a single
	// (zero, err) pair if the stream fails after partial emission.
	FindAllByOwner(ctx context.Context, owner string) iter.Seq2[model.Pet, error]

	// CountByOwner counts the owner's non-deleted pets.
	CountByOwner(ctx context.Context, owner string) (int, error)

	// ExistsByPhotoURL reports whether any pet references the photo URL.
	// Used by the avatar sweep job, not by the request path.
	ExistsByPhotoURL(ctx context.Context, photoURL string) (bool, error)
}
