package service

import (
	"context"
	"iter"
	"time"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/internal/domains/pet/repository"
)

type petService struct {
	repo          repository.Repository
	storage       PhotoStorage
	queue         TaskQueue
	presignExpiry time.Duration
	now           func() time.Time
}

func NewPetService(repo repository.Repository, storage PhotoStorage, queue TaskQueue, presignExpiry time.Duration) Service {
	return &petService{
		repo:          repo,
		storage:       storage,
		queue:         queue,
		presignExpiry: presignExpiry,
		now:           time.Now,
	}
}

// RegisterPet builds a fresh record and hands it to the gateway. The ID
// is assigned by persistence; gateway failures propagate unchanged.
func (s *petService) RegisterPet(ctx context.Context, input RegisterPetInput) (*model.Pet, error) {
	pet := &model.Pet{
		Name:             input.Name,
		Species:          input.Species,
		Breed:            input.Breed,
		Age:              input.Age,
		Owner:            input.Owner,
		RegistrationDate: s.now(),
	}

	return s.repo.Save(ctx, pet)
}

// GetPetByID hides soft-deleted pets behind not-found BEFORE checking
// ownership, so a deleted pet never leaks whether the caller owned it.
func (s *petService) GetPetByID(ctx context.Context, petID, userID string) (*model.Pet, error) {
	pet, err := s.repo.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if pet == nil || pet.IsDeleted() {
		return nil, model.NewPetNotFound(petID)
	}

	if pet.Owner != userID {
		return nil, model.NewUnauthorizedPetAction(userID, petID, "access")
	}

	return pet, nil
}

// ListPets passes the gateway stream through untouched: no reordering,
// no buffering, and a mid-stream failure reaches the consumer after the
// items already emitted.
func (s *petService) ListPets(ctx context.Context, userID string) iter.Seq2[model.Pet, error] {
	return s.repo.FindAllByOwner(ctx, userID)
}

// UpdatePet validates the whole command first (collecting every
// violation), then replaces the editable fields while preserving the
// identity fields from the stored row.
func (s *petService) UpdatePet(ctx context.Context, cmd model.UpdatePetCommand) (*model.Pet, error) {
	if err := cmd.Validate(s.now()); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, cmd.PetID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewPetNotFound(cmd.PetID)
	}

	// Ownership mismatch is explicit here, unlike delete. Each endpoint
	// signals this situation its own way.
	if existing.Owner != cmd.UserID {
		return nil, model.NewUnauthorizedPetAction(cmd.UserID, cmd.PetID, "update")
	}

	updated := &model.Pet{
		ID:               existing.ID,
		Owner:            existing.Owner,
		RegistrationDate: existing.RegistrationDate,
		DeletedAt:        existing.DeletedAt,

		Name:      cmd.Name,
		Species:   cmd.Species,
		Breed:     cmd.Breed,
		Age:       cmd.Age,
		Birthdate: cmd.Birthdate,
		Weight:    cmd.Weight,
		Nickname:  cmd.Nickname,
		PhotoURL:  cmd.PhotoURL,
	}

	return s.repo.Update(ctx, updated)
}

// DeletePet soft-deletes. Pets owned by someone else surface as
// not-found (ownership is not leaked on delete) and deleting an
// already-deleted pet is a silent no-op.
func (s *petService) DeletePet(ctx context.Context, cmd model.DeletePetCommand) error {
	pet, err := s.repo.FindByID(ctx, cmd.PetID)
	if err != nil {
		return err
	}
	if pet == nil {
		return model.NewPetNotFound(cmd.PetID)
	}

	if pet.Owner != cmd.UserID {
		return model.NewPetNotFound(cmd.PetID)
	}

	if pet.IsDeleted() {
		return nil
	}

	return s.repo.SoftDelete(ctx, cmd.PetID)
}
