package service

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"petregistry-backend/internal/domains/pet/model"
)

// -------------------------
// In-memory fakes
// -------------------------

type fakeRepository struct {
	pets  map[string]*model.Pet
	order []string

	saveErr   error
	findErr   error
	updateErr error
	listErr   error

	findCalls       int
	updateCalls     int
	softDeleteCalls int

	deletedAt time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		pets:      map[string]*model.Pet{},
		deletedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepository) seed(pet model.Pet) {
	cp := pet
	r.pets[pet.ID] = &cp
	r.order = append(r.order, pet.ID)
}

func (r *fakeRepository) Save(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	cp := *pet
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("pet-%d", len(r.pets)+1)
	}
	r.pets[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	out := cp
	return &out, nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	pet, ok := r.pets[id]
	if !ok {
		return nil, nil
	}
	cp := *pet
	return &cp, nil
}

func (r *fakeRepository) Update(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	r.updateCalls++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	cp := *pet
	r.pets[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeRepository) SoftDelete(ctx context.Context, id string) error {
	r.softDeleteCalls++
	pet, ok := r.pets[id]
	if !ok || pet.DeletedAt != nil {
		return nil
	}
	at := r.deletedAt
	pet.DeletedAt = &at
	return nil
}

func (r *fakeRepository) FindAllByOwner(ctx context.Context, owner string) iter.Seq2[model.Pet, error] {
	return func(yield func(model.Pet, error) bool) {
		for _, id := range r.order {
			pet := r.pets[id]
			if pet.Owner != owner || pet.IsDeleted() {
				continue
			}
			if !yield(*pet, nil) {
				return
			}
		}
		if r.listErr != nil {
			yield(model.Pet{}, r.listErr)
		}
	}
}

func (r *fakeRepository) CountByOwner(ctx context.Context, owner string) (int, error) {
	count := 0
	for _, pet := range r.pets {
		if pet.Owner == owner && !pet.IsDeleted() {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepository) ExistsByPhotoURL(ctx context.Context, photoURL string) (bool, error) {
	for _, pet := range r.pets {
		if pet.PhotoURL != nil && *pet.PhotoURL == photoURL {
			return true, nil
		}
	}
	return false, nil
}

type fakeStorage struct {
	objects map[string]bool

	presignCalls int
	verifyCalls  int
	verifyErr    error

	lastContentType string
	lastExpiry      time.Duration
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string]bool{}}
}

func (s *fakeStorage) GeneratePresignedURL(ctx context.Context, userID, petID, contentType string, expiry time.Duration) (*model.PresignedUploadURL, error) {
	s.presignCalls++
	s.lastContentType = contentType
	s.lastExpiry = expiry
	key := fmt.Sprintf("pets/%s/%s/random.jpg", userID, petID)
	return &model.PresignedUploadURL{
		UploadURL: "https://storage.local/" + key + "?signature=abc",
		Key:       key,
		ExpiresAt: time.Date(2025, 6, 1, 12, 15, 0, 0, time.UTC),
	}, nil
}

func (s *fakeStorage) VerifyPhotoExists(ctx context.Context, key string) (bool, error) {
	s.verifyCalls++
	if s.verifyErr != nil {
		return false, s.verifyErr
	}
	return s.objects[key], nil
}

func (s *fakeStorage) BuildPhotoURL(key string) string {
	return "https://storage.local/pet-photos/" + key
}

type fakeQueue struct {
	payloads   []model.AvatarDeletePayload
	enqueueErr error
}

func (q *fakeQueue) EnqueueAvatarDelete(ctx context.Context, payload model.AvatarDeletePayload) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

// -------------------------
// Setup helpers
// -------------------------

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepository, storage *fakeStorage, queue TaskQueue) *petService {
	svc := NewPetService(repo, storage, queue, 15*time.Minute).(*petService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func strPtr(s string) *string {
	return &s
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
