package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Species string

const (
	SpeciesDog Species = "DOG"
	SpeciesCat Species = "CAT"
)

func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	}
	return false
}

func (s Species) String() string {
	return string(s)
}

// Pet is the registered pet record.
//
// ID, Owner and RegistrationDate are fixed at creation; the update path
// always copies them from the stored row, never from caller input.
// A non-nil DeletedAt marks the record as soft-deleted: reads must treat
// it as absent, the row is never physically removed by this service.
type Pet struct {
	ID      string  `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Species Species `json:"species" db:"species"`
	Breed   *string `json:"breed,omitempty" db:"breed"`
	Age     int     `json:"age" db:"age"`

	Birthdate *time.Time       `json:"birthdate,omitempty" db:"birthdate"`
	Weight    *decimal.Decimal `json:"weight,omitempty" db:"weight"`
	Nickname  *string          `json:"nickname,omitempty" db:"nickname"`

	Owner            string     `json:"owner" db:"owner"`
	RegistrationDate time.Time  `json:"registration_date" db:"registration_date"`
	PhotoURL         *string    `json:"photo_url,omitempty" db:"photo_url"`
	// Serialized so the marker survives the repository's JSON cache.
	// Clients never see this struct directly, only PetResponse.
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// IsDeleted reports whether the pet is soft-deleted.
func (p *Pet) IsDeleted() bool {
	return p.DeletedAt != nil
}

// PresignedUploadURL is returned to the client so it can PUT the avatar
// straight to object storage. Transient, never persisted.
type PresignedUploadURL struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
