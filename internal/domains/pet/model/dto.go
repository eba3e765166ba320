package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REGISTER PET
// =====================================================

type RegisterPetRequest struct {
	Name    string  `json:"name" binding:"required"`
	Species string  `json:"species" binding:"required"`
	Breed   *string `json:"breed,omitempty"`
	Age     int     `json:"age"`
}

// Validate checks request shape only. Ownership and business rules live
// in the service layer.
func (req RegisterPetRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Species, validation.Required, validation.In(
			string(SpeciesDog),
			string(SpeciesCat),
		)),
		validation.Field(&req.Age, validation.Min(0)),
	)
}

// =====================================================
// UPDATE PET
// =====================================================

type UpdatePetRequest struct {
	Name      string           `json:"name"`
	Species   string           `json:"species"`
	Breed     *string          `json:"breed,omitempty"`
	Age       int              `json:"age"`
	Birthdate *time.Time       `json:"birthdate,omitempty"`
	Weight    *decimal.Decimal `json:"weight,omitempty"`
	Nickname  *string          `json:"nickname,omitempty"`
	PhotoURL  *string          `json:"photo_url,omitempty"`
}

func (req UpdatePetRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Species, validation.Required, validation.In(
			string(SpeciesDog),
			string(SpeciesCat),
		)),
	)
}

// ToCommand pairs the request with the acting user and target pet.
func (req UpdatePetRequest) ToCommand(userID, petID string) UpdatePetCommand {
	return UpdatePetCommand{
		PetID:     petID,
		UserID:    userID,
		Name:      req.Name,
		Species:   Species(req.Species),
		Breed:     req.Breed,
		Age:       req.Age,
		Birthdate: req.Birthdate,
		Weight:    req.Weight,
		Nickname:  req.Nickname,
		PhotoURL:  req.PhotoURL,
	}
}

// =====================================================
// AVATAR UPLOAD
// =====================================================

type PresignAvatarRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

func (req PresignAvatarRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ContentType, validation.Required),
	)
}

type ConfirmAvatarRequest struct {
	PhotoKey string `json:"photo_key" binding:"required"`
}

func (req ConfirmAvatarRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.PhotoKey, validation.Required),
	)
}

// =====================================================
// RESPONSES
// =====================================================

type PetResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Species          string           `json:"species"`
	Breed            *string          `json:"breed,omitempty"`
	Age              int              `json:"age"`
	Birthdate        *time.Time       `json:"birthdate,omitempty"`
	Weight           *decimal.Decimal `json:"weight,omitempty"`
	Nickname         *string          `json:"nickname,omitempty"`
	Owner            string           `json:"owner"`
	RegistrationDate time.Time        `json:"registration_date"`
	PhotoURL         *string          `json:"photo_url,omitempty"`
}

func (p *Pet) ToResponse() *PetResponse {
	return &PetResponse{
		ID:               p.ID,
		Name:             p.Name,
		Species:          string(p.Species),
		Breed:            p.Breed,
		Age:              p.Age,
		Birthdate:        p.Birthdate,
		Weight:           p.Weight,
		Nickname:         p.Nickname,
		Owner:            p.Owner,
		RegistrationDate: p.RegistrationDate,
		PhotoURL:         p.PhotoURL,
	}
}
