package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/internal/domains/pet/repository"
	"petregistry-backend/internal/domains/pet/service"
	"petregistry-backend/internal/shared/response"
)

type PetHandler struct {
	service service.Service
	repo    repository.Repository
}

func NewPetHandler(service service.Service, repo repository.Repository) *PetHandler {
	return &PetHandler{
		service: service,
		repo:    repo,
	}
}

// getUserID reads the authenticated user set by the auth middleware.
func getUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		response.Unauthorized(c, "missing user identity")
		return "", false
	}
	return userID, true
}

func respondDomainError(c *gin.Context, err error) {
	statusCode, message, code := model.MapErrorToHTTP(err)
	response.ErrorResponse(c, statusCode, code, message)
}

// RegisterPet handles POST /pets
func (h *PetHandler) RegisterPet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.RegisterPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pet, err := h.service.RegisterPet(c.Request.Context(), service.RegisterPetInput{
		Name:    req.Name,
		Species: model.Species(req.Species),
		Breed:   req.Breed,
		Age:     req.Age,
		Owner:   userID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pet.ToResponse())
}

// GetPet handles GET /pets/:id
func (h *PetHandler) GetPet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	pet, err := h.service.GetPetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pet.ToResponse())
}

// ListPets handles GET /pets
func (h *PetHandler) ListPets(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	pets := make([]*model.PetResponse, 0)
	for pet, err := range h.service.ListPets(c.Request.Context(), userID) {
		if err != nil {
			// The response has not been written yet; a mid-stream
			// failure still surfaces as a clean error.
			respondDomainError(c, err)
			return
		}
		pets = append(pets, pet.ToResponse())
	}

	total, err := h.repo.CountByOwner(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, pets, &response.Meta{Total: total})
}

// UpdatePet handles PATCH /pets/:id
func (h *PetHandler) UpdatePet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pet, err := h.service.UpdatePet(c.Request.Context(), req.ToCommand(userID, c.Param("id")))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pet.ToResponse())
}

// DeletePet handles DELETE /pets/:id
func (h *PetHandler) DeletePet(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	cmd := model.DeletePetCommand{
		PetID:  c.Param("id"),
		UserID: userID,
	}

	if err := h.service.DeletePet(c.Request.Context(), cmd); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PresignAvatar handles POST /pets/:id/avatar/presign
func (h *PetHandler) PresignAvatar(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.PresignAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cmd := model.GeneratePresignedURLCommand{
		UserID:      userID,
		PetID:       c.Param("id"),
		ContentType: req.ContentType,
	}

	presigned, err := h.service.GenerateAvatarPresignedURL(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, presigned)
}

// ConfirmAvatar handles POST /pets/:id/avatar/confirm
func (h *PetHandler) ConfirmAvatar(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.ConfirmAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cmd := model.ConfirmAvatarUploadCommand{
		UserID:   userID,
		PetID:    c.Param("id"),
		PhotoKey: req.PhotoKey,
	}

	pet, err := h.service.ConfirmAvatarUpload(c.Request.Context(), cmd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pet.ToResponse())
}
