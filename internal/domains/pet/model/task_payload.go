package model

// Asynq task types for avatar housekeeping.
const (
	// TaskAvatarDelete removes a single replaced avatar object.
	TaskAvatarDelete = "avatar:delete"
	// TaskAvatarSweep removes stale uploads that were never confirmed.
	TaskAvatarSweep = "avatar:sweep"
)

type AvatarDeletePayload struct {
	PetID    string `json:"pet_id"`
	PhotoKey string `json:"photo_key"`
}
