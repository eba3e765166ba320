package main

import (
	"time"

	"github.com/hibiken/asynq"

	"petregistry-backend/internal/domains/pet/job"
	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/pkg/container"
)

// HandlerRegistry collects all task handlers for the worker.
type HandlerRegistry struct {
	AvatarDelete *job.AvatarDeleteHandler
	AvatarSweep  *job.AvatarSweepHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	orphanMaxAge := time.Duration(c.Config.Storage.OrphanMaxAgeHours) * time.Hour

	return &HandlerRegistry{
		AvatarDelete: job.NewAvatarDeleteHandler(c.Storage),
		AvatarSweep:  job.NewAvatarSweepHandler(c.PetRepo, c.Storage, orphanMaxAge),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(model.TaskAvatarDelete, r.AvatarDelete)
	mux.Handle(model.TaskAvatarSweep, r.AvatarSweep)
}
