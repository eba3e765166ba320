package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/internal/shared"
)

// Client enqueues housekeeping tasks for the worker binary.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddress string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddress}),
	}
}

// EnqueueAvatarDelete schedules removal of a replaced avatar object.
func (c *Client) EnqueueAvatarDelete(ctx context.Context, payload model.AvatarDeletePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal avatar delete payload: %w", err)
	}

	task := asynq.NewTask(model.TaskAvatarDelete, data)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueStorage),
		asynq.MaxRetry(3),
		asynq.Timeout(1*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", model.TaskAvatarDelete, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
