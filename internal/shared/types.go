package shared

// Asynq queue names. The worker weights these in its config.
const (
	QueueDefault = "default"
	QueueStorage = "storage"
)
