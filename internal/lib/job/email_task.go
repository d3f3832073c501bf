package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome sends the account-created email.
	TaskWelcome = "email:welcome"

	// TaskStorageDelete removes objects left behind by deleted rows.
	TaskStorageDelete = "storage:delete"
)

// WelcomeEmailPayload is the JSON payload of TaskWelcome.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Role string `json:"role"`
}

// NewWelcomeEmailTask builds a TaskWelcome retried up to 3 times.
func NewWelcomeEmailTask(to, role string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Role: role})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// StorageDeletePayload is the JSON payload of TaskStorageDelete.
type StorageDeletePayload struct {
	Paths []string `json:"paths"`
}

// NewStorageDeleteTask builds a low priority TaskStorageDelete.
func NewStorageDeleteTask(paths ...string) (*asynq.Task, error) {
	payload, err := json.Marshal(StorageDeletePayload{Paths: paths})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskStorageDelete,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("low"),
		asynq.Timeout(time.Minute),
	), nil
}

// EnqueueWelcomeEmail schedules the account-created email for to.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to, role string) error {
	task, err := NewWelcomeEmailTask(to, role)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task)
}

// EnqueueStorageDelete schedules removal of the given object paths.
func (j *JobService) EnqueueStorageDelete(ctx context.Context, paths ...string) error {
	task, err := NewStorageDeleteTask(paths...)
	if err != nil {
		return err
	}
	return j.enqueue(ctx, task)
}
