package job

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	removed [][]string
	err     error
}

func (f *fakeStore) Upload(context.Context, string, io.Reader, string) (string, error) {
	return "", nil
}

func (f *fakeStore) Remove(_ context.Context, paths ...string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, paths)
	return nil
}

func (f *fakeStore) PublicURL(path string) string   { return path }
func (f *fakeStore) Bucket() string                 { return "bucket" }
func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func newTestService(store *fakeStore) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(nil, store)
	return j
}

func TestNewStorageDeleteTask(t *testing.T) {
	task, err := NewStorageDeleteTask("gallery/a.png", "gallery/b.png")
	require.NoError(t, err)
	assert.Equal(t, TaskStorageDelete, task.Type())

	var p StorageDeletePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, []string{"gallery/a.png", "gallery/b.png"}, p.Paths)
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("a@example.org", "editor")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())
	assert.JSONEq(t, `{"to":"a@example.org","role":"editor"}`, string(task.Payload()))
}

func TestHandleStorageDeleteTask(t *testing.T) {
	store := &fakeStore{}
	j := newTestService(store)

	task, err := NewStorageDeleteTask("officials/x.jpg")
	require.NoError(t, err)

	require.NoError(t, j.handleStorageDeleteTask(context.Background(), task))
	assert.Equal(t, [][]string{{"officials/x.jpg"}}, store.removed)
}

func TestHandleStorageDeleteTaskError(t *testing.T) {
	j := newTestService(&fakeStore{err: errors.New("boom")})
	task, err := NewStorageDeleteTask("officials/x.jpg")
	require.NoError(t, err)

	assert.Error(t, j.handleStorageDeleteTask(context.Background(), task))
}

func TestHandleMalformedPayloadSkipsRetry(t *testing.T) {
	j := newTestService(&fakeStore{})

	err := j.handleStorageDeleteTask(context.Background(), asynq.NewTask(TaskStorageDelete, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("nope")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleWelcomeEmailWithoutClient(t *testing.T) {
	j := newTestService(&fakeStore{})
	task, err := NewWelcomeEmailTask("a@example.org", "viewer")
	require.NoError(t, err)

	assert.NoError(t, j.handleWelcomeEmailTask(context.Background(), task))
}
