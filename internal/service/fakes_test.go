package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/deppfellow/grampanchayat/internal/errs"
	"github.com/deppfellow/grampanchayat/internal/lib/cache"
	"github.com/deppfellow/grampanchayat/internal/model"
	"github.com/deppfellow/grampanchayat/internal/repository"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testBucket = "grampanchayat-files"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func requireHTTPError(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	require.Equal(t, status, httpErr.Status, httpErr.Message)
	return httpErr
}

// fakeStore is an in-memory storage.ObjectStore.
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	uploadErr error
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, path string, body io.Reader, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[path] = data
	return f.PublicURL(path), nil
}

func (f *fakeStore) Remove(_ context.Context, paths ...string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range paths {
		delete(f.objects, p)
		f.removed = append(f.removed, p)
	}
	return nil
}

func (f *fakeStore) PublicURL(path string) string {
	return "https://project.supabase.co/storage/v1/object/public/" + testBucket + "/" + path
}

func (f *fakeStore) Bucket() string {
	return testBucket
}

func (f *fakeStore) Ping(context.Context) error {
	return nil
}

// testServer builds a Server with in-memory dependencies and no Redis.
func testServer(store *fakeStore) *server.Server {
	return &server.Server{
		Config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret: "0123456789abcdef0123",
				TokenTTL:  time.Hour,
				Issuer:    "grampanchayat-test",
			},
			Upload: config.DefaultUploadConfig(),
			Cache:  config.DefaultCacheConfig(),
		},
		Logger:  testLogger(),
		Storage: store,
		Cache:   cache.NewMemoryStore(time.Minute, time.Minute),
	}
}

func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

// fakeUserRepo keeps users in memory.
type fakeUserRepo struct {
	users       map[uuid.UUID]*model.User
	lastLogins  int
	createCalls int
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) ListUsers(context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sqlerr.NoRows("users")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sqlerr.NoRows("users")
}

func (r *fakeUserRepo) CreateUser(_ context.Context, email, hash string, role model.Role, permissions []string) (*model.User, error) {
	r.createCalls++
	u := &model.User{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:       email,
		Password:    hash,
		Role:        role,
		Permissions: permissions,
		IsActive:    true,
	}
	r.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id uuid.UUID, upd repository.UserUpdate) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sqlerr.NoRows("users")
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Permissions != nil {
		u.Permissions = upd.Permissions
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	if upd.PasswordHash != nil {
		u.Password = *upd.PasswordHash
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return sqlerr.NoRows("users")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(context.Context, uuid.UUID) error {
	r.lastLogins++
	return nil
}

func (r *fakeUserRepo) GrantAllIfEmpty(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && len(u.Permissions) == 0 {
			u.Permissions = []string{"*"}
			return true, nil
		}
	}
	return false, nil
}
