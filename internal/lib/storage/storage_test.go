package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage_go "github.com/supabase-community/storage-go"
)

const publicBase = "https://project.supabase.co/storage/v1/object/public/"

type fakeBucket struct {
	objects   map[string]string
	types     map[string]string
	buckets   map[string]storage_go.BucketOptions
	uploadErr error
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		objects: map[string]string{},
		types:   map[string]string{},
		buckets: map[string]storage_go.BucketOptions{},
	}
}

func (f *fakeBucket) UploadFile(bucketID, relativePath string, data io.Reader, opts ...storage_go.FileOptions) (storage_go.FileUploadResponse, error) {
	if f.uploadErr != nil {
		return storage_go.FileUploadResponse{}, f.uploadErr
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return storage_go.FileUploadResponse{}, err
	}
	f.objects[relativePath] = string(body)
	if len(opts) > 0 && opts[0].ContentType != nil {
		f.types[relativePath] = *opts[0].ContentType
	}
	return storage_go.FileUploadResponse{}, nil
}

func (f *fakeBucket) RemoveFile(bucketID string, paths []string) ([]storage_go.FileUploadResponse, error) {
	for _, p := range paths {
		delete(f.objects, p)
	}
	return nil, nil
}

func (f *fakeBucket) GetPublicUrl(bucketID, filePath string, _ ...storage_go.UrlOptions) storage_go.SignedUrlResponse {
	return storage_go.SignedUrlResponse{SignedURL: publicBase + bucketID + "/" + filePath}
}

func (f *fakeBucket) GetBucket(id string) (storage_go.Bucket, error) {
	if _, ok := f.buckets[id]; !ok {
		return storage_go.Bucket{}, errors.New("bucket not found")
	}
	return storage_go.Bucket{}, nil
}

func (f *fakeBucket) CreateBucket(id string, options storage_go.BucketOptions) (storage_go.Bucket, error) {
	f.buckets[id] = options
	return storage_go.Bucket{}, nil
}

func newTestStore() (*SupabaseStore, *fakeBucket) {
	logger := zerolog.Nop()
	fake := newFakeBucket()
	return newSupabaseStore(fake, "grampanchayat-files", &logger), fake
}

func TestObjectPath(t *testing.T) {
	path := ObjectPath("officials", "Sarpanch Photo.JPG")
	require.True(t, strings.HasPrefix(path, "officials/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	assert.Len(t, path, len("officials/")+36+len(".jpg"))

	assert.NotEqual(t, path, ObjectPath("officials", "Sarpanch Photo.JPG"))
	assert.True(t, strings.HasPrefix(ObjectPath("  ", "a.png"), "general/"))
	assert.True(t, strings.HasPrefix(ObjectPath("/hero-images/", "a.png"), "hero-images/"))
}

func TestPathFromURL(t *testing.T) {
	bucket := "grampanchayat-files"

	assert.Equal(t, "gallery/abc.png", PathFromURL(bucket, publicBase+bucket+"/gallery/abc.png"))
	assert.Equal(t, "gallery/abc.png", PathFromURL(bucket, publicBase+bucket+"/gallery/abc.png?download=1"))
	assert.Equal(t, "documents/x.pdf", PathFromURL(bucket, "documents/x.pdf"))
}

func TestSupabaseStoreUpload(t *testing.T) {
	store, fake := newTestStore()

	url, err := store.Upload(context.Background(), "gallery/a.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, publicBase+"grampanchayat-files/gallery/a.png", url)
	assert.Equal(t, "png-bytes", fake.objects["gallery/a.png"])
	assert.Equal(t, "image/png", fake.types["gallery/a.png"])
	assert.Equal(t, "gallery/a.png", PathFromURL(store.Bucket(), url))
}

func TestSupabaseStoreUploadError(t *testing.T) {
	store, fake := newTestStore()
	fake.uploadErr = errors.New("duplicate")

	_, err := store.Upload(context.Background(), "gallery/a.png", strings.NewReader("x"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gallery/a.png")
}

func TestSupabaseStoreUploadCanceled(t *testing.T) {
	store, fake := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Upload(ctx, "gallery/a.png", strings.NewReader("x"), "image/png")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.objects)
}

func TestSupabaseStoreRemove(t *testing.T) {
	store, fake := newTestStore()
	fake.objects["a"] = "1"
	fake.objects["b"] = "2"

	require.NoError(t, store.Remove(context.Background()))
	require.NoError(t, store.Remove(context.Background(), "a"))

	assert.NotContains(t, fake.objects, "a")
	assert.Contains(t, fake.objects, "b")
}

func TestEnsureBucket(t *testing.T) {
	store, fake := newTestStore()
	ctx := context.Background()

	require.Error(t, store.Ping(ctx))

	created, err := store.EnsureBucket(ctx, BucketOptions{
		Public:           true,
		FileSizeLimit:    5242880,
		AllowedMimeTypes: []string{"image/png"},
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "5242880", fake.buckets["grampanchayat-files"].FileSizeLimit)
	assert.True(t, fake.buckets["grampanchayat-files"].Public)

	created, err = store.EnsureBucket(ctx, BucketOptions{})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, store.Ping(ctx))
}
