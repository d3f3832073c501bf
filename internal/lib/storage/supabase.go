package storage

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/deppfellow/grampanchayat/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	storage_go "github.com/supabase-community/storage-go"
)

// bucketAPI is the part of the storage-go client used here.
type bucketAPI interface {
	UploadFile(bucketID string, relativePath string, data io.Reader, fileOptions ...storage_go.FileOptions) (storage_go.FileUploadResponse, error)
	RemoveFile(bucketID string, paths []string) ([]storage_go.FileUploadResponse, error)
	GetPublicUrl(bucketID string, filePath string, urlOptions ...storage_go.UrlOptions) storage_go.SignedUrlResponse
	GetBucket(id string) (storage_go.Bucket, error)
	CreateBucket(id string, options storage_go.BucketOptions) (storage_go.Bucket, error)
}

// SupabaseStore is an ObjectStore backed by a Supabase storage bucket.
type SupabaseStore struct {
	client bucketAPI
	bucket string
	logger *zerolog.Logger
}

// NewSupabaseStore creates a store authenticated with the service key.
func NewSupabaseStore(cfg *config.StorageConfig, logger *zerolog.Logger) *SupabaseStore {
	client := storage_go.NewClient(cfg.URL, cfg.ServiceKey, map[string]string{
		"apikey": cfg.ServiceKey,
	})
	return newSupabaseStore(client, cfg.Bucket, logger)
}

func newSupabaseStore(client bucketAPI, bucket string, logger *zerolog.Logger) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket, logger: logger}
}

func (s *SupabaseStore) Bucket() string {
	return s.bucket
}

func (s *SupabaseStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", path)
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("path", path).
		Str("content_type", contentType).
		Msg("object uploaded")

	return s.PublicURL(path), nil
}

func (s *SupabaseStore) Remove(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return errors.Wrapf(err, "failed to remove %d object(s)", len(paths))
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Strs("paths", paths).
		Msg("objects removed")
	return nil
}

func (s *SupabaseStore) PublicURL(path string) string {
	return s.client.GetPublicUrl(s.bucket, path).SignedURL
}

func (s *SupabaseStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client.GetBucket(s.bucket); err != nil {
		return errors.Wrapf(err, "bucket %s unreachable", s.bucket)
	}
	return nil
}

// BucketOptions describes the bucket created by EnsureBucket.
type BucketOptions struct {
	Public           bool
	FileSizeLimit    int64
	AllowedMimeTypes []string
}

// EnsureBucket creates the bucket when it does not exist yet.
// It reports whether a bucket was created.
func (s *SupabaseStore) EnsureBucket(ctx context.Context, opts BucketOptions) (bool, error) {
	if err := s.Ping(ctx); err == nil {
		return false, nil
	}

	_, err := s.client.CreateBucket(s.bucket, storage_go.BucketOptions{
		Public:           opts.Public,
		FileSizeLimit:    strconv.FormatInt(opts.FileSizeLimit, 10),
		AllowedMimeTypes: opts.AllowedMimeTypes,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}

	s.logger.Info().Str("bucket", s.bucket).Bool("public", opts.Public).Msg("bucket created")
	return true, nil
}
