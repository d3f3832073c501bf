package service

import (
	"context"
	"strings"

	"github.com/deppfellow/grampanchayat/internal/lib/cache"
	"github.com/deppfellow/grampanchayat/internal/lib/storage"
	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type storageDeleteEnqueuer interface {
	EnqueueStorageDelete(ctx context.Context, paths ...string) error
}

// FileRemover deletes stored files after their rows are gone.
//
// Removal is best-effort: failures are logged and never reach the client.
// With a job queue the delete runs on a worker, otherwise inline.
type FileRemover struct {
	store  storage.ObjectStore
	queue  storageDeleteEnqueuer
	logger *zerolog.Logger
}

func NewFileRemover(s *server.Server) *FileRemover {
	r := &FileRemover{store: s.Storage, logger: s.Logger}
	if s.Job != nil {
		r.queue = s.Job
	}
	return r
}

// Remove deletes the objects behind refs, which may be public URLs or object paths.
// Empty refs are skipped.
func (r *FileRemover) Remove(ctx context.Context, refs ...string) {
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		if strings.TrimSpace(ref) == "" {
			continue
		}
		paths = append(paths, storage.PathFromURL(r.store.Bucket(), ref))
	}
	if len(paths) == 0 {
		return
	}

	ctx = context.WithoutCancel(ctx)

	if r.queue != nil {
		err := r.queue.EnqueueStorageDelete(ctx, paths...)
		if err == nil {
			return
		}
		r.logger.Warn().Err(err).Strs("paths", paths).Msg("failed to enqueue file removal, removing inline")
	}

	if err := r.store.Remove(ctx, paths...); err != nil {
		r.logger.Error().Err(err).Strs("paths", paths).Msg("failed to remove files")
	}
}

// ContentCache wraps the public content cache used by the website endpoints.
type ContentCache struct {
	store  cache.Store
	logger *zerolog.Logger
}

func NewContentCache(s *server.Server) *ContentCache {
	return &ContentCache{store: s.Cache, logger: s.Logger}
}

// Invalidate starts a new cache generation and drops every cached website
// payload. Called after each content write.
func (c *ContentCache) Invalidate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	// A load that began before this write stores its result under the old
	// generation, which readers then ignore.
	if err := c.store.Set(ctx, cache.KeyWebsiteGeneration, uuid.NewString(), cache.NoExpiration); err != nil {
		c.logger.Warn().Err(err).Str("backend", c.store.Backend()).Msg("failed to bump website cache generation")
	}
	if err := c.store.Delete(ctx, cache.WebsiteKeys...); err != nil {
		c.logger.Warn().Err(err).Str("backend", c.store.Backend()).Msg("failed to invalidate website cache")
	}
}
