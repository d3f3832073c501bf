// Package cache stores rendered public content so the website does not hit
// PostgreSQL on every page view.
//
// Values are stored as JSON. Redis is used when it is reachable; otherwise an
// in-process go-cache store keeps a single instance working.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Keys of the cached website payloads.
const (
	KeyWebsiteAll       = "website:all"
	KeyWebsiteOfficials = "website:officials"
	KeyWebsiteGallery   = "website:gallery"

	// KeyWebsiteGeneration changes on every content write. Cached payloads
	// carry the generation they were loaded under.
	KeyWebsiteGeneration = "website:generation"
)

// NoExpiration keeps a value until it is deleted.
const NoExpiration time.Duration = -1

// WebsiteKeys lists every key invalidated after a content write.
var WebsiteKeys = []string{KeyWebsiteAll, KeyWebsiteOfficials, KeyWebsiteGallery}

// Store is a JSON value cache.
type Store interface {
	// Get decodes the value at key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value for ttl. NoExpiration keeps it until deleted.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Backend names the implementation for logs and health output.
	Backend() string
}

// RedisStore keeps values in Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed store. Keys are namespaced with prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "cache get %s", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "cache decode %s", key)
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", key)
	}
	// go-redis treats -1 as KEEPTTL; 0 means no expiry.
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(key), raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return errors.Wrap(err, "cache delete")
	}
	return nil
}

func (s *RedisStore) Backend() string {
	return "redis"
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates an in-process store that sweeps expired values every cleanup.
func NewMemoryStore(defaultTTL, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{items: cache.New(defaultTTL, cleanup)}
}

func (s *MemoryStore) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(v.([]byte), dst); err != nil {
		return false, errors.Wrapf(err, "cache decode %s", key)
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", key)
	}
	switch {
	case ttl == NoExpiration:
		ttl = cache.NoExpiration
	case ttl <= 0:
		ttl = cache.DefaultExpiration
	}
	s.items.Set(key, raw, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.items.Delete(k)
	}
	return nil
}

func (s *MemoryStore) Backend() string {
	return "memory"
}
