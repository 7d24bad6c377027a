package cache

import (
	"context"
	"encoding/json"
	"time"

	"threadapp/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client with JSON helpers. A Store over a nil client is
// valid and behaves as an always-empty cache, so callers never branch on
// Redis availability.
type Store struct {
	client *redis.Client
}

// NewStore creates a Store over the given client. client may be nil.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// GetJSON attempts to get the key and unmarshal it into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		observability.CacheRequests.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	observability.CacheRequests.WithLabelValues("hit").Inc()
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, ttl).Err()
}

// Invalidate removes the given keys. Best-effort; errors are ignored.
func (s *Store) Invalidate(ctx context.Context, keys ...string) {
	if s.client == nil || len(keys) == 0 {
		return
	}
	_ = s.client.Del(ctx, keys...).Err()
}

// Aside tries the cache first, on miss it calls fetch (which must write into
// dest), then stores the result with ttl. Cache write failures are
// best-effort and do not fail the request.
func (s *Store) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := s.GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = s.SetJSON(ctx, key, dest, ttl)
	return nil
}
