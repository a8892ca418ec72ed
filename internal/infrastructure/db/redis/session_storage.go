package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/leadflow/lead-system/internal/core/ports"
)

const keyPrefix = "leadflow:"

// SessionStorage persists the session value in Redis so it survives
// process restarts. Keys are stored under the leadflow: prefix with no TTL.
type SessionStorage struct {
	client *redis.Client
}

// NewSessionStorage wraps the given Redis client.
func NewSessionStorage(client *redis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

// Get returns ports.ErrStorageKeyNotFound when the key is absent.
func (s *SessionStorage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrStorageKeyNotFound
		}
		return nil, fmt.Errorf("session storage get: %w", err)
	}
	return b, nil
}

func (s *SessionStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("session storage set: %w", err)
	}
	return nil
}

// Delete is a no-op for missing keys.
func (s *SessionStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("session storage delete: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable; used by the readiness probe.
func (s *SessionStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStorage) key(k string) string {
	return keyPrefix + k
}
