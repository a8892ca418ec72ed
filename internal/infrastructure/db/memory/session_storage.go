package memory

import (
	"context"
	"sync"

	"github.com/leadflow/lead-system/internal/core/ports"
)

// SessionStorage is a process-local ports.SessionStorage. It does not
// survive restarts; use the Redis backend for that.
type SessionStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{data: make(map[string][]byte)}
}

func (s *SessionStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ports.ErrStorageKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *SessionStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *SessionStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
