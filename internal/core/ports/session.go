package ports

import (
	"context"
	"errors"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// ErrStorageKeyNotFound is returned by SessionStorage.Get for a missing key.
var ErrStorageKeyNotFound = errors.New("storage key not found")

// SessionStorage is the persisted key-value store holding the session.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete must succeed when the key does not exist.
	Delete(ctx context.Context, key string) error
}

// SessionService manages the single authenticated user.
type SessionService interface {
	Current() (*domain.Session, bool)
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Session, string, error)
	Logout(ctx context.Context) error
}
