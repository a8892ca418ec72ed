package ports

import (
	"context"
	"time"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// LeadStore is the ordered record store behind the lead collection.
// Implementations prepend on Insert so the newest lead comes first; the seed
// dataset keeps the order it was given in.
type LeadStore interface {
	Insert(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	// UpdateByKey merges patch into the stored lead, always overwriting
	// UpdatedAt with updatedAt. Returns domain.ErrLeadNotFound when absent.
	UpdateByKey(ctx context.Context, id string, patch domain.LeadPatch, updatedAt time.Time) (*domain.Lead, error)
	// DeleteByKey removes and returns the lead. Returns domain.ErrLeadNotFound when absent.
	DeleteByKey(ctx context.Context, id string) (*domain.Lead, error)
	// All returns a snapshot of every lead in store order.
	All(ctx context.Context) ([]domain.Lead, error)
}
