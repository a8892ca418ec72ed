package memory

import (
	"context"
	"sync"
	"time"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// LeadStore is an in-memory ports.LeadStore. New leads are prepended; the
// seed passed to NewLeadStore keeps its order.
type LeadStore struct {
	mu    sync.RWMutex
	leads []domain.Lead
}

// NewLeadStore returns a store pre-populated with seed.
func NewLeadStore(seed ...domain.Lead) *LeadStore {
	leads := make([]domain.Lead, 0, len(seed))
	for _, l := range seed {
		leads = append(leads, l.Clone())
	}
	return &LeadStore{leads: leads}
}

// Insert prepends lead and returns the stored copy.
func (s *LeadStore) Insert(_ context.Context, lead domain.Lead) (*domain.Lead, error) {
	stored := lead.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append([]domain.Lead{stored}, s.leads...)

	out := stored.Clone()
	return &out, nil
}

// UpdateByKey merges patch into the lead with the given id.
func (s *LeadStore) UpdateByKey(_ context.Context, id string, patch domain.LeadPatch, updatedAt time.Time) (*domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrLeadNotFound
	}

	patch.Apply(&s.leads[i], updatedAt)

	out := s.leads[i].Clone()
	return &out, nil
}

// DeleteByKey removes the lead with the given id and returns it.
func (s *LeadStore) DeleteByKey(_ context.Context, id string) (*domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrLeadNotFound
	}

	removed := s.leads[i]
	s.leads = append(s.leads[:i], s.leads[i+1:]...)
	return &removed, nil
}

// All returns a snapshot copy of every lead in store order.
func (s *LeadStore) All(_ context.Context) ([]domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		out[i] = l.Clone()
	}
	return out, nil
}

// Len reports the number of stored leads.
func (s *LeadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

func (s *LeadStore) indexOf(id string) int {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return i
		}
	}
	return -1
}
