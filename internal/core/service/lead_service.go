package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
	"github.com/leadflow/lead-system/internal/core/query"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultLatency  = 500 * time.Millisecond

	msgLoadFailed = "failed to load leads"
)

// LeadService is the collection controller: it owns the lead store, serves
// filtered pages with an artificial latency and keeps the currently
// displayed view.
//
// Requests may complete out of order. Each list or refresh takes a sequence
// number when issued and its result is applied to the view only if no
// higher-numbered result has been applied already.
type LeadService struct {
	store    ports.LeadStore
	logger   zerolog.Logger
	observer ports.LeadObserver
	forms    *formValidator

	latency  time.Duration
	pageSize int
	sleep    func(ctx context.Context, d time.Duration) error
	now      func() time.Time
	newID    func() string

	mu       sync.Mutex
	seq      uint64 // last issued
	applied  uint64 // last applied to view
	inflight int
	query    ports.ListQuery // last issued; mutations refresh with it
	outcome  ports.Phase
	view     ports.LeadView
}

// LeadServiceOption customises a LeadService.
type LeadServiceOption func(*LeadService)

// WithLatency sets the artificial delay applied to every operation. Zero
// disables it.
func WithLatency(d time.Duration) LeadServiceOption {
	return func(s *LeadService) { s.latency = d }
}

// WithPageSize sets the page size used when a query omits one.
func WithPageSize(n int) LeadServiceOption {
	return func(s *LeadService) {
		if n > 0 && n <= MaxPageSize {
			s.pageSize = n
		}
	}
}

// WithObserver reports operation outcomes to o.
func WithObserver(o ports.LeadObserver) LeadServiceOption {
	return func(s *LeadService) { s.observer = o }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) LeadServiceOption {
	return func(s *LeadService) { s.now = now }
}

// WithIDGenerator replaces the UUID generator for new leads.
func WithIDGenerator(newID func() string) LeadServiceOption {
	return func(s *LeadService) { s.newID = newID }
}

// WithSleeper replaces the latency wait, mainly so tests can control
// completion order.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) LeadServiceOption {
	return func(s *LeadService) { s.sleep = sleep }
}

func NewLeadService(store ports.LeadStore, logger zerolog.Logger, opts ...LeadServiceOption) *LeadService {
	s := &LeadService{
		store:    store,
		logger:   logger,
		observer: nopObserver{},
		forms:    newFormValidator(),
		latency:  DefaultLatency,
		pageSize: DefaultPageSize,
		sleep:    sleepContext,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		outcome:  ports.PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.query = ports.ListQuery{PageSize: s.pageSize}
	s.view.Page = ports.LeadPage{Query: s.query, Leads: []domain.Lead{}}
	return s
}

// List filters and pages the collection. The returned page always belongs
// to this call; the view only takes it if it is not stale.
func (s *LeadService) List(ctx context.Context, q ports.ListQuery) (*ports.LeadPage, error) {
	start := time.Now()
	q = s.normalize(q)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.query = q
	s.inflight++
	s.mu.Unlock()
	defer s.done()

	s.logger.Debug().Uint64("seq", seq).Str("filter", q.Filter).Int("page_index", q.PageIndex).Int("page_size", q.PageSize).Msg("list leads")

	if err := s.sleep(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	page, err := s.computePage(ctx, q, false)

	s.mu.Lock()
	s.apply(seq, page, err)
	s.mu.Unlock()

	s.observer.ObserveOperation("list", err, time.Since(start))
	if err != nil {
		s.logger.Error().Err(err).Uint64("seq", seq).Msg(msgLoadFailed)
		return nil, err
	}
	return page, nil
}

// Create validates form, inserts a new lead at the front of the collection
// and refreshes the view.
func (s *LeadService) Create(ctx context.Context, form ports.LeadForm) (*domain.Lead, error) {
	start := time.Now()
	if err := s.forms.check(form); err != nil {
		s.observer.ObserveOperation("create", err, time.Since(start))
		return nil, err
	}

	s.begin()
	defer s.done()

	if err := s.sleep(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	now := s.now()
	lead := domain.Lead{
		ID:             s.newID(),
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		Company:        form.Company,
		City:           form.City,
		State:          form.State,
		Source:         domain.LeadSource(form.Source),
		Status:         domain.LeadStatus(form.Status),
		Score:          form.Score,
		Value:          form.Value,
		IsQualified:    form.IsQualified,
		LastActivityAt: nil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.Insert(ctx, lead)
	if err != nil {
		err = fmt.Errorf("create lead: %w: %w", domain.ErrOperationFailed, err)
		s.observer.ObserveOperation("create", err, time.Since(start))
		s.logger.Error().Err(err).Msg("failed to create lead")
		return nil, err
	}
	s.refreshLocked(ctx)

	s.observer.ObserveOperation("create", nil, time.Since(start))
	s.logger.Info().Str("lead_id", created.ID).Str("source", string(created.Source)).Msg("lead created")
	return created, nil
}

// Update merges the supplied fields into the lead and refreshes the view.
func (s *LeadService) Update(ctx context.Context, id string, form ports.LeadFormPatch) (*domain.Lead, error) {
	start := time.Now()
	if err := s.forms.check(form); err != nil {
		s.observer.ObserveOperation("update", err, time.Since(start))
		return nil, err
	}
	patch := toDomainPatch(form)

	s.begin()
	defer s.done()

	if err := s.sleep(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.store.UpdateByKey(ctx, id, patch, s.now())
	if err != nil {
		err = storeError("update lead", id, err)
		s.observer.ObserveOperation("update", err, time.Since(start))
		s.logger.Warn().Err(err).Str("lead_id", id).Msg("failed to update lead")
		return nil, err
	}
	s.refreshLocked(ctx)

	s.observer.ObserveOperation("update", nil, time.Since(start))
	s.logger.Info().Str("lead_id", id).Msg("lead updated")
	return updated, nil
}

// Delete removes the lead and refreshes the view, pulling the page index
// back if the current page no longer exists.
func (s *LeadService) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	start := time.Now()
	s.begin()
	defer s.done()

	if err := s.sleep(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("delete lead: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.DeleteByKey(ctx, id)
	if err != nil {
		err = storeError("delete lead", id, err)
		s.observer.ObserveOperation("delete", err, time.Since(start))
		s.logger.Warn().Err(err).Str("lead_id", id).Msg("failed to delete lead")
		return nil, err
	}
	s.refreshLocked(ctx)

	s.observer.ObserveOperation("delete", nil, time.Since(start))
	s.logger.Info().Str("lead_id", id).Msg("lead deleted")
	return &ports.DeleteResult{ID: removed.ID, FullName: removed.FullName()}, nil
}

// TotalPages counts the pages of the whole store filtered by filter. A
// non-positive pageSize uses the configured default and sizes above
// MaxPageSize are capped, the same as List.
func (s *LeadService) TotalPages(ctx context.Context, filter string, pageSize int) (int, error) {
	q := s.normalize(ports.ListQuery{Filter: filter, PageSize: pageSize})

	all, err := s.store.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count leads: %w", domain.ErrOperationFailed, err)
	}
	return query.TotalPages(len(query.Filter(all, q.Filter)), q.PageSize), nil
}

// View returns the currently displayed state.
func (s *LeadService) View() ports.LeadView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view
	v.Phase = s.outcome
	if s.inflight > 0 {
		v.Phase = ports.PhaseLoading
	}
	return v
}

func (s *LeadService) normalize(q ports.ListQuery) ports.ListQuery {
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.PageIndex < 0 {
		q.PageIndex = 0
	}
	return q
}

func (s *LeadService) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *LeadService) done() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

// refreshLocked re-lists the last issued query after a mutation, clamping
// the page index if the page count shrank. Callers hold s.mu.
func (s *LeadService) refreshLocked(ctx context.Context) {
	s.seq++
	seq := s.seq

	page, err := s.computePage(ctx, s.query, true)
	if err == nil {
		s.query.PageIndex = page.Query.PageIndex
	}
	s.apply(seq, page, err)
}

// apply installs a completed result unless a newer one is already shown.
// Callers hold s.mu.
func (s *LeadService) apply(seq uint64, page *ports.LeadPage, err error) {
	if seq <= s.applied {
		s.observer.ObserveDiscardedList()
		s.logger.Debug().Uint64("seq", seq).Uint64("applied", s.applied).Msg("discarding stale list result")
		return
	}
	s.applied = seq
	s.view.Seq = seq

	if err != nil {
		s.outcome = ports.PhaseFailed
		s.view.LastError = msgLoadFailed
		return
	}
	s.outcome = ports.PhaseSuccess
	s.view.LastError = ""
	s.view.Page = *page
}

func (s *LeadService) computePage(ctx context.Context, q ports.ListQuery, clamp bool) (*ports.LeadPage, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load leads: %w", domain.ErrOperationFailed, err)
	}

	filtered := query.Filter(all, q.Filter)
	total := len(filtered)
	pages := query.TotalPages(total, q.PageSize)
	if clamp {
		q.PageIndex = query.ClampPageIndex(q.PageIndex, pages)
	}

	leads := query.Paginate(filtered, q.PageIndex, q.PageSize)
	return &ports.LeadPage{
		Query:      q,
		Leads:      leads,
		Stats:      pageStats(leads),
		Total:      total,
		TotalPages: pages,
	}, nil
}

func storeError(op, id string, err error) error {
	if errors.Is(err, domain.ErrLeadNotFound) {
		return fmt.Errorf("%s %s: %w", op, id, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, id, domain.ErrOperationFailed, err)
}

func toDomainPatch(f ports.LeadFormPatch) domain.LeadPatch {
	p := domain.LeadPatch{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		Phone:       f.Phone,
		Company:     f.Company,
		City:        f.City,
		State:       f.State,
		Score:       f.Score,
		Value:       f.Value,
		IsQualified: f.IsQualified,
	}
	if f.Source != nil {
		src := domain.LeadSource(*f.Source)
		p.Source = &src
	}
	if f.Status != nil {
		st := domain.LeadStatus(*f.Status)
		p.Status = &st
	}
	return p
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, error, time.Duration) {}
func (nopObserver) ObserveDiscardedList()                        {}
