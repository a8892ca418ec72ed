package ports

import (
	"context"
	"time"

	"github.com/leadflow/lead-system/internal/core/domain"
)

// LeadForm carries every field of the create form.
type LeadForm struct {
	FirstName   string  `json:"first_name"   validate:"required"`
	LastName    string  `json:"last_name"    validate:"required"`
	Email       string  `json:"email"        validate:"required,email"`
	Phone       string  `json:"phone"        validate:"required"`
	Company     string  `json:"company"      validate:"required"`
	City        string  `json:"city"         validate:"required"`
	State       string  `json:"state"        validate:"required"`
	Source      string  `json:"source"       validate:"lead_source"`
	Status      string  `json:"status"       validate:"lead_status"`
	Score       int     `json:"score"        validate:"min=0,max=100"`
	Value       float64 `json:"lead_value"   validate:"min=0"`
	IsQualified bool    `json:"is_qualified"`
}

// LeadFormPatch carries the edit form. Nil fields are left unchanged; a
// supplied field obeys the same rules as on create.
type LeadFormPatch struct {
	FirstName   *string  `json:"first_name"   validate:"omitnil,min=1"`
	LastName    *string  `json:"last_name"    validate:"omitnil,min=1"`
	Email       *string  `json:"email"        validate:"omitnil,email"`
	Phone       *string  `json:"phone"        validate:"omitnil,min=1"`
	Company     *string  `json:"company"      validate:"omitnil,min=1"`
	City        *string  `json:"city"         validate:"omitnil,min=1"`
	State       *string  `json:"state"        validate:"omitnil,min=1"`
	Source      *string  `json:"source"       validate:"omitnil,lead_source"`
	Status      *string  `json:"status"       validate:"omitnil,lead_status"`
	Score       *int     `json:"score"        validate:"omitnil,min=0,max=100"`
	Value       *float64 `json:"lead_value"   validate:"omitnil,min=0"`
	IsQualified *bool    `json:"is_qualified"`
}

// ListQuery selects one page of the filtered collection.
type ListQuery struct {
	Filter    string
	PageIndex int // zero-based
	PageSize  int
}

// PageStats aggregates the leads on the displayed page only.
type PageStats struct {
	Count        int
	Qualified    int
	TotalValue   float64
	AverageScore int
}

// LeadPage is one page of the filtered collection.
type LeadPage struct {
	Query      ListQuery
	Leads      []domain.Lead
	Stats      PageStats
	Total      int // filtered count across all pages
	TotalPages int
}

// Phase is the request state of the collection controller.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailed  Phase = "failed"
)

// LeadView is the controller's currently displayed state.
type LeadView struct {
	Page      LeadPage
	Phase     Phase
	LastError string
	// Seq is the sequence number of the request that produced Page.
	Seq uint64
}

// DeleteResult identifies a removed lead for confirmation messaging.
type DeleteResult struct {
	ID       string
	FullName string
}

// LeadService defines the collection controller operations.
type LeadService interface {
	List(ctx context.Context, q ListQuery) (*LeadPage, error)
	Create(ctx context.Context, form LeadForm) (*domain.Lead, error)
	Update(ctx context.Context, id string, patch LeadFormPatch) (*domain.Lead, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	TotalPages(ctx context.Context, filter string, pageSize int) (int, error)
	View() LeadView
}

// LeadObserver receives controller outcomes, e.g. for metrics.
type LeadObserver interface {
	ObserveOperation(op string, err error, took time.Duration)
	ObserveDiscardedList()
}
