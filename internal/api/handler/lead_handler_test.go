package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

type stubLeadService struct {
	listFn       func(ctx context.Context, q ports.ListQuery) (*ports.LeadPage, error)
	createFn     func(ctx context.Context, form ports.LeadForm) (*domain.Lead, error)
	updateFn     func(ctx context.Context, id string, patch ports.LeadFormPatch) (*domain.Lead, error)
	deleteFn     func(ctx context.Context, id string) (*ports.DeleteResult, error)
	totalPagesFn func(ctx context.Context, filter string, pageSize int) (int, error)
	viewFn       func() ports.LeadView
}

func (s *stubLeadService) List(ctx context.Context, q ports.ListQuery) (*ports.LeadPage, error) {
	return s.listFn(ctx, q)
}

func (s *stubLeadService) Create(ctx context.Context, form ports.LeadForm) (*domain.Lead, error) {
	return s.createFn(ctx, form)
}

func (s *stubLeadService) Update(ctx context.Context, id string, patch ports.LeadFormPatch) (*domain.Lead, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubLeadService) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubLeadService) TotalPages(ctx context.Context, filter string, pageSize int) (int, error) {
	return s.totalPagesFn(ctx, filter, pageSize)
}

func (s *stubLeadService) View() ports.LeadView {
	return s.viewFn()
}

var testCreatedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func testLead() domain.Lead {
	return domain.Lead{
		ID:          "1",
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john.smith@techcorp.com",
		Company:     "TechCorp Solutions",
		City:        "San Francisco",
		State:       "CA",
		Source:      domain.SourceGoogleAds,
		Status:      domain.StatusQualified,
		Score:       85,
		Value:       15000,
		IsQualified: true,
		CreatedAt:   testCreatedAt,
		UpdatedAt:   testCreatedAt,
	}
}

func TestLeadHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubLeadService{
		listFn: func(ctx context.Context, q ports.ListQuery) (*ports.LeadPage, error) {
			if q.Filter != "smith" || q.PageIndex != 1 || q.PageSize != 5 {
				t.Fatalf("unexpected query: %+v", q)
			}
			return &ports.LeadPage{
				Query:      q,
				Leads:      []domain.Lead{testLead()},
				Stats:      ports.PageStats{Count: 1, Qualified: 1, TotalValue: 15000, AverageScore: 85},
				Total:      6,
				TotalPages: 2,
			}, nil
		},
	}
	handler := NewLeadHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/leads?filter=smith&page_index=1&page_size=5", nil), rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp leadPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].SourceLabel != "Google Ads" || resp.Data[0].FullName != "John Smith" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if resp.Pagination.TotalPages != 2 || resp.Pagination.Total != 6 || resp.Pagination.PageIndex != 1 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Stats.AverageScore != 85 || resp.Stats.Qualified != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestLeadHandler_List_BadQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "non-numeric page",
			target: "/v1/leads?page_index=abc",
			check: func(t *testing.T, err error) {
				var he *echo.HTTPError
				if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %v", err)
				}
			},
		},
		{
			name:   "page size too large",
			target: "/v1/leads?page_size=500",
			check: func(t *testing.T, err error) {
				var ve *domain.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if _, ok := ve.Fields["page_size"]; !ok {
					t.Fatalf("expected page_size violation, got %v", ve.Fields)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			handler := NewLeadHandler(&stubLeadService{
				listFn: func(ctx context.Context, q ports.ListQuery) (*ports.LeadPage, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			})
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tc.target, nil), rec)

			tc.check(t, handler.List(c))
		})
	}
}

func TestLeadHandler_View(t *testing.T) {
	e := newTestEcho()
	handler := NewLeadHandler(&stubLeadService{
		viewFn: func() ports.LeadView {
			return ports.LeadView{
				Phase:     ports.PhaseFailed,
				LastError: "failed to load leads",
				Seq:       7,
				Page:      ports.LeadPage{Query: ports.ListQuery{PageSize: 10}, Leads: []domain.Lead{}},
			}
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/leads/view", nil), rec)

	if err := handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp leadViewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Phase != "failed" || resp.LastError != "failed to load leads" || resp.Seq != 7 {
		t.Fatalf("unexpected view: %+v", resp)
	}
	if resp.Page.Data == nil {
		t.Fatal("empty page must render as an empty array")
	}
}

func TestLeadHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	handler := NewLeadHandler(&stubLeadService{
		createFn: func(ctx context.Context, form ports.LeadForm) (*domain.Lead, error) {
			if form.FirstName != "John" || form.Source != "google_ads" || form.Value != 15000 {
				t.Fatalf("unexpected form: %+v", form)
			}
			l := testLead()
			return &l, nil
		},
	})

	body := `{"first_name":"John","last_name":"Smith","email":"john.smith@techcorp.com","phone":"1","company":"TechCorp","city":"SF","state":"CA","source":"google_ads","status":"qualified","score":85,"lead_value":15000,"is_qualified":true}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/leads", body), rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp leadMutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "John Smith has been added to your leads." {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Lead.ID != "1" || resp.Lead.LastActivityAt != nil {
		t.Fatalf("unexpected lead: %+v", resp.Lead)
	}
}

func TestLeadHandler_Create_PropagatesValidationError(t *testing.T) {
	e := newTestEcho()
	verr := &domain.ValidationError{Fields: map[string]string{"score": "score must be at most 100"}}
	handler := NewLeadHandler(&stubLeadService{
		createFn: func(ctx context.Context, form ports.LeadForm) (*domain.Lead, error) {
			return nil, verr
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/leads", `{"score":150}`), rec)

	if err := handler.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLeadHandler_Update_PassesOnlySuppliedFields(t *testing.T) {
	e := newTestEcho()
	handler := NewLeadHandler(&stubLeadService{
		updateFn: func(ctx context.Context, id string, patch ports.LeadFormPatch) (*domain.Lead, error) {
			if id != "1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Status == nil || *patch.Status != "won" {
				t.Fatalf("status not passed: %+v", patch)
			}
			if patch.FirstName != nil || patch.Score != nil {
				t.Fatalf("absent fields must stay nil: %+v", patch)
			}
			l := testLead()
			l.Status = domain.StatusWon
			return &l, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/leads/1", `{"status":"won"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp leadMutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "John Smith has been updated." || resp.Lead.StatusLabel != "Won" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLeadHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewLeadHandler(&stubLeadService{
		updateFn: func(ctx context.Context, id string, patch ports.LeadFormPatch) (*domain.Lead, error) {
			return nil, domain.ErrLeadNotFound
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/leads/ghost", `{"score":10}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := handler.Update(c); !errors.Is(err, domain.ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestLeadHandler_Delete(t *testing.T) {
	e := newTestEcho()
	handler := NewLeadHandler(&stubLeadService{
		deleteFn: func(ctx context.Context, id string) (*ports.DeleteResult, error) {
			return &ports.DeleteResult{ID: id, FullName: "John Smith"}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/leads/1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp deleteLeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "1" || resp.Message != "John Smith has been removed from your leads." {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
