package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/leadflow/lead-system/internal/core/domain"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{&domain.ValidationError{Fields: map[string]string{"score": "bad"}}, "invalid"},
		{fmt.Errorf("update lead x: %w", domain.ErrLeadNotFound), "not_found"},
		{domain.ErrInvalidCredentials, "invalid_credentials"},
		{errors.New("boom"), "error"},
	}
	for _, tc := range tests {
		if got := Result(tc.err); got != tc.want {
			t.Errorf("Result(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestRecorder_CountsOperations(t *testing.T) {
	r := NewRecorder()
	before := counterValue(t, LeadOperationsTotal.WithLabelValues("delete", "not_found"))

	r.ObserveOperation("delete", domain.ErrLeadNotFound, 10*time.Millisecond)

	after := counterValue(t, LeadOperationsTotal.WithLabelValues("delete", "not_found"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}
}

func TestRecorder_CountsDiscardedLists(t *testing.T) {
	r := NewRecorder()
	before := counterValue(t, LeadListsDiscardedTotal)

	r.ObserveDiscardedList()
	r.ObserveDiscardedList()

	if got := counterValue(t, LeadListsDiscardedTotal) - before; got != 2 {
		t.Errorf("expected 2 discarded lists, got %v", got)
	}
}
