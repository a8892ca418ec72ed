// Package metrics defines and registers the custom Prometheus metrics for the
// LeadFlow API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default registry at package init via
// promauto. HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leadflow/lead-system/internal/core/domain"
)

const namespace = "leadflow"

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadOperationsTotal counts controller operations.
// Labels:
//   - operation: "list", "create", "update" or "delete"
//   - result: "success", "invalid", "not_found" or "error"
var LeadOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_operations_total",
		Help:      "Total number of lead operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// LeadOperationDuration measures an operation end to end, artificial latency
// included.
var LeadOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lead_operation_duration_seconds",
		Help:      "Duration of lead operations including simulated latency.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// LeadListsDiscardedTotal counts list results that completed after a newer
// result had already been applied to the view.
var LeadListsDiscardedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_lists_discarded_total",
		Help:      "Total number of stale list results discarded by the controller.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionEventsTotal counts session workflow outcomes.
// Labels:
//   - event: "login", "register" or "logout"
//   - result: "success" or a failure reason such as "invalid_credentials"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session events, by event and result.",
	},
	[]string{"event", "result"},
)

// Recorder feeds controller outcomes into the lead metrics. It satisfies
// ports.LeadObserver.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) ObserveOperation(op string, err error, took time.Duration) {
	LeadOperationsTotal.WithLabelValues(op, Result(err)).Inc()
	LeadOperationDuration.WithLabelValues(op).Observe(took.Seconds())
}

func (Recorder) ObserveDiscardedList() {
	LeadListsDiscardedTotal.Inc()
}

// Result classifies err into a low-cardinality label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrLeadNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
