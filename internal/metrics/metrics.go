// Package metrics holds the Prometheus collectors of the service. Collectors
// register with the default registry on package init.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

const namespace = "sitedefects"

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// DefectMutations counts defect mutations by operation and outcome.
	DefectMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defect",
			Name:      "mutations_total",
			Help:      "Defect mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Transitions counts accepted status transitions by target status.
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defect",
			Name:      "transitions_total",
			Help:      "Accepted status transitions by source and target status",
		},
		[]string{"from", "to"},
	)

	// HistoryRecords counts appended history entries by action.
	HistoryRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "records_total",
			Help:      "History entries appended by action",
		},
		[]string{"action"},
	)

	// ReportsGenerated counts report generations by grouping and outcome.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "Report generations by grouping and outcome",
		},
		[]string{"group_by", "outcome"},
	)

	// ReportDuration observes report generation latency.
	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "duration_seconds",
			Help:      "Report generation duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
	)

	// HTTPRequests counts ops listener requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Ops HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes ops listener latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Ops HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Outcome maps an operation error to an outcome label. Domain refusals
// (validation, lifecycle, locks, filters) count as rejected.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDefectLocked),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrReference):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
