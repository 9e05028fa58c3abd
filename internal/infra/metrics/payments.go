package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		OrderCreateRequests,
		OrderCreateDuration,
		PaymentVerifyRequests,
		PaymentVerifyDuration,
	)
}

var (
	// Count of order-creation calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): bad_json|missing_amount|not_configured|gateway_error|upstream_error|unknown
	OrderCreateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_create_requests_total",
			Help: "Count of /api/v1/orders calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	// Latency of the order-creation handler grouped by result.
	OrderCreateDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_create_duration_seconds",
			Help:    "Duration of /api/v1/orders handler in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)

	// Count of verify calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): bad_json|missing_token|invalid_token|missing_fields|bad_signature|not_configured|persist_error|unknown
	PaymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of /api/v1/verify calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	// Latency of the verify handler grouped by result.
	PaymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_verify_duration_seconds",
			Help:    "Duration of /api/v1/verify handler in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)
)
