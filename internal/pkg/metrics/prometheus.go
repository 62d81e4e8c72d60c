package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)
	flowTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_flow_transitions_total",
			Help: "Purchase flow state transitions.",
		},
		[]string{"from", "to"},
	)
	flowErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_flow_errors_total",
			Help: "Purchase flow step failures by error kind.",
		},
		[]string{"step", "kind"},
	)
	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Latency of payment gateway calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
	paymentEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_events_total",
			Help: "Payment gateway events received, by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		flowTransitionsTotal,
		flowErrorsTotal,
		gatewayRequestDuration,
		paymentEventsTotal,
	)
}

func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordFlowTransition(from, to string) {
	flowTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordFlowError(step, kind string) {
	flowErrorsTotal.WithLabelValues(step, kind).Inc()
}

func ObserveGatewayCall(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	gatewayRequestDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

func RecordPaymentEvent(kind string) {
	paymentEventsTotal.WithLabelValues(kind).Inc()
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
