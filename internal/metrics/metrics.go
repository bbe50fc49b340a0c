package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// OutcomeApproved is recorded when the provider accepted the request.
	OutcomeApproved = "approved"
	// OutcomeDeclined is recorded when the provider answered with a business failure.
	OutcomeDeclined = "declined"
	// OutcomeError is recorded for transport failures and non-2xx replies.
	OutcomeError = "error"
)

var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardprofiles",
		Name:      "gateway_requests_total",
		Help:      "Gateway calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardprofiles",
		Name:      "gateway_request_duration_seconds",
		Help:      "Latency of gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Outcome classifies a gateway call.
func Outcome(success bool, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case success:
		return OutcomeApproved
	default:
		return OutcomeDeclined
	}
}

// ObserveGatewayCall records one gateway round trip that started at start.
func ObserveGatewayCall(operation string, start time.Time, success bool, err error) {
	gatewayRequests.WithLabelValues(operation, Outcome(success, err)).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
