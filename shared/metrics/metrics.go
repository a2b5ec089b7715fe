package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shareit"

// Booking operation outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeRejected   = "rejected"
	OutcomeNotAllowed = "not_allowed"
	OutcomeError      = "error"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	bookingOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_operations_total",
			Help:      "Booking operations by name and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingOperations)
	})
}

// IncHTTP increments the request counter.
func IncHTTP(method, route string, code int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// IncBooking increments the booking operation counter.
func IncBooking(operation, outcome string) {
	bookingOperations.WithLabelValues(operation, outcome).Inc()
}
