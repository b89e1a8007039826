package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

type OrderMetrics struct {
	Created       *prometheus.CounterVec
	StatusChanged *prometheus.CounterVec
	Cancelled     prometheus.Counter
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordering",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

func NewOrderMetrics() *OrderMetrics {
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	}, []string{"order_type"})
	statusChanged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordering",
		Name:      "order_status_changes_total",
		Help:      "Total number of order status transitions.",
	}, []string{"new_status"})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ordering",
		Name:      "orders_cancelled_total",
		Help:      "Total number of orders cancelled.",
	})

	prometheus.MustRegister(created, statusChanged, cancelled)
	return &OrderMetrics{Created: created, StatusChanged: statusChanged, Cancelled: cancelled}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
