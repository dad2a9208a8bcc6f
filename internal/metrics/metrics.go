package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"route", "method", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"route", "method"},
	)
	SubmissionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_public_submissions_total",
			Help: "Total number of accepted public form submissions.",
		},
		[]string{"kind"},
	)
)

func Register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SubmissionsCounter)
}
