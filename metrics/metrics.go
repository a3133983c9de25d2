package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickaid_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quickaid_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// TicketsSubmitted counts submissions by outcome: created, invalid,
	// storage_error.
	TicketsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickaid_tickets_submitted_total",
			Help: "Ticket submissions by outcome",
		},
		[]string{"result"},
	)

	// Notifications counts delivery attempts per channel (email, telegram)
	// by result: accepted, rejected, failed.
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quickaid_notifications_total",
			Help: "Notification attempts by channel and result",
		},
		[]string{"channel", "result"},
	)
)
