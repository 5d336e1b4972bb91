// Package observability holds Prometheus collectors for domain-level events.
// Request-level metrics (latency, status codes) come from the fiberprometheus
// middleware; the collectors here count what the platform actually does.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful account registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainbridge_users_registered_total",
		Help: "Total number of successfully registered users",
	})

	// ProjectEngagement counts engagement actions (view, like, unlike) by kind.
	ProjectEngagement = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainbridge_project_engagement_total",
		Help: "Total number of project engagement actions by kind",
	}, []string{"action"})

	// AnalyticsEventsRecorded counts persisted analytics events by event type.
	AnalyticsEventsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainbridge_analytics_events_total",
		Help: "Total number of recorded analytics events by event type",
	}, []string{"event_type"})

	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainbridge_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// Engagement action label values.
const (
	ActionView   = "view"
	ActionLike   = "like"
	ActionUnlike = "unlike"
)
