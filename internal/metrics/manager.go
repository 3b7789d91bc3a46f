package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds every collector the service exports.
type Manager struct {
	// counters
	CounterRequests         *prometheus.CounterVec
	CounterStoreCalls       *prometheus.CounterVec
	CounterDaySaves         *prometheus.CounterVec
	CounterProgressDegraded prometheus.Counter

	// historgrams
	HistRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("weekly_plans", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("weekly_plans", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "route", "status"})
	counterStoreCalls := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_calls",
		Help:      "Plan store calls by operation and outcome",
	}, []string{"op", "outcome"})
	counterDaySaves := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "day_saves",
		Help:      "Saved training days, by create or update",
	}, []string{"kind"})
	counterProgressDegraded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "progress_degraded",
		Help:      "Weekly progress lookups that fell back to zero after a failure",
	})

	histRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	return &Manager{
		CounterRequests:         counterRequests,
		CounterStoreCalls:       counterStoreCalls,
		CounterDaySaves:         counterDaySaves,
		CounterProgressDegraded: counterProgressDegraded,
		HistRequestDuration:     histRequestDuration,
	}
}
