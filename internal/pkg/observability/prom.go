package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "tasklog"
)

var (
	ActivityEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "activity", "events_total"),
		Help: "Ledger events by kind",
	}, []string{"event"})
	ActivityMinutes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "activity", "duration_minutes"),
		Help:    "Duration of recorded activities in minutes",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"source"})
	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "task", "created_total"),
		Help: "Number of tasks created",
	})
)
