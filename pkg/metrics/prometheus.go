package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	MeetingConversions prometheus.Counter
	SlotSuggestions    prometheus.Counter
	ActiveSessions     prometheus.Gauge
	ClockStreams       prometheus.Gauge
	Exports            *prometheus.CounterVec
	RelayRequests      *prometheus.CounterVec
	RelayDuration      prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MeetingConversions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meeting_conversions_total",
			Help:      "The total number of meeting conversions across locations",
		}),
		SlotSuggestions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_suggestions_total",
			Help:      "The total number of meeting slot suggestion runs",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of comparison sessions currently held in memory",
		}),
		ClockStreams: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clock_streams",
			Help:      "Number of open world clock streams",
		}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "The total number of meeting exports by format",
		}, []string{"format"}),
		RelayRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "background_removal_requests_total",
			Help:      "Background removal relay requests by outcome",
		}, []string{"outcome"}),
		RelayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "background_removal_duration_seconds",
			Help:      "Time spent waiting on the background removal upstream",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
