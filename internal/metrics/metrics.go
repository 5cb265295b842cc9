package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RefreshMetrics holds the Prometheus instruments for the refresh pipeline.
type RefreshMetrics struct {
	// Refresh attempts by outcome (success, source_unavailable, rejected, error)
	RefreshesTotal *prometheus.CounterVec

	// End-to-end refresh duration for successful refreshes
	RefreshDuration prometheus.Histogram

	// Number of countries in the cached dataset after the last refresh
	CountriesCached prometheus.Gauge
}

// NewRefreshMetrics registers the refresh metrics against the given
// registerer. Tests pass a fresh registry to avoid duplicate registration.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	factory := promauto.With(reg)

	return &RefreshMetrics{
		RefreshesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "country_refreshes_total",
				Help: "Total refresh attempts by outcome",
			},
			[]string{"outcome"},
		),

		RefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "country_refresh_duration_seconds",
				Help:    "Duration of successful refreshes in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),

		CountriesCached: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "country_records_cached",
				Help: "Number of countries in the cached dataset",
			},
		),
	}
}

// RecordSuccess records a completed refresh.
func (m *RefreshMetrics) RecordSuccess(countries int, durationSeconds float64) {
	m.RefreshesTotal.WithLabelValues("success").Inc()
	m.RefreshDuration.Observe(durationSeconds)
	m.CountriesCached.Set(float64(countries))
}

// RecordFailure records a refresh that failed with the given outcome label.
func (m *RefreshMetrics) RecordFailure(outcome string) {
	m.RefreshesTotal.WithLabelValues(outcome).Inc()
}
