package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// polling daemon.
type Metrics struct {
	FetchRequests   *prometheus.CounterVec // labels: source={primary-rest,ftp-fallback}, outcome={success,error}
	ReportsDecoded  prometheus.Counter
	DecodeErrors    prometheus.Counter
	DecodeAnomalies *prometheus.CounterVec // labels: field
	FallbackUsed    prometheus.Counter

	PollDuration    prometheus.Histogram
	StationsTracked prometheus.Gauge
	HistoryRecords  prometheus.Gauge
}

// NewMetrics creates and registers all daemon metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metard",
			Name:      "fetch_requests_total",
			Help:      "Report fetch attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		ReportsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metard",
			Name:      "reports_decoded_total",
			Help:      "Total reports decoded successfully.",
		}),
		DecodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metard",
			Name:      "decode_errors_total",
			Help:      "Total reports rejected for structural errors.",
		}),
		DecodeAnomalies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metard",
			Name:      "decode_anomalies_total",
			Help:      "Fields dropped during decoding, by field name.",
		}, []string{"field"}),
		FallbackUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metard",
			Name:      "fallback_used_total",
			Help:      "Polls served by the fallback source after a primary failure.",
		}),
		PollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metard",
			Name:      "poll_duration_seconds",
			Help:      "Duration of a complete poll cycle across all stations.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		StationsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "metard",
			Name:      "stations_tracked",
			Help:      "Number of stations being polled.",
		}),
		HistoryRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "metard",
			Name:      "history_records",
			Help:      "Decoded reports currently retained in history.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.ReportsDecoded,
		m.DecodeErrors,
		m.DecodeAnomalies,
		m.FallbackUsed,
		m.PollDuration,
		m.StationsTracked,
		m.HistoryRecords,
	)

	return m
}

// NewMetricsForTesting creates metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metard", Name: "fetch_requests_total"}, []string{"source", "outcome"}),
		ReportsDecoded:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metard", Name: "reports_decoded_total"}),
		DecodeErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metard", Name: "decode_errors_total"}),
		DecodeAnomalies: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metard", Name: "decode_anomalies_total"}, []string{"field"}),
		FallbackUsed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metard", Name: "fallback_used_total"}),
		PollDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "metard", Name: "poll_duration_seconds"}),
		StationsTracked: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "metard", Name: "stations_tracked"}),
		HistoryRecords:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "metard", Name: "history_records"}),
	}
}
