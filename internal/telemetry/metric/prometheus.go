// Package metric provides Prometheus metrics for the hashtag tools.
package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes every metric name.
const Namespace = "hashtag"

// Operation label values for ScanDuration.
const (
	OpText  = "text"
	OpLine  = "line"
	OpFile  = "file"
	OpBench = "bench"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	LinesScanned       prometheus.Counter
	MatchesFound       prometheus.Counter
	CandidatesRejected prometheus.Counter
	ScanDuration       *prometheus.HistogramVec
}

// NewRegistry creates a registry with the scan metrics, the build info
// collector and the Go runtime collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lines_scanned_total",
			Help:      "Number of input lines scanned.",
		}),
		MatchesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matches_total",
			Help:      "Number of hashtags found.",
		}),
		CandidatesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "candidates_rejected_total",
			Help:      "Number of '#' characters that did not start a hashtag.",
		}),
		ScanDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time spent scanning, by operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"op"}),
	}

	r.reg.MustRegister(
		r.LinesScanned,
		r.MatchesFound,
		r.CandidatesRejected,
		r.ScanDuration,
		NewCollector(),
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveScan records one scan of the given operation.
func (r *Registry) ObserveScan(op string, lines, matches, rejected int, seconds float64) {
	if r == nil {
		return
	}
	r.LinesScanned.Add(float64(lines))
	r.MatchesFound.Add(float64(matches))
	r.CandidatesRejected.Add(float64(rejected))
	r.ScanDuration.WithLabelValues(op).Observe(seconds)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path in the textfile collector format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
