// Package metric provides Prometheus metrics for the hashtag tools.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/hashtag-go/internal/infra/buildinfo"
)

// Collector reports build information as a constant gauge.
type Collector struct {
	info buildinfo.Info
	desc *prometheus.Desc
}

// NewCollector creates a build info collector for the running binary.
func NewCollector() *Collector {
	return &Collector{
		info: buildinfo.Get(),
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "build_info"),
			"Build information of the hashtag tools; always 1.",
			[]string{"version", "commit", "go_version"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1,
		c.info.Version, c.info.Commit, c.info.GoVersion)
}
