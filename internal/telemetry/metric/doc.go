// Package metric provides Prometheus metrics for the hashtag tools.
//
// This package implements metrics collection and export:
//
//   - prometheus.go: Registry of scan counters and the duration histogram
//   - collector.go: Build information collector
//
// Metrics include:
//
//   - Lines scanned and hashtags found
//   - '#' candidates that did not become hashtags
//   - Scan latency histogram, labelled by operation
//
// The CLI is a batch tool, so metrics are written to a file in the
// node_exporter textfile collector format instead of being served.
package metric
