package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/telemetry/logger"
	"github.com/yndnr/hashtag-go/internal/telemetry/metric"
	"github.com/yndnr/hashtag-go/pkg/hashtag"
)

// DefaultMaxLineBytes is the line limit used when none is configured.
const DefaultMaxLineBytes = 1 << 20

// ScanServiceConfig holds configuration for ScanService.
type ScanServiceConfig struct {
	// MaxLineBytes is the longest line ScanReader and ScanFile accept.
	MaxLineBytes int

	// Metrics receives scan counters. Nil disables metrics.
	Metrics *metric.Registry
}

// DefaultScanServiceConfig returns the default configuration.
func DefaultScanServiceConfig() *ScanServiceConfig {
	return &ScanServiceConfig{
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// ScanService finds hashtags in strings, streams and files.
type ScanService struct {
	maxLineBytes int
	metrics      *metric.Registry
}

// NewScanService creates a ScanService. A nil config uses the defaults.
func NewScanService(config *ScanServiceConfig) *ScanService {
	if config == nil {
		config = DefaultScanServiceConfig()
	}
	maxLine := config.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	return &ScanService{
		maxLineBytes: maxLine,
		metrics:      config.Metrics,
	}
}

// ScanText returns the hashtags of text in order.
func (s *ScanService) ScanText(ctx context.Context, text string) []hashtag.Match {
	start := time.Now()
	matches := hashtag.Parse(text)
	elapsed := time.Since(start)

	rejected := rejectedCandidates(text, len(matches))
	s.metrics.ObserveScan(metric.OpText, 1, len(matches), rejected, elapsed.Seconds())
	logger.L(ctx).Debug("scanned text",
		"text", text,
		"hashtags", len(matches),
		"rejected", rejected,
		"duration", elapsed,
	)
	return matches
}

// ScanReader scans r line by line and calls fn for every hashtag found.
// Line numbers start at 1 and offsets are relative to the line, with the
// line terminator removed. Scanning stops without error when fn returns
// false, and with ctx.Err() when ctx is done.
func (s *ScanService) ScanReader(ctx context.Context, r io.Reader, fn func(domain.LineMatch) bool) (domain.ScanSummary, error) {
	return s.scanLines(ctx, "", r, fn)
}

// ScanFile is ScanReader over the file at path. Matches carry the path.
func (s *ScanService) ScanFile(ctx context.Context, path string, fn func(domain.LineMatch) bool) (domain.ScanSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.ScanSummary{}, inputError(path, err)
	}
	defer f.Close()

	return s.scanLines(ctx, path, f, fn)
}

func (s *ScanService) scanLines(ctx context.Context, file string, r io.Reader, fn func(domain.LineMatch) bool) (domain.ScanSummary, error) {
	var summary domain.ScanSummary
	start := time.Now()
	defer func() {
		s.metrics.ObserveScan(metric.OpLine, summary.Lines, summary.Hashtags, summary.Rejected, time.Since(start).Seconds())
	}()

	// The buffer also holds the line terminator.
	limit := s.maxLineBytes + 1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, limit)), limit)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		line := sc.Text()
		summary.Lines++

		found := 0
		for m := range hashtag.All(line) {
			found++
			if !fn(domain.NewLineMatch(file, summary.Lines, m)) {
				summary.Hashtags += found
				summary.Rejected += rejectedCandidates(line[:m.End], found)
				return summary, nil
			}
		}
		summary.Hashtags += found
		summary.Rejected += rejectedCandidates(line, found)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return summary, domain.ErrLineTooLong.WithDetails(
				fmt.Sprintf("line %d exceeds %d bytes", summary.Lines+1, s.maxLineBytes))
		}
		return summary, domain.ErrInputUnreadable.WithDetails(file).WithCause(err)
	}

	logger.L(ctx).Debug("scanned input",
		"file", file,
		"lines", summary.Lines,
		"hashtags", summary.Hashtags,
		"rejected", summary.Rejected,
	)
	return summary, nil
}

// CountFile reads the whole file at path and counts the hashtags on each of
// its lines, timing the read and the scan separately.
func (s *ScanService) CountFile(ctx context.Context, path string) (*domain.CountReport, error) {
	readStart := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inputError(path, err)
	}
	readDuration := time.Since(readStart)

	report := &domain.CountReport{
		File:         path,
		ReadDuration: readDuration,
	}

	rejected := 0
	parseStart := time.Now()
	for line := range strings.Lines(string(data)) {
		if report.Lines%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line = strings.TrimRight(line, "\r\n")
		n := len(hashtag.Parse(line))
		report.Lines++
		report.Hashtags += n
		rejected += rejectedCandidates(line, n)
	}
	report.ParseDuration = time.Since(parseStart)

	s.metrics.ObserveScan(metric.OpFile, report.Lines, report.Hashtags, rejected, report.ParseDuration.Seconds())
	logger.L(ctx).Info("counted hashtags",
		"file", path,
		"bytes", len(data),
		"lines", report.Lines,
		"hashtags", report.Hashtags,
		"read", readDuration,
		"parse", report.ParseDuration,
	)
	return report, nil
}

// rejectedCandidates is the number of '#' in s that did not open one of the
// found hashtags.
func rejectedCandidates(s string, found int) int {
	return strings.Count(s, "#") - found
}

func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrInputNotFound.WithDetails(path).WithCause(err)
	}
	return domain.ErrInputUnreadable.WithDetails(path).WithCause(err)
}
