package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/telemetry/logger"
	"github.com/yndnr/hashtag-go/internal/telemetry/metric"
	"github.com/yndnr/hashtag-go/pkg/hashtag"
)

// progressSteps is how many times Bench reports progress per run.
const progressSteps = 100

// Bench measures the scanner on opts.Sample.
//
// The small phase scans the sample opts.Iterations times. The large phase
// joins opts.Copies copies of the sample, each followed by a space, and
// scans the result opts.Rounds times. Every scan must find the expected
// number of hashtags or Bench fails with ErrBenchMismatch.
//
// progress, when non-nil, is called with the number of finished scans out
// of Iterations+Rounds, at most progressSteps+1 times.
func (s *ScanService) Bench(ctx context.Context, opts domain.BenchOptions, progress func(done, total int)) (*domain.BenchReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	expected := hashtag.Count(opts.Sample)
	rejected := rejectedCandidates(opts.Sample, expected)
	report := &domain.BenchReport{
		Sample:         opts.Sample,
		SampleHashtags: expected,
		Iterations:     opts.Iterations,
		Copies:         opts.Copies,
		Rounds:         opts.Rounds,
	}

	total := opts.Iterations + opts.Rounds
	step := max(total/progressSteps, 1)
	done := 0
	advance := func() error {
		done++
		if done%step != 0 && done != total {
			return nil
		}
		if progress != nil {
			progress(done, total)
		}
		return ctx.Err()
	}

	log := logger.L(ctx)
	log.Info("benchmark started",
		"sample", opts.Sample,
		"iterations", opts.Iterations,
		"copies", opts.Copies,
		"rounds", opts.Rounds,
	)

	var smallTotal time.Duration
	for i := 0; i < opts.Iterations; i++ {
		start := time.Now()
		n := len(hashtag.Parse(opts.Sample))
		smallTotal += time.Since(start)

		if n != expected {
			return nil, mismatch("small", i, n, expected)
		}
		if err := advance(); err != nil {
			return nil, err
		}
	}
	report.SmallAverage = smallTotal / time.Duration(opts.Iterations)
	s.metrics.ObserveScan(metric.OpBench, opts.Iterations,
		expected*opts.Iterations, rejected*opts.Iterations, smallTotal.Seconds())

	large := strings.Repeat(opts.Sample+" ", opts.Copies)
	report.LargeInputBytes = len(large)
	expectedLarge := expected * opts.Copies

	var largeTotal time.Duration
	for i := 0; i < opts.Rounds; i++ {
		start := time.Now()
		n := len(hashtag.Parse(large))
		elapsed := time.Since(start)
		largeTotal += elapsed

		if n != expectedLarge {
			return nil, mismatch("large", i, n, expectedLarge)
		}
		s.metrics.ObserveScan(metric.OpBench, 1, n, rejected*opts.Copies, elapsed.Seconds())
		if err := advance(); err != nil {
			return nil, err
		}
	}
	report.LargeAverage = largeTotal / time.Duration(opts.Rounds)

	log.Info("benchmark finished",
		"small_average", report.SmallAverage,
		"large_average", report.LargeAverage,
		"large_input_bytes", report.LargeInputBytes,
	)
	return report, nil
}

func mismatch(phase string, run, got, want int) error {
	return domain.ErrBenchMismatch.WithDetails(
		fmt.Sprintf("%s run %d found %d hashtags, want %d", phase, run+1, got, want))
}
