package config

import (
	"fmt"
	"slices"

	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/telemetry/logger"
)

// Output formats accepted by the output section.
var outputFormats = []string{"table", "json", "yaml"}

// CLIConfig is the configuration for hashtag-cli.
type CLIConfig struct {
	Output  string        `koanf:"output" yaml:"output" json:"output"`
	Wide    bool          `koanf:"wide" yaml:"wide" json:"wide"`
	Log     LogConfig     `koanf:"log" yaml:"log" json:"log"`
	Scan    ScanConfig    `koanf:"scan" yaml:"scan" json:"scan"`
	Bench   BenchConfig   `koanf:"bench" yaml:"bench" json:"bench"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics" json:"metrics"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// ScanConfig limits line-oriented scanning.
type ScanConfig struct {
	// MaxLineBytes is the longest line accepted from a file or stdin.
	MaxLineBytes int `koanf:"max_line_bytes" yaml:"max_line_bytes" json:"max_line_bytes"`
}

// BenchConfig holds the defaults for the bench command.
type BenchConfig struct {
	Sample     string `koanf:"sample" yaml:"sample" json:"sample"`
	Iterations int    `koanf:"iterations" yaml:"iterations" json:"iterations"`
	Copies     int    `koanf:"copies" yaml:"copies" json:"copies"`
	Rounds     int    `koanf:"rounds" yaml:"rounds" json:"rounds"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after each command when non-empty.
	Textfile string `koanf:"textfile" yaml:"textfile" json:"textfile"`
}

// Default returns the built-in configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output: "table",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Scan: ScanConfig{
			MaxLineBytes: 1 << 20,
		},
		Bench: BenchConfig{
			Sample:     "#rust is #awesome",
			Iterations: 1_000_000,
			Copies:     1_000_000,
			Rounds:     10,
		},
	}
}

// BenchOptions converts the bench section into service options.
func (c *CLIConfig) BenchOptions() domain.BenchOptions {
	return domain.BenchOptions{
		Sample:     c.Bench.Sample,
		Iterations: c.Bench.Iterations,
		Copies:     c.Bench.Copies,
		Rounds:     c.Bench.Rounds,
	}
}

// Verify checks that every value is usable.
func (c *CLIConfig) Verify() error {
	if !slices.Contains(outputFormats, c.Output) {
		return domain.ErrInvalidFormat.WithDetails(
			fmt.Sprintf("output %q, want one of %v", c.Output, outputFormats))
	}
	if !logger.ValidLevel(c.Log.Level) {
		return domain.ErrInvalidConfig.WithDetails(
			fmt.Sprintf("log.level %q, want debug, info, warn or error", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return domain.ErrInvalidFormat.WithDetails(
			fmt.Sprintf("log.format %q, want text or json", c.Log.Format))
	}
	if c.Scan.MaxLineBytes <= 0 {
		return domain.ErrInvalidConfig.WithDetails("scan.max_line_bytes must be positive")
	}
	if err := c.BenchOptions().Validate(); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}
