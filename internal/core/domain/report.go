package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/yndnr/hashtag-go/pkg/hashtag"
)

// LineMatch is a hashtag found on one line of an input.
// Start and End are byte offsets relative to the line.
type LineMatch struct {
	File  string `json:"file,omitempty" yaml:"file,omitempty" table:"wide"`
	Line  int    `json:"line" yaml:"line"`
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// NewLineMatch places m on the given line of file.
func NewLineMatch(file string, line int, m hashtag.Match) LineMatch {
	return LineMatch{
		File:  file,
		Line:  line,
		Text:  m.Text,
		Start: m.Start,
		End:   m.End,
	}
}

// ScanSummary totals a line-oriented scan.
type ScanSummary struct {
	Lines    int `json:"lines" yaml:"lines"`
	Hashtags int `json:"hashtags" yaml:"hashtags"`
	// Rejected counts '#' characters that did not open a hashtag.
	Rejected int `json:"rejected" yaml:"rejected"`
}

// Add accumulates other into s.
func (s *ScanSummary) Add(other ScanSummary) {
	s.Lines += other.Lines
	s.Hashtags += other.Hashtags
	s.Rejected += other.Rejected
}

// CountReport is the result of counting the hashtags of a file.
type CountReport struct {
	File          string        `json:"file" yaml:"file"`
	Lines         int           `json:"lines" yaml:"lines"`
	Hashtags      int           `json:"hashtags" yaml:"hashtags"`
	ReadDuration  time.Duration `json:"read_duration" yaml:"read_duration"`
	ParseDuration time.Duration `json:"parse_duration" yaml:"parse_duration"`
}

// BenchOptions configures a benchmark run.
type BenchOptions struct {
	// Sample is the text scanned on every iteration.
	Sample string
	// Iterations is the number of times the sample is scanned on its own.
	Iterations int
	// Copies is the number of sample copies joined into the large input.
	Copies int
	// Rounds is the number of times the large input is scanned.
	Rounds int
}

// MaxBenchInputBytes caps the size of the joined large benchmark input.
const MaxBenchInputBytes = 1 << 30

// Validate checks that all counts are positive and that the large input
// stays within MaxBenchInputBytes.
func (o BenchOptions) Validate() error {
	if o.Iterations <= 0 || o.Copies <= 0 || o.Rounds <= 0 {
		return ErrInvalidConfig.WithDetails("iterations, copies and rounds must be positive")
	}
	if o.Iterations > math.MaxInt-o.Rounds {
		return ErrInvalidConfig.WithDetails("iterations plus rounds overflows")
	}
	if o.Copies > MaxBenchInputBytes/(len(o.Sample)+1) {
		return ErrInvalidConfig.WithDetails(fmt.Sprintf(
			"%d copies of a %d byte sample exceed %d bytes", o.Copies, len(o.Sample)+1, MaxBenchInputBytes))
	}
	return nil
}

// BenchReport is the result of a benchmark run.
type BenchReport struct {
	Sample          string        `json:"sample" yaml:"sample"`
	SampleHashtags  int           `json:"sample_hashtags" yaml:"sample_hashtags"`
	Iterations      int           `json:"iterations" yaml:"iterations"`
	SmallAverage    time.Duration `json:"small_average" yaml:"small_average"`
	Copies          int           `json:"copies" yaml:"copies"`
	Rounds          int           `json:"rounds" yaml:"rounds"`
	LargeInputBytes int           `json:"large_input_bytes" yaml:"large_input_bytes"`
	LargeAverage    time.Duration `json:"large_average" yaml:"large_average"`
}
