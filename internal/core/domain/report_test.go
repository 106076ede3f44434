package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/yndnr/hashtag-go/pkg/hashtag"
)

func TestNewLineMatch(t *testing.T) {
	m := hashtag.Match{Text: "go", Start: 4, End: 7}
	lm := NewLineMatch("posts.txt", 12, m)

	want := LineMatch{File: "posts.txt", Line: 12, Text: "go", Start: 4, End: 7}
	if lm != want {
		t.Errorf("NewLineMatch() = %+v, want %+v", lm, want)
	}
}

func TestScanSummary_Add(t *testing.T) {
	s := ScanSummary{Lines: 2, Hashtags: 3, Rejected: 1}
	s.Add(ScanSummary{Lines: 5, Hashtags: 1, Rejected: 4})

	want := ScanSummary{Lines: 7, Hashtags: 4, Rejected: 5}
	if s != want {
		t.Errorf("Add() = %+v, want %+v", s, want)
	}
}

func TestBenchOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    BenchOptions
		wantErr bool
	}{
		{"valid", BenchOptions{Sample: "#a", Iterations: 1, Copies: 1, Rounds: 1}, false},
		{"at cap", BenchOptions{Sample: "#a", Iterations: 1, Copies: MaxBenchInputBytes / 3, Rounds: 1}, false},
		{"over cap", BenchOptions{Sample: "#a", Iterations: 1, Copies: MaxBenchInputBytes/3 + 1, Rounds: 1}, true},
		{"overflowing copies", BenchOptions{Sample: "#rust is #awesome", Iterations: 1, Copies: 1 << 60, Rounds: 1}, true},
		{"overflowing total", BenchOptions{Sample: "#a", Iterations: math.MaxInt, Copies: 1, Rounds: 1}, true},
		{"zero iterations", BenchOptions{Sample: "#a", Copies: 1, Rounds: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
