package benchmark

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

// Sample is the text the bench command uses by default.
const Sample = "#rust is #awesome"

// CopyCounts are the sizes of the joined inputs, in copies of Sample.
var CopyCounts = []int{1_000, 10_000, 100_000, 1_000_000}

// SmallCopyCounts for quick benchmarks.
var SmallCopyCounts = []int{1_000, 10_000}

// samples cover ASCII, non-Latin scripts and inputs full of rejected '#'.
var samples = map[string]string{
	"ascii":    Sample,
	"unicode":  "#日本語 и #русский مع #العربية",
	"rejected": "## #1 #2 foo#bar #123 ##x",
	"long_tag": "#" + strings.Repeat("a", 256),
}

// joined repeats sample copies times, each copy followed by a space.
func joined(sample string, copies int) string {
	return strings.Repeat(sample+" ", copies)
}

// joinedLines repeats sample copies times, one copy per line.
func joinedLines(sample string, copies int) string {
	return strings.Repeat(sample+"\n", copies)
}

// reportMemory reports heap usage after a forced GC.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
}

// runWithCopyCounts runs benchFn as one sub-benchmark per copy count.
func runWithCopyCounts(b *testing.B, counts []int, benchFn func(b *testing.B, copies int)) {
	for _, copies := range counts {
		b.Run(fmt.Sprintf("copies_%d", copies), func(b *testing.B) {
			benchFn(b, copies)
		})
	}
}
