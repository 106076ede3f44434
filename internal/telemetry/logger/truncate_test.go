package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "#go", 10, "#go"},
		{"exact", "#go", 3, "#go"},
		{"cut ascii", "#golang", 3, "#go...(7 bytes)"},
		{"cut on rune boundary", "#кот", 2, "#...(7 bytes)"},
		{"disabled", "#golang", -1, "#golang"},
		{"zero", "#go", 0, "...(3 bytes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateText_OnlyTextKeys(t *testing.T) {
	long := strings.Repeat("x", 50)

	a := truncateText(slog.String("line", long), 10)
	if got := a.Value.String(); got != Truncate(long, 10) {
		t.Errorf("line attr = %q", got)
	}

	a = truncateText(slog.String("file", long), 10)
	if got := a.Value.String(); got != long {
		t.Errorf("file attr should not be truncated, got %q", got)
	}

	a = truncateText(slog.Int("text", 12345), 2)
	if a.Value.Int64() != 12345 {
		t.Errorf("non-string attr changed: %v", a.Value)
	}
}

func TestTruncateText_Group(t *testing.T) {
	long := strings.Repeat("y", 40)
	a := truncateText(slog.Group("scan", slog.String("input", long), slog.Int("n", 1)), 8)

	attrs := a.Value.Group()
	if len(attrs) != 2 {
		t.Fatalf("group has %d attrs, want 2", len(attrs))
	}
	if got := attrs[0].Value.String(); got != Truncate(long, 8) {
		t.Errorf("nested input = %q", got)
	}
}

func TestLogger_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf, MaxTextLen: 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("line scanned", "line", strings.Repeat("#tag ", 100))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	line, _ := entry["line"].(string)
	if !strings.HasSuffix(line, "...(500 bytes)") {
		t.Errorf("line = %q, want truncated", line)
	}
	if !strings.HasPrefix(line, "#tag #tag #tag #") {
		t.Errorf("line = %q, want original prefix", line)
	}
}
