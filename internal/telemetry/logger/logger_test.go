package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"default config", DefaultConfig()},
		{"json format", Config{Level: "debug", Format: "json"}},
		{"console format", Config{Level: "info", Format: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if l == nil {
				t.Fatal("New() returned nil logger")
			}
			if l.Slog() == nil {
				t.Error("Slog() returned nil")
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		level   string
		logFunc func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.logFunc("scan finished", "component", "scanner")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("Failed to parse JSON log: %v", err)
			}
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != "scan finished" {
				t.Errorf("msg = %v", entry["msg"])
			}
			if entry["component"] != "scanner" {
				t.Errorf("component = %v", entry["component"])
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.With("file", "tags.txt").Info("counting")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["file"] != "tags.txt" {
		t.Errorf("file = %v, want tags.txt", entry["file"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is warn")
	}

	l.Warn("warn message")
	if buf.Len() == 0 {
		t.Error("Warn message should be logged")
	}
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "debug"},
		{"DEBUG", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"invalid", "info"},
		{"", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, err := New(Config{Level: tt.input, Output: io.Discard}); err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := GetLevel(); got != tt.expected {
				t.Errorf("New(Level: %q); GetLevel() = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "warning", "error"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false", lvl)
		}
	}
	for _, lvl := range []string{"", "trace", "fatal"} {
		if ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = true", lvl)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	l := Default()
	if l == nil {
		t.Fatal("Default() returned nil")
	}
	l.Info("test message")
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	SetDefault(l)

	Default().Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger did not write to new output: %q", buf.String())
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.WithContext(context.Background()).Info("test message")
	if buf.Len() == 0 {
		t.Error("Expected log output")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	l.With("k", "v").Info("dropped")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "warn" {
		t.Errorf("DefaultConfig().Level = %q, want %q", cfg.Level, "warn")
	}
	if cfg.Format != "text" {
		t.Errorf("DefaultConfig().Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig().Output should not be nil")
	}
	if cfg.MaxTextLen != DefaultMaxTextLen {
		t.Errorf("DefaultConfig().MaxTextLen = %d, want %d", cfg.MaxTextLen, DefaultMaxTextLen)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("test message", "component", "scanner")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Text output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "component=scanner") {
		t.Errorf("Text output should contain component=scanner, got: %s", output)
	}
}
