package command

import (
	"strings"
	"testing"

	"github.com/yndnr/hashtag-go/internal/cli/config"
)

func TestConfigShow_Table(t *testing.T) {
	res := runApp(t, "", "--log-level", "info", "config", "show")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	for _, want := range []string{"log.level", "info", "scan.max_line_bytes", "1048576", "bench.sample"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigShow_YAML(t *testing.T) {
	res := runApp(t, "", "-o", "yaml", "config", "show")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if !strings.Contains(res.stdout, "output: yaml") || !strings.Contains(res.stdout, "max_line_bytes: 1048576") {
		t.Errorf("output:\n%s", res.stdout)
	}
}

func TestConfigPath(t *testing.T) {
	res := runApp(t, "", "config", "path")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if strings.TrimSpace(res.stdout) != config.DefaultConfigPath() {
		t.Errorf("stdout = %q, want %q", res.stdout, config.DefaultConfigPath())
	}
}

func TestFlattenConfig(t *testing.T) {
	flat, err := flattenConfig(config.Default())
	if err != nil {
		t.Fatalf("flattenConfig() error = %v", err)
	}
	if flat["log.format"] != "text" || flat["bench.rounds"] != 10 {
		t.Errorf("flattenConfig() = %v", flat)
	}
}
