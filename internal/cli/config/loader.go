package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/infra/confloader"
)

// DefaultConfigPath returns ~/.hashtag/cli.yaml.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".hashtag", "cli.yaml")
}

// Load builds the effective configuration.
//
// An empty path means DefaultConfigPath, which may be absent. An explicit
// path must exist. overrides holds dotted keys taken from command-line flags
// and wins over every other source.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	opts := []confloader.Option{confloader.WithOverrides(overrides)}

	file := path
	if file == "" {
		file = DefaultConfigPath()
	}
	if _, err := os.Stat(file); err == nil {
		opts = append(opts, confloader.WithConfigFile(file))
	} else if path != "" {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrInputNotFound.WithDetails(path)
		}
		return nil, domain.ErrInputUnreadable.WithDetails(path).WithCause(err)
	}

	cfg := Default()
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, domain.ErrInvalidConfig.WithCause(err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}
	return cfg, nil
}
