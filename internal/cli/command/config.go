package command

import (
	"fmt"

	"github.com/knadh/koanf/maps"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/yndnr/hashtag-go/internal/cli/config"
	"github.com/yndnr/hashtag-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect the CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the default configuration file path",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}
	if output.Format(rt.Config.Output) != output.FormatTable {
		return printResult(c, rt, rt.Config)
	}

	flat, err := flattenConfig(rt.Config)
	if err != nil {
		return err
	}
	return printResult(c, rt, flat)
}

func configPath(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, config.DefaultConfigPath())
	return err
}

// flattenConfig turns cfg into dotted keys such as log.level.
func flattenConfig(cfg *config.CLIConfig) (map[string]any, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var nested map[string]any
	if err := yaml.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	flat, _ := maps.Flatten(nested, nil, ".")
	return flat, nil
}
