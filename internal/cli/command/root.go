package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashtag-go/internal/cli/config"
	"github.com/yndnr/hashtag-go/internal/cli/output"
	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/core/service"
	"github.com/yndnr/hashtag-go/internal/infra/buildinfo"
	"github.com/yndnr/hashtag-go/internal/telemetry/logger"
	"github.com/yndnr/hashtag-go/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// errUsage marks invalid command-line usage.
var errUsage = errors.New("usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "hashtag-cli",
		Usage:   "Find hashtags and their byte offsets in text",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ScanCommand(),
			CountCommand(),
			BenchCommand(),
			ShellCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
		After:  teardown,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default ~/.hashtag/cli.yaml)",
			EnvVars: []string{"HASHTAG_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: "text",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Shorthand for --log-level debug",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to this file after the command",
		},
	}
}

// GlobalFlags holds the global flags of one invocation.
type GlobalFlags struct {
	Config          string
	Output          string
	Wide            bool
	LogLevel        string
	LogFormat       string
	Verbose         bool
	MetricsTextfile string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:          c.String("config"),
		Output:          c.String("output"),
		Wide:            c.Bool("wide"),
		LogLevel:        c.String("log-level"),
		LogFormat:       c.String("log-format"),
		Verbose:         c.Bool("verbose"),
		MetricsTextfile: c.String("metrics-textfile"),
	}
}

// flagOverrides returns the configuration keys set explicitly on the
// command line. Flag defaults are left out so that the file and the
// environment can still supply those values.
func flagOverrides(c *cli.Context) map[string]any {
	flags := ParseGlobalFlags(c)
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output"] = flags.Output
	}
	if c.IsSet("wide") {
		overrides["wide"] = flags.Wide
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = flags.LogFormat
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = flags.LogLevel
	} else if flags.Verbose {
		overrides["log.level"] = "debug"
	}
	if c.IsSet("metrics-textfile") {
		overrides["metrics.textfile"] = flags.MetricsTextfile
	}
	return overrides
}

// Runtime is what every command of one invocation shares.
type Runtime struct {
	RunID   string
	Config  *config.CLIConfig
	Logger  logger.Logger
	Metrics *metric.Registry
	Service *service.ScanService
}

// NewRuntime wires the logger, metrics and scan service for cfg.
// Logs go to errw.
func NewRuntime(cfg *config.CLIConfig, errw io.Writer) (*Runtime, error) {
	runID := logger.NewRunID()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = errw
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	metrics := metric.NewRegistry()
	return &Runtime{
		RunID:   runID,
		Config:  cfg,
		Logger:  log,
		Metrics: metrics,
		Service: service.NewScanService(&service.ScanServiceConfig{
			MaxLineBytes: cfg.Scan.MaxLineBytes,
			Metrics:      metrics,
		}),
	}, nil
}

// Context attaches the runtime's logger and run ID to parent.
func (rt *Runtime) Context(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx := logger.WithLogger(parent, rt.Logger)
	return logger.WithRunID(ctx, rt.RunID)
}

// Formatter returns the formatter selected by the configuration.
func (rt *Runtime) Formatter() output.Formatter {
	return output.NewFormatter(output.Format(rt.Config.Output), rt.Config.Wide)
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return err
	}

	rt, err := NewRuntime(cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = rt

	logger.L(rt.Context(c.Context)).Debug("configuration loaded",
		"output", cfg.Output,
		"log_level", logger.GetLevel(),
		"max_line_bytes", cfg.Scan.MaxLineBytes,
	)
	return nil
}

func teardown(c *cli.Context) error {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok || rt.Config.Metrics.Textfile == "" {
		return nil
	}
	if err := rt.Metrics.WriteTextfile(rt.Config.Metrics.Textfile); err != nil {
		return err
	}
	logger.L(rt.Context(c.Context)).Debug("metrics written", "path", rt.Config.Metrics.Textfile)
	return nil
}

// GetRuntime retrieves the runtime stored by the Before hook.
func GetRuntime(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}
	return nil, fmt.Errorf("command runtime not initialized")
}

// printResult writes data to the app's writer in the configured format.
func printResult(c *cli.Context, rt *Runtime, data any) error {
	return rt.Formatter().Format(c.App.Writer, data)
}

// PrintError writes err to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for bad
// configuration or usage, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		return 2
	}
	switch domain.GetErrorCode(err) {
	case domain.ErrInvalidConfig.Code, domain.ErrInvalidFormat.Code:
		return 2
	}
	return 1
}

// isTerminal reports whether w is a character device such as a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
