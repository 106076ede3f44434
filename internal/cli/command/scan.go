package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashtag-go/internal/core/domain"
	"github.com/yndnr/hashtag-go/internal/infra/filewatch"
	"github.com/yndnr/hashtag-go/internal/infra/shutdown"
	"github.com/yndnr/hashtag-go/internal/telemetry/logger"
)

// ScanCommand returns the scan command.
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Print the hashtags of text arguments, files or stdin",
		ArgsUsage: "[TEXT...]",
		Description: `Each TEXT argument is scanned as line 1, 2, ... in order.
Without arguments the files given by --file are scanned, and without
those, standard input. Offsets are bytes relative to the line.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "File to scan; repeat one form for several files (-f a -f b or --file a --file b)",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Rescan --file inputs whenever they change, until interrupted",
			},
			&cli.DurationFlag{
				Name:  "watch-interval",
				Value: 200 * time.Millisecond,
				Usage: "Minimum time between two rescans of one file",
			},
		},
		Action: scanAction,
	}
}

func scanAction(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}
	ctx := rt.Context(c.Context)
	files := c.StringSlice("file")

	if c.Bool("watch") && len(files) == 0 {
		return usageError("--watch requires --file")
	}

	switch {
	case c.Args().Present():
		if len(files) > 0 {
			return usageError("give either TEXT arguments or --file, not both")
		}
		var rows []domain.LineMatch
		for i, text := range c.Args().Slice() {
			for _, m := range rt.Service.ScanText(ctx, text) {
				rows = append(rows, domain.NewLineMatch("", i+1, m))
			}
		}
		return printResult(c, rt, nonNil(rows))

	case len(files) > 0:
		rows, err := scanFiles(ctx, rt, files)
		if err != nil {
			return err
		}
		if err := printResult(c, rt, nonNil(rows)); err != nil {
			return err
		}
		if c.Bool("watch") {
			return watchFiles(c, rt, files)
		}
		return nil

	default:
		var rows []domain.LineMatch
		_, err := rt.Service.ScanReader(ctx, c.App.Reader, func(m domain.LineMatch) bool {
			rows = append(rows, m)
			return true
		})
		if err != nil {
			return err
		}
		return printResult(c, rt, nonNil(rows))
	}
}

func scanFiles(ctx context.Context, rt *Runtime, files []string) ([]domain.LineMatch, error) {
	var rows []domain.LineMatch
	for _, path := range files {
		_, err := rt.Service.ScanFile(ctx, path, func(m domain.LineMatch) bool {
			rows = append(rows, m)
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// watchFiles rescans a file each time it is written and prints its
// hashtags, until SIGINT, SIGTERM or the end of the command context.
func watchFiles(c *cli.Context, rt *Runtime, files []string) error {
	ctx := rt.Context(c.Context)
	log := logger.L(ctx)

	w, err := filewatch.New(
		filewatch.WithLogger(rt.Logger.Slog()),
		filewatch.WithMinInterval(c.Duration("watch-interval")),
	)
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	for _, path := range files {
		if err := w.Watch(path); err != nil {
			w.Stop()
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	w.OnChange(func(path string) {
		rows, err := scanFiles(ctx, rt, []string{path})
		if err != nil {
			log.Warn("rescan failed", "file", path, "code", domain.GetErrorCode(err), "error", err)
			return
		}
		if err := printResult(c, rt, nonNil(rows)); err != nil {
			log.Warn("print failed", "file", path, "error", err)
		}
	})
	w.StartAsync()
	log.Info("watching files", "count", len(files))

	h := shutdown.NewHandler(5 * time.Second)
	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})
	return h.WaitContext(ctx)
}

// nonNil keeps JSON output an empty array rather than null.
func nonNil(rows []domain.LineMatch) []domain.LineMatch {
	if rows == nil {
		return []domain.LineMatch{}
	}
	return rows
}
