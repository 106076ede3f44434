package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashtag-go/internal/cli/repl"
	"github.com/yndnr/hashtag-go/internal/core/domain"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Scan lines typed interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history-file",
				Usage: "History file (default ~/.hashtag/history)",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not read or write a history file",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}
	ctx := rt.Context(c.Context)

	var history *repl.History
	if !c.Bool("no-history") {
		path := c.String("history-file")
		if path == "" {
			path = repl.DefaultHistoryFile()
		}
		history = repl.NewHistory(path)
	}

	eval := func(line string) error {
		rows := []domain.LineMatch{}
		for _, m := range rt.Service.ScanText(ctx, line) {
			rows = append(rows, domain.NewLineMatch("", 1, m))
		}
		return printResult(c, rt, rows)
	}

	return repl.New(c.App.Reader, c.App.Writer, eval, repl.WithHistory(history)).Run()
}
