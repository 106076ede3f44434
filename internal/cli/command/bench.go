package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashtag-go/internal/cli/output"
)

// BenchCommand returns the bench command.
func BenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Time the scanner on a small sample and on many joined copies of it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sample",
				Usage: "Text to scan (default from bench.sample)",
			},
			&cli.IntFlag{
				Name:  "iterations",
				Usage: "Scans of the sample on its own (default from bench.iterations)",
			},
			&cli.IntFlag{
				Name:  "copies",
				Usage: "Copies of the sample in the large input (default from bench.copies)",
			},
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "Scans of the large input (default from bench.rounds)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Hide the progress bar",
			},
		},
		Action: benchAction,
	}
}

func benchAction(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	opts := rt.Config.BenchOptions()
	if c.IsSet("sample") {
		opts.Sample = c.String("sample")
	}
	if c.IsSet("iterations") {
		opts.Iterations = c.Int("iterations")
	}
	if c.IsSet("copies") {
		opts.Copies = c.Int("copies")
	}
	if c.IsSet("rounds") {
		opts.Rounds = c.Int("rounds")
	}

	var progress func(done, total int)
	var bar *output.ProgressBar
	if !c.Bool("quiet") {
		bar = output.NewProgressBar(c.App.ErrWriter, "bench")
		progress = bar.Update
	}

	report, err := rt.Service.Bench(rt.Context(c.Context), opts, progress)
	if err != nil {
		if bar != nil {
			c.App.ErrWriter.Write([]byte("\n"))
		}
		return err
	}
	if bar != nil {
		bar.Finish()
	}
	return printResult(c, rt, report)
}
