package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashtag-go/internal/cli/output"
	"github.com/yndnr/hashtag-go/internal/core/domain"
)

// DefaultCountFile is counted when no FILE argument is given.
const DefaultCountFile = "sample_tags.txt"

// CountCommand returns the count command.
func CountCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count the hashtags of a file and time the read and the scan",
		ArgsUsage: "[FILE]",
		Action:    countAction,
	}
}

func countAction(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}
	if c.NArg() > 1 {
		return usageError("count takes at most one FILE")
	}

	path := c.Args().First()
	implicit := path == ""
	if implicit {
		path = DefaultCountFile
	}

	var spin *output.Spinner
	if isTerminal(c.App.ErrWriter) {
		spin = output.NewSpinner(c.App.ErrWriter, "counting "+path)
		spin.Start()
	}

	report, err := rt.Service.CountFile(rt.Context(c.Context), path)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		if implicit && domain.IsDomainError(err, domain.ErrInputNotFound.Code) {
			return fmt.Errorf("%w (no FILE given, so %s was tried)", err, DefaultCountFile)
		}
		return err
	}
	return printResult(c, rt, report)
}
