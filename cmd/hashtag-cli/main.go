package main

import (
	"os"

	"github.com/yndnr/hashtag-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError(os.Stderr, err)
		os.Exit(command.ExitCode(err))
	}
}
