// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/cmdhelper"
	"github.com/wuxler/rxkit/pkg/commands"
)

func main() {
	app := commands.NewRootCommand()
	app.ExitErrHandler = func(ctx context.Context, c *cli.Command, err error) {
		cli.HandleExitCoder(err)
		cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
