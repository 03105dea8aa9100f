// Package commands defines the commands of the rxkit application.
package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/appinfo"
	"github.com/wuxler/rxkit/pkg/cmdhelper"
	"github.com/wuxler/rxkit/pkg/commands/internal/options"
)

// NewVersionCommand returns a version command printing text by default.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{Output: options.NewOutputOptions()}
}

// VersionCommand prints the build information of the binary.
type VersionCommand struct {
	Output *options.OutputOptions

	// Short prints the version number only, text output only.
	Short bool
}

// ToCLI returns a *cli.Command.
func (c *VersionCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version",
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.ActionFuncChain(cmdhelper.NoArgs(), c.validate)),
		Action: c.Run,
	}
}

// Flags returns a list of cli flags of the commands.
func (c *VersionCommand) Flags() []cli.Flag {
	return append([]cli.Flag{
		&cli.BoolFlag{
			Name:        "short",
			Aliases:     []string{"s"},
			Usage:       "print the version number only",
			Value:       c.Short,
			Destination: &c.Short,
		},
	}, c.Output.Flags()...)
}

// Run implements *cli.Command Action function.
func (c *VersionCommand) Run(_ context.Context, cmd *cli.Command) error {
	v := appinfo.GetVersion()
	if !c.Output.IsText() {
		return cmdhelper.WriteStructured(cmd.Writer, c.Output.Format, v)
	}
	return v.Write(cmd.Writer, cmd.Root().Name, options.FormatText, c.Short)
}

func (c *VersionCommand) validate(_ context.Context, _ *cli.Command) error {
	return c.Output.Validate()
}
