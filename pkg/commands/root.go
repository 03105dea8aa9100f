package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/commands/build"
	"github.com/wuxler/rxkit/pkg/commands/internal/options"
	"github.com/wuxler/rxkit/pkg/commands/match"
	"github.com/wuxler/rxkit/pkg/commands/server"
)

// AppName is the name of the application.
const AppName = "rxkit"

// NewRootCommand returns the root command with all sub-commands attached.
func NewRootCommand() *cli.Command {
	common := options.NewCommonOptions()
	return &cli.Command{
		Name:                  AppName,
		Usage:                 "rxkit builds regular expressions from readable recipes",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags:                 common.Flags(),
		Before:                cli.BeforeFunc(common.Apply),
		Commands: []*cli.Command{
			NewVersionCommand().ToCLI(),
			build.New().ToCLI(),
			match.New().ToCLI(),
			server.New().ToCLI(),
		},
	}
}
