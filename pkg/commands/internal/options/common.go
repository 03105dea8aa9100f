// Package options defines the flag groups shared by commands.
package options

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/xlog"
)

// FlagCategoryCommon is the category name for common flags.
const FlagCategoryCommon = "[Common]"

// NewCommonOptions returns a *CommonOptions with default values.
func NewCommonOptions() *CommonOptions {
	return &CommonOptions{}
}

// CommonOptions are options that are common to all commands.
type CommonOptions struct {
	Debug   bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *CommonOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("RXKIT_DEBUG"),
			Usage:       "enable debug logging",
			Destination: &o.Debug,
			Category:    FlagCategoryCommon,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Sources:     cli.EnvVars("RXKIT_LOG_FILE"),
			Usage:       "also write json logs into the file, rotated every 30MB",
			Destination: &o.LogFile,
			Value:       o.LogFile,
			Category:    FlagCategoryCommon,
		},
	}
}

// LogConfig returns the logging configuration described by the options.
func (o *CommonOptions) LogConfig() xlog.Config {
	c := xlog.NewConfig()
	c.Path = o.LogFile
	if o.Debug {
		c.Level = xlog.LevelDebug
		c.AddSource = true
	}
	return c
}

// Apply installs the default logger. It is meant to be the Before hook of
// the root command.
func (o *CommonOptions) Apply(_ context.Context, cmd *cli.Command) error {
	c := o.LogConfig()
	if cmd.ErrWriter != nil {
		c.StdWriter = cmd.ErrWriter
	}
	xlog.SetDefault(xlog.New(c))
	return nil
}
