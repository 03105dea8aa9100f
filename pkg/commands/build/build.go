// Package build defines the command rendering a recipe into a pattern.
package build

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/cmdhelper"
	"github.com/wuxler/rxkit/pkg/commands/internal/options"
	"github.com/wuxler/rxkit/pkg/matcher"
	"github.com/wuxler/rxkit/pkg/xlog"
)

// New returns a command with default values.
func New() *Command {
	return &Command{
		Recipe: options.NewRecipeOptions(),
		Output: options.NewOutputOptions(),
	}
}

// Command builds the pattern described by a recipe.
type Command struct {
	Recipe *options.RecipeOptions
	Output *options.OutputOptions

	// Check compiles the pattern with the Go regexp engine.
	Check bool `json:"check,omitempty" yaml:"check,omitempty"`
}

// Result is the structured output of the command.
type Result struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Steps   int    `json:"steps" yaml:"steps"`
}

// ToCLI transforms to a *cli.Command.
func (c *Command) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "build",
		Aliases: []string{"b"},
		Usage:   "Build a regular expression from a recipe",
		UsageText: `rxkit build [OPTIONS]

# Print the pattern described by a recipe file
$ rxkit build --recipe semver.yaml

# Read the recipe from stdin and print as json
$ cat semver.yaml | rxkit build --recipe - --format json

# Fail if the Go regexp engine rejects the pattern
$ rxkit build --recipe semver.yaml --check
`,
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *Command) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "compile the pattern with the Go regexp engine",
			Destination: &c.Check,
			Value:       c.Check,
		},
	}
	flags = append(flags, c.Recipe.Flags()...)
	flags = append(flags, c.Output.Flags()...)
	return flags
}

// Run is the main function for the current command
func (c *Command) Run(ctx context.Context, cmd *cli.Command) error {
	if err := c.Output.Validate(); err != nil {
		return err
	}
	r, err := c.Recipe.Load(stdin(cmd))
	if err != nil {
		return err
	}
	pattern, err := r.Build()
	if err != nil {
		return err
	}
	xlog.C(ctx).Debug("pattern built", "recipe", c.Recipe.Path, "steps", len(r.Steps), "pattern", pattern)

	if c.Check {
		if _, err := matcher.New(nil).Compile(ctx, pattern); err != nil {
			return fmt.Errorf("pattern %q rejected: %w", pattern, err)
		}
	}

	if c.Output.IsText() {
		cmdhelper.Fprintf(cmd.Writer, "%s", pattern)
		return nil
	}
	return cmdhelper.WriteStructured(cmd.Writer, c.Output.Format, Result{Pattern: pattern, Steps: len(r.Steps)})
}

func stdin(cmd *cli.Command) io.Reader {
	if cmd.Reader != nil {
		return cmd.Reader
	}
	return os.Stdin
}
