// Package match defines the command evaluating inputs against a pattern.
package match

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/cmdhelper"
	"github.com/wuxler/rxkit/pkg/commands/internal/options"
	"github.com/wuxler/rxkit/pkg/matcher"
)

// New returns a command with default values.
func New() *Command {
	return &Command{
		Recipe: options.NewRecipeOptions(),
		Output: options.NewOutputOptions(),
	}
}

// Command matches inputs against a built or given pattern.
type Command struct {
	Recipe *options.RecipeOptions
	Output *options.OutputOptions

	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// ToCLI transforms to a *cli.Command.
func (c *Command) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "match",
		Aliases: []string{"m"},
		Usage:   "Match inputs against the pattern of a recipe",
		UsageText: `rxkit match [OPTIONS] INPUT...

# Match inputs against the pattern built from a recipe
$ rxkit match --recipe semver.yaml v1.2.3 1.2

# Match inputs against a raw pattern and print captures as json
$ rxkit match --pattern '^v(\d+)\.(\d+)$' --format json v1.22
`,
		ArgsUsage: "INPUT...",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.ActionFuncChain(cmdhelper.MinimumNArgs(1), c.Validate)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *Command) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "pattern",
			Usage:       "pattern to use instead of a recipe",
			Destination: &c.Pattern,
			Value:       c.Pattern,
		},
	}
	flags = append(flags, c.Recipe.Flags()...)
	flags = append(flags, c.Output.Flags()...)
	return flags
}

// Validate validates commands flags.
func (c *Command) Validate(_ context.Context, _ *cli.Command) error {
	if c.Pattern != "" && c.Recipe.IsSet() {
		return errors.New("--pattern and --recipe are mutually exclusive")
	}
	if c.Pattern == "" && !c.Recipe.IsSet() {
		return errors.New("one of --pattern or --recipe is required")
	}
	return c.Output.Validate()
}

// Run is the main function for the current command
func (c *Command) Run(ctx context.Context, cmd *cli.Command) error {
	pattern, err := c.pattern(cmd)
	if err != nil {
		return err
	}
	results, err := matcher.New(nil).Match(ctx, pattern, cmd.Args().Slice()...)
	if err != nil {
		return err
	}

	if !c.Output.IsText() {
		return cmdhelper.WriteStructured(cmd.Writer, c.Output.Format, map[string]any{
			"pattern": pattern,
			"results": results,
		})
	}
	for _, r := range results {
		if !r.Matched {
			cmdhelper.Fprintf(cmd.Writer, "no match\t%s", r.Input)
			continue
		}
		names := lo.Keys(r.Named)
		slices.Sort(names)
		groups := append(lo.Map(names, func(k string, _ int) string {
			return k + "=" + r.Named[k]
		}), r.Groups...)
		cmdhelper.Fprintf(cmd.Writer, "match\t%s\t%s\t[%s]", r.Input, r.Match, strings.Join(groups, " "))
	}
	return nil
}

func (c *Command) pattern(cmd *cli.Command) (string, error) {
	if c.Pattern != "" {
		return c.Pattern, nil
	}
	var stdin io.Reader = os.Stdin
	if cmd.Reader != nil {
		stdin = cmd.Reader
	}
	r, err := c.Recipe.Load(stdin)
	if err != nil {
		return "", err
	}
	return r.Build()
}
