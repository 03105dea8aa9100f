package options

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewOutputOptions returns a *OutputOptions with text format.
func NewOutputOptions() *OutputOptions {
	return &OutputOptions{Format: FormatText}
}

// OutputOptions defines how results are printed.
type OutputOptions struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *OutputOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Destination: &o.Format,
			Value:       o.Format,
		},
	}
}

// Validate checks the format is supported.
func (o *OutputOptions) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, o.Format) {
		return errdefs.Newf(errdefs.ErrUnsupported, "output format %q", o.Format)
	}
	return nil
}

// IsText reports whether the output is plain text.
func (o *OutputOptions) IsText() bool {
	return o.Format == FormatText
}
