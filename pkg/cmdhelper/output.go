package cmdhelper

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

// Fprintf is a wrapper around fmt.Fprintf to suppress the error check.
func Fprintf(w io.Writer, format string, args ...any) {
	if format == "" || format[len(format)-1] != '\n' {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// WriteStructured writes data into w as "json" or "yaml".
func WriteStructured(w io.Writer, format string, data any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(data)
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(data)
	}
	return errdefs.Newf(errdefs.ErrUnsupported, "output format %q", format)
}

// SetFlagsCategory sets the category of the flags which support it.
func SetFlagsCategory(category string, flags ...cli.Flag) {
	for _, flag := range flags {
		switch f := flag.(type) {
		case *cli.StringFlag:
			f.Category = category
		case *cli.BoolFlag:
			f.Category = category
		case *cli.IntFlag:
			f.Category = category
		case *cli.StringSliceFlag:
			f.Category = category
		}
	}
}
