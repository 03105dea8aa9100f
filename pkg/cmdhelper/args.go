// Package cmdhelper provides helpers shared by the rxkit cli commands.
package cmdhelper

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

// ActionFunc is the signature of the Before and Action hooks of a
// *cli.Command.
type ActionFunc func(ctx context.Context, cmd *cli.Command) error

// ActionFuncChain runs handlers in order and stops at the first error.
func ActionFuncChain(handlers ...ActionFunc) ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		for _, h := range handlers {
			if err := h(ctx, cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

// MinimumNArgs rejects commands given less than n positional arguments.
func MinimumNArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if got := cmd.Args().Len(); got < n {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "%q requires at least %d arg(s), received %d", cmd.FullName(), n, got)
		}
		return nil
	}
}

// NoArgs rejects commands given any positional argument.
func NoArgs() ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Present() {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "%q accepts no args, received %q", cmd.FullName(), args.First())
		}
		return nil
	}
}
