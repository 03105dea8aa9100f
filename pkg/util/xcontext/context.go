// Package xcontext holds context helpers for long running loops.
package xcontext

import (
	"context"
	"fmt"
)

// Check returns nil while ctx is live. Once ctx is done it returns the
// context error, annotated with the operation described by format and args
// when format is not empty. It never blocks.
func Check(ctx context.Context, format string, args ...any) error {
	err := context.Cause(ctx)
	if err == nil {
		return nil
	}
	if format == "" {
		return err
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
