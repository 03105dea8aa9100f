// Package errdefs defines the error categories shared by rxkit packages.
//
// Packages declare their own sentinels wrapping one of the categories, e.g.
//
//	var ErrInvalidRecipe = fmt.Errorf("%w: invalid recipe", errdefs.ErrInvalidParameter)
//
// and attach details with Newf or NewE so that errors.Is matches both the
// sentinel and the cause.
package errdefs

import (
	"errors"
	"fmt"
)

// Newf returns base joined with a message formatted by fmt.Errorf, so "%w"
// verbs keep their causes reachable.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE joins base with err. err is returned unchanged when it is nil or
// already matches base.
func NewE(base, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}
