package regexbuilder

import (
	"fmt"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

var (
	// ErrInvalidQuantifier is returned when quantifier bounds are negative,
	// inverted or not positive.
	ErrInvalidQuantifier = fmt.Errorf("%w: invalid quantifier", errdefs.ErrInvalidParameter)

	// ErrInvalidAlternative is returned when an alternation can not be
	// constructed.
	ErrInvalidAlternative = fmt.Errorf("%w: invalid alternative", errdefs.ErrInvalidParameter)

	// ErrInvalidCallback is returned when a required builder function is nil.
	ErrInvalidCallback = fmt.Errorf("%w: invalid callback", errdefs.ErrInvalidParameter)
)
