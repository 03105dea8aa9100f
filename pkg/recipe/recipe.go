// Package recipe describes regular expressions declaratively as a list of
// builder steps, loaded from YAML or JSON documents.
package recipe

import (
	"fmt"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/regexbuilder"
)

// ErrInvalidRecipe is returned when a recipe can not be decoded or contains
// a malformed step.
var ErrInvalidRecipe = fmt.Errorf("%w: invalid recipe", errdefs.ErrInvalidParameter)

// Supported step operations.
const (
	OpLiteral        = "literal"
	OpCharacterClass = "character_class"
	OpGroup          = "group"
	OpStartsWith     = "starts_with"
	OpEndsWith       = "ends_with"
	OpZeroOrMore     = "zero_or_more"
	OpOneOrMore      = "one_or_more"
	OpOptional       = "optional"
	OpIgnoreCase     = "ignore_case"
	OpQuantifier     = "quantifier"
	OpRange          = "range"
	OpAlternatives   = "alternatives"
	OpSub            = "sub"
)

// Recipe is the declarative form of a pattern.
type Recipe struct {
	// Seed is the initial pattern, used without escaping.
	Seed string `json:"seed,omitempty" yaml:"seed,omitempty"`
	// Steps are applied in order on a builder seeded with Seed.
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is a single builder operation. Only the fields relevant to Op are
// read.
type Step struct {
	Op string `json:"op" yaml:"op"`

	// Text is the argument of literal, character_class, group, starts_with
	// and ends_with. It is escaped unless Pattern is set.
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Pattern bool   `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Count, or Min and Max, are the bounds of a quantifier. They accept
	// numbers or numeric strings.
	Count any `json:"count,omitempty" yaml:"count,omitempty"`
	Min   any `json:"min,omitempty" yaml:"min,omitempty"`
	Max   any `json:"max,omitempty" yaml:"max,omitempty"`

	// From and To are the endpoints of a range, either single characters or
	// integers.
	From any `json:"from,omitempty" yaml:"from,omitempty"`
	To   any `json:"to,omitempty" yaml:"to,omitempty"`

	// Values are the alternatives, escaped unless Pattern is set.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
	// Branches are alternatives built from their own steps.
	Branches [][]Step `json:"branches,omitempty" yaml:"branches,omitempty"`

	// Steps are the nested steps of a sub step.
	Steps []Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Build renders the pattern described by r.
func (r *Recipe) Build() (string, error) {
	b := regexbuilder.New(r.Seed)
	if err := Apply(b, r.Steps...); err != nil {
		return b.String(), err
	}
	return b.Build()
}
