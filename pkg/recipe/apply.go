package recipe

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/regexbuilder"
)

// Apply runs steps on b in order and stops at the first failing one. The
// error names the path of the failing step, e.g. "steps[2].branches[0][1]".
func Apply(b *regexbuilder.Builder, steps ...Step) error {
	return applySteps(b, "steps", steps)
}

func applySteps(b *regexbuilder.Builder, path string, steps []Step) error {
	for i, step := range steps {
		stepPath := fmt.Sprintf("%s[%d]", path, i)
		if err := applyStep(b, stepPath, step); err != nil {
			return err
		}
		if err := b.Err(); err != nil {
			return fmt.Errorf("%s (%s): %w", stepPath, step.Op, err)
		}
	}
	return nil
}

//nolint:gocyclo // one case per operation
func applyStep(b *regexbuilder.Builder, path string, step Step) error {
	switch step.Op {
	case OpLiteral:
		if step.Pattern {
			b.WithLiteralPattern(step.Text)
		} else {
			b.WithLiteral(step.Text)
		}
	case OpCharacterClass:
		if step.Pattern {
			b.WithCharacterClassPattern(step.Text)
		} else {
			b.WithCharacterClass(step.Text)
		}
	case OpGroup:
		if step.Pattern {
			b.WithGroupPattern(step.Text)
		} else {
			b.WithGroup(step.Text)
		}
	case OpStartsWith:
		if step.Pattern {
			b.StartsWithPattern(step.Text)
		} else {
			b.StartsWith(step.Text)
		}
	case OpEndsWith:
		if step.Pattern {
			b.EndsWithPattern(step.Text)
		} else {
			b.EndsWith(step.Text)
		}
	case OpZeroOrMore:
		b.WithZeroOrMore()
	case OpOneOrMore:
		b.WithOneOrMore()
	case OpOptional:
		b.WithOptional()
	case OpIgnoreCase:
		b.IgnoreCase()
	case OpQuantifier:
		return applyQuantifier(b, path, step)
	case OpRange:
		return applyRange(b, path, step)
	case OpAlternatives:
		return applyAlternatives(b, path, step)
	case OpSub:
		b.WithLiteralFunc(func(sub *regexbuilder.Builder) error {
			return applySteps(sub, path+".steps", step.Steps)
		})
	case "":
		return errdefs.Newf(ErrInvalidRecipe, "%s: missing op", path)
	default:
		return errdefs.Newf(ErrInvalidRecipe, "%s: unknown op %q", path, step.Op)
	}
	return nil
}

func applyQuantifier(b *regexbuilder.Builder, path string, step Step) error {
	if step.Count != nil {
		n, err := cast.ToIntE(step.Count)
		if err != nil {
			return errdefs.Newf(ErrInvalidRecipe, "%s: count: %w", path, err)
		}
		b.WithQuantifier(n)
		return nil
	}
	if step.Min == nil || step.Max == nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: quantifier requires count, or min and max", path)
	}
	minimum, err := cast.ToIntE(step.Min)
	if err != nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: min: %w", path, err)
	}
	maximum, err := cast.ToIntE(step.Max)
	if err != nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: max: %w", path, err)
	}
	b.WithQuantifierRange(minimum, maximum)
	return nil
}

func applyRange(b *regexbuilder.Builder, path string, step Step) error {
	if step.From == nil || step.To == nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: range requires from and to", path)
	}
	if from, ok := singleRune(step.From); ok {
		if to, ok := singleRune(step.To); ok {
			b.WithRange(from, to)
			return nil
		}
	}
	from, err := cast.ToIntE(step.From)
	if err != nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: from: %w", path, err)
	}
	to, err := cast.ToIntE(step.To)
	if err != nil {
		return errdefs.Newf(ErrInvalidRecipe, "%s: to: %w", path, err)
	}
	b.WithNumericRange(from, to)
	return nil
}

func applyAlternatives(b *regexbuilder.Builder, path string, step Step) error {
	switch {
	case len(step.Values) > 0 && len(step.Branches) > 0:
		return errdefs.Newf(ErrInvalidRecipe, "%s: values and branches are exclusive", path)
	case len(step.Branches) > 0:
		fns := lo.Map(step.Branches, func(steps []Step, i int) regexbuilder.Func {
			return func(sub *regexbuilder.Builder) error {
				return applySteps(sub, fmt.Sprintf("%s.branches[%d]", path, i), steps)
			}
		})
		b.WithAlternativesFunc(fns...)
	case step.Pattern:
		b.WithAlternativePatterns(step.Values...)
	default:
		b.WithAlternatives(step.Values...)
	}
	return nil
}

// singleRune reports whether v is a string made of exactly one character.
func singleRune(v any) (rune, bool) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
