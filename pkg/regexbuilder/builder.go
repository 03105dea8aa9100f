// Package regexbuilder provides a fluent builder to assemble regular
// expression patterns from literals, classes, quantifiers, groups,
// alternations and anchors without writing the syntax by hand.
//
// The builder only emits a pattern string. Use it with regexp.Compile or any
// other engine accepting the same syntax:
//
//	pattern, err := regexbuilder.New("").
//		StartsWith("v").
//		WithNumericRange(0, 9).
//		WithOneOrMore().
//		Build()
package regexbuilder

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

// Func configures a fresh sub builder. A non-nil error, or an error
// recorded by the sub builder itself, marks the composition as failed.
type Func func(b *Builder) error

// New returns a Builder seeded with literal. The seed is used as is, callers
// must escape it beforehand if required.
func New(literal string) *Builder {
	return &Builder{root: literalNode(literal)}
}

// Builder assembles a pattern step by step. Every method replaces the
// current root and returns the receiver so calls can be chained.
//
// The first failing call records its error. That call and all following
// ones leave the pattern untouched; the error is reported by Err and Build.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root node
	err  error
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Build renders the pattern. The error is the first one recorded while
// building, in which case the pattern is the one assembled before the
// failing call.
func (b *Builder) Build() (string, error) {
	return b.root.render(), b.err
}

// MustBuild is like Build but panics if an error was recorded.
func (b *Builder) MustBuild() string {
	pattern, err := b.Build()
	if err != nil {
		panic(err)
	}
	return pattern
}

// String renders the pattern assembled so far, ignoring any error.
func (b *Builder) String() string {
	return b.root.render()
}

// WithLiteral appends text with its special characters escaped.
func (b *Builder) WithLiteral(text string) *Builder {
	return b.appendText(escape(text, false))
}

// WithLiteralPattern appends text which is already a valid pattern.
func (b *Builder) WithLiteralPattern(text string) *Builder {
	return b.appendText(escape(text, true))
}

// WithLiteralFunc runs fn against a fresh builder and appends its rendered
// pattern verbatim.
func (b *Builder) WithLiteralFunc(fn Func) *Builder {
	if b.err != nil {
		return b
	}
	pattern, err := runFunc(fn)
	if err != nil {
		return b.fail(err)
	}
	return b.appendText(pattern)
}

// WithCharacterClass appends text escaped and enclosed in brackets.
func (b *Builder) WithCharacterClass(text string) *Builder {
	return b.appendText("[" + escape(text, false) + "]")
}

// WithCharacterClassPattern appends text enclosed in brackets as is, for
// example "0-9" or "a-zA-Z_".
func (b *Builder) WithCharacterClassPattern(text string) *Builder {
	return b.appendText("[" + escape(text, true) + "]")
}

// WithZeroOrMore appends the "*" quantifier.
func (b *Builder) WithZeroOrMore() *Builder {
	return b.appendText("*")
}

// WithOneOrMore appends the "+" quantifier.
func (b *Builder) WithOneOrMore() *Builder {
	return b.appendText("+")
}

// WithOptional appends the "?" quantifier.
func (b *Builder) WithOptional() *Builder {
	return b.appendText("?")
}

// WithQuantifierRange appends "{min,max}". Both bounds must be non-negative
// and max must not be less than min.
func (b *Builder) WithQuantifierRange(minimum, maximum int) *Builder {
	if b.err != nil {
		return b
	}
	if minimum < 0 || maximum < 0 || maximum < minimum {
		return b.fail(errdefs.Newf(ErrInvalidQuantifier, "invalid quantifier range {%d,%d}", minimum, maximum))
	}
	return b.appendText("{" + strconv.Itoa(minimum) + "," + strconv.Itoa(maximum) + "}")
}

// WithQuantifier appends "{n}". n must be positive.
func (b *Builder) WithQuantifier(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		return b.fail(errdefs.Newf(ErrInvalidQuantifier, "invalid quantifier {%d}, must be positive", n))
	}
	return b.appendText("{" + strconv.Itoa(n) + "}")
}

// WithGroup appends text escaped and enclosed in a capturing group.
func (b *Builder) WithGroup(text string) *Builder {
	return b.appendText("(" + escape(text, false) + ")")
}

// WithGroupPattern appends a pattern enclosed in a capturing group.
func (b *Builder) WithGroupPattern(text string) *Builder {
	return b.appendText("(" + escape(text, true) + ")")
}

// WithRange appends the character class "[start-end]". The endpoints are
// not escaped.
func (b *Builder) WithRange(start, end rune) *Builder {
	return b.appendText("[" + string(start) + "-" + string(end) + "]")
}

// WithNumericRange appends the character class "[start-end]" with decimal
// endpoints, e.g. WithNumericRange(0, 9) appends "[0-9]".
func (b *Builder) WithNumericRange(start, end int) *Builder {
	return b.appendText("[" + strconv.Itoa(start) + "-" + strconv.Itoa(end) + "]")
}

// WithAlternatives appends a group matching any of texts, each escaped.
func (b *Builder) WithAlternatives(texts ...string) *Builder {
	return b.withAlternatives(false, texts)
}

// WithAlternativePatterns appends a group matching any of the patterns.
func (b *Builder) WithAlternativePatterns(patterns ...string) *Builder {
	return b.withAlternatives(true, patterns)
}

// WithAlternativesFunc runs every fn against its own fresh builder and
// appends a group matching any of the rendered patterns. If one of them
// fails nothing is appended and the error wraps ErrInvalidAlternative.
func (b *Builder) WithAlternativesFunc(fns ...Func) *Builder {
	if b.err != nil {
		return b
	}
	patterns := make([]string, 0, len(fns))
	for _, fn := range fns {
		pattern, err := runFunc(fn)
		if err != nil {
			return b.fail(errdefs.Newf(ErrInvalidAlternative, "error constructing alternatives: %w", err))
		}
		patterns = append(patterns, pattern)
	}
	return b.withAlternatives(true, patterns)
}

func (b *Builder) withAlternatives(isPattern bool, texts []string) *Builder {
	if b.err != nil {
		return b
	}
	if len(texts) == 0 {
		return b.fail(errdefs.Newf(ErrInvalidAlternative, "at least one alternative is required"))
	}
	alternatives := lo.Map(texts, func(text string, _ int) node {
		return literalNode(escape(text, isPattern))
	})
	b.root = newAlternationNode(b.root, alternatives)
	return b
}

// IgnoreCase prefixes the whole pattern built so far with "(?i)".
func (b *Builder) IgnoreCase() *Builder {
	if b.err != nil {
		return b
	}
	b.root = literalNode("(?i)" + b.root.render())
	return b
}

// StartsWith anchors the pattern at the start of input, preceded by the
// escaped text.
func (b *Builder) StartsWith(text string) *Builder {
	return b.startsWith(escape(text, false))
}

// StartsWithPattern is like StartsWith but text is used as is.
func (b *Builder) StartsWithPattern(text string) *Builder {
	return b.startsWith(escape(text, true))
}

func (b *Builder) startsWith(literal string) *Builder {
	if b.err != nil {
		return b
	}
	b.root = &startsWithNode{inner: b.root, literal: literal}
	return b
}

// EndsWith anchors the pattern at the end of input, followed by the escaped
// text.
func (b *Builder) EndsWith(text string) *Builder {
	return b.endsWith(escape(text, false))
}

// EndsWithPattern is like EndsWith but text is used as is.
func (b *Builder) EndsWithPattern(text string) *Builder {
	return b.endsWith(escape(text, true))
}

func (b *Builder) endsWith(literal string) *Builder {
	if b.err != nil {
		return b
	}
	b.root = &endsWithNode{inner: b.root, literal: literal}
	return b
}

func (b *Builder) appendText(text string) *Builder {
	if b.err != nil {
		return b
	}
	b.root = literalNode(b.root.render() + text)
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// runFunc renders the pattern configured by fn on a fresh builder.
func runFunc(fn Func) (string, error) {
	if fn == nil {
		return "", errdefs.Newf(ErrInvalidCallback, "nil builder function")
	}
	sub := New("")
	if err := fn(sub); err != nil {
		return "", err
	}
	return sub.Build()
}
