package regexbuilder_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/regexbuilder"
)

var errSimulated = errors.New("simulated failure")

func TestNew(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := regexbuilder.New("").Build()
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("seed is not escaped", func(t *testing.T) {
		got, err := regexbuilder.New("a.b").Build()
		require.NoError(t, err)
		assert.Equal(t, "a.b", got)
	})
}

func TestBuilder_Operations(t *testing.T) {
	testcases := map[string]struct {
		build func() *regexbuilder.Builder
		want  string
	}{
		"literal": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithLiteral("123") },
			want:  "abc123",
		},
		"literal escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithLiteral("a.b*") },
			want:  `a\.b\*`,
		},
		"literal pattern": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithLiteralPattern("a.b*") },
			want:  "a.b*",
		},
		"character class": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithCharacterClass("0-9") },
			want:  "abc[0-9]",
		},
		"character class escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithCharacterClass("a^]") },
			want:  `[a\^\]]`,
		},
		"character class pattern": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithCharacterClassPattern(`\w.`) },
			want:  `[\w.]`,
		},
		"zero or more": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithZeroOrMore() },
			want:  "abc*",
		},
		"one or more": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithOneOrMore() },
			want:  "abc+",
		},
		"optional": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithOptional() },
			want:  "abc?",
		},
		"quantifier": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithGroup("abc").WithQuantifier(3) },
			want:  "(abc){3}",
		},
		"quantifier range": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithGroup("abc").WithQuantifierRange(2, 4) },
			want:  "(abc){2,4}",
		},
		"quantifier range with zero": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("a").WithQuantifierRange(0, 0) },
			want:  "a{0,0}",
		},
		"group": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithGroup("123") },
			want:  "abc(123)",
		},
		"group escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithGroup("a|b") },
			want:  `(a\|b)`,
		},
		"group pattern": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithGroupPattern("a|b") },
			want:  "(a|b)",
		},
		"rune range": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithRange('0', '9') },
			want:  "abc[0-9]",
		},
		"numeric range": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithNumericRange(0, 9) },
			want:  "abc[0-9]",
		},
		"alternatives": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").WithAlternatives("ABC", "DEF") },
			want:  "abc(ABC|DEF)",
		},
		"alternatives escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("").WithAlternatives("a.b", "c+") },
			want:  `(a\.b|c\+)`,
		},
		"single alternative": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("x").WithAlternatives("y") },
			want:  "x(y)",
		},
		"alternative patterns": {
			build: func() *regexbuilder.Builder {
				return regexbuilder.New("abc").WithAlternativePatterns("[0-9]+", "[A-Z]+")
			},
			want: "abc([0-9]+|[A-Z]+)",
		},
		"ignore case": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").IgnoreCase() },
			want:  "(?i)abc",
		},
		"starts with": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").StartsWith("start") },
			want:  "^startabc",
		},
		"starts with escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").StartsWith("$x") },
			want:  `^\$xabc`,
		},
		"starts with pattern": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").StartsWithPattern(`\s*`) },
			want:  `^\s*abc`,
		},
		"ends with": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").EndsWith("end") },
			want:  "abcend$",
		},
		"ends with escaped": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").EndsWith(".txt") },
			want:  `abc\.txt$`,
		},
		"ends with pattern": {
			build: func() *regexbuilder.Builder { return regexbuilder.New("abc").EndsWithPattern(`\s*`) },
			want:  `abc\s*$`,
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.build().Build()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuilder_WithQuantifierRange_Invalid(t *testing.T) {
	testcases := []struct {
		minimum, maximum int
	}{
		{-1, 3},
		{1, -3},
		{-2, -1},
		{4, 2},
	}
	for _, tc := range testcases {
		b := regexbuilder.New("").WithGroup("abc")
		_, err := b.WithQuantifierRange(tc.minimum, tc.maximum).Build()
		assert.ErrorIs(t, err, regexbuilder.ErrInvalidQuantifier)
		assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
		assert.Equal(t, "(abc)", b.String())
	}
}

func TestBuilder_WithQuantifier_Invalid(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		b := regexbuilder.New("a").WithQuantifier(n)
		assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidQuantifier)
		assert.Equal(t, "a", b.String())
	}
	got, err := regexbuilder.New("a").WithQuantifier(1).Build()
	require.NoError(t, err)
	assert.Equal(t, "a{1}", got)
}

func TestBuilder_StickyError(t *testing.T) {
	b := regexbuilder.New("")
	b.WithGroup("abc").WithQuantifierRange(2, 4)
	assert.Equal(t, "(abc){2,4}", b.String())

	b.WithLiteral("def").WithQuantifierRange(4, 2)
	require.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidQuantifier)
	assert.Equal(t, "(abc){2,4}def", b.String())

	// calls after the failure are ignored and the first error is kept
	b.WithLiteral("ghi").WithQuantifier(0).StartsWith("x").IgnoreCase()
	got, err := b.Build()
	assert.ErrorContains(t, err, "{4,2}")
	assert.Equal(t, "(abc){2,4}def", got)

	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_WithLiteralFunc(t *testing.T) {
	b := regexbuilder.New("")
	b.WithLiteralFunc(func(sub *regexbuilder.Builder) error {
		return sub.WithGroup("abc").WithOneOrMore().Err()
	})
	assert.Equal(t, "(abc)+", b.MustBuild())

	b.WithLiteralFunc(func(sub *regexbuilder.Builder) error {
		return sub.WithGroup("def").
			WithQuantifier(3).
			WithGroup("ghi").
			WithOneOrMore().
			Err()
	})
	assert.Equal(t, "(abc)+(def){3}(ghi)+", b.MustBuild())

	t.Run("sub builder is independent", func(t *testing.T) {
		b := regexbuilder.New("prefix.")
		b.WithLiteralFunc(func(sub *regexbuilder.Builder) error {
			assert.Equal(t, "", sub.String())
			sub.WithLiteral(".")
			return nil
		})
		assert.Equal(t, `prefix.\.`, b.MustBuild())
	})

	t.Run("nil func", func(t *testing.T) {
		b := regexbuilder.New("abc").WithLiteralFunc(nil)
		assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidCallback)
		assert.Equal(t, "abc", b.String())
	})

	t.Run("func error", func(t *testing.T) {
		b := regexbuilder.New("abc").WithLiteralFunc(func(sub *regexbuilder.Builder) error {
			sub.WithLiteral("def")
			return errSimulated
		})
		assert.ErrorIs(t, b.Err(), errSimulated)
		assert.Equal(t, "abc", b.String())
	})

	t.Run("sub builder error", func(t *testing.T) {
		b := regexbuilder.New("abc").WithLiteralFunc(func(sub *regexbuilder.Builder) error {
			sub.WithLiteral("def").WithQuantifier(0)
			return nil
		})
		assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidQuantifier)
		assert.Equal(t, "abc", b.String())
	})
}

func TestBuilder_WithAlternativesFunc(t *testing.T) {
	t.Run("groups", func(t *testing.T) {
		got, err := regexbuilder.New("").WithAlternativesFunc(
			func(b *regexbuilder.Builder) error { return b.WithGroup("abc").WithOneOrMore().Err() },
			func(b *regexbuilder.Builder) error { return b.WithGroup("def").WithOneOrMore().Err() },
		).Build()
		require.NoError(t, err)
		assert.Equal(t, "((abc)+|(def)+)", got)
	})

	t.Run("quantifiers", func(t *testing.T) {
		got, err := regexbuilder.New("").WithAlternativesFunc(
			func(b *regexbuilder.Builder) error { return b.WithGroup("123").WithQuantifier(2).Err() },
			func(b *regexbuilder.Builder) error { return b.WithGroup("456").WithQuantifier(3).Err() },
		).Build()
		require.NoError(t, err)
		assert.Equal(t, "((123){2}|(456){3})", got)
	})

	t.Run("rendered output is not escaped again", func(t *testing.T) {
		got, err := regexbuilder.New("").WithAlternativesFunc(
			func(b *regexbuilder.Builder) error { return b.WithLiteral("a.b").Err() },
		).Build()
		require.NoError(t, err)
		assert.Equal(t, `(a\.b)`, got)
	})

	t.Run("failure leaves builder unchanged", func(t *testing.T) {
		b := regexbuilder.New("").WithLiteral("x")
		b.WithAlternativesFunc(
			func(b *regexbuilder.Builder) error { return b.WithLiteral("ghi").Err() },
			func(b *regexbuilder.Builder) error { return errSimulated },
		)
		err := b.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, regexbuilder.ErrInvalidAlternative)
		assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
		assert.ErrorIs(t, err, errSimulated)
		assert.ErrorContains(t, err, "error constructing alternatives: simulated failure")
		assert.Equal(t, "x", b.String())
	})

	t.Run("nil func", func(t *testing.T) {
		b := regexbuilder.New("x").WithAlternativesFunc(nil)
		assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidAlternative)
		assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidCallback)
		assert.Equal(t, "x", b.String())
	})
}

func TestBuilder_NoAlternatives(t *testing.T) {
	testcases := map[string]func(b *regexbuilder.Builder) *regexbuilder.Builder{
		"texts":    func(b *regexbuilder.Builder) *regexbuilder.Builder { return b.WithAlternatives() },
		"patterns": func(b *regexbuilder.Builder) *regexbuilder.Builder { return b.WithAlternativePatterns() },
		"funcs":    func(b *regexbuilder.Builder) *regexbuilder.Builder { return b.WithAlternativesFunc() },
	}
	for name, apply := range testcases {
		t.Run(name, func(t *testing.T) {
			b := apply(regexbuilder.New("abc"))
			assert.ErrorIs(t, b.Err(), regexbuilder.ErrInvalidAlternative)
			assert.Equal(t, "abc", b.String())
		})
	}
}

func TestBuilder_Composition(t *testing.T) {
	got, err := regexbuilder.New("abc").
		StartsWith("start").
		WithAlternativePatterns("[0-9]+", "[A-z]+").
		WithOneOrMore().
		EndsWith("end").
		IgnoreCase().
		Build()
	require.NoError(t, err)
	assert.Equal(t, "(?i)^startabc([0-9]+|[A-z]+)+end$", got)

	re := regexp.MustCompile(got)
	assert.True(t, re.MatchString("startabc123defghiend"))
	assert.True(t, re.MatchString("STARTABC123DEFGHIEND"))
	assert.False(t, re.MatchString("startXYZ789XYZend"))
}

func TestBuilder_CompositionWithLiteralFunc(t *testing.T) {
	got, err := regexbuilder.New("abc").
		StartsWith("start").
		WithLiteralFunc(func(b *regexbuilder.Builder) error {
			return b.WithNumericRange(0, 9).WithQuantifier(3).
				WithRange('A', 'z').WithQuantifier(6).
				WithOneOrMore().
				Err()
		}).
		EndsWith("end").
		IgnoreCase().
		Build()
	require.NoError(t, err)
	assert.Equal(t, "(?i)^startabc[0-9]{3}[A-z]{6}+end$", got)
}

func TestBuilder_DecoratorsNest(t *testing.T) {
	b := regexbuilder.New("b").
		StartsWith("a").
		EndsWith("c").
		WithLiteral("d").
		StartsWith("x")
	assert.Equal(t, "^x^abc$d", b.MustBuild())
}

func TestBuilder_BuildIsIdempotent(t *testing.T) {
	b := regexbuilder.New("abc").
		StartsWith("s").
		WithAlternatives("x", "y").
		EndsWith("e")
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, b.String())
}
