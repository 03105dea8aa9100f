// Package matcher compiles built patterns with the standard regexp engine
// and reports how inputs match them.
package matcher

import (
	"context"
	"fmt"
	"regexp"

	"github.com/samber/lo"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/util/xcache"
	"github.com/wuxler/rxkit/pkg/util/xcontext"
	"github.com/wuxler/rxkit/pkg/util/xregexp"
	"github.com/wuxler/rxkit/pkg/xlog"
)

// ErrInvalidPattern is returned when a pattern is rejected by the regexp
// engine.
var ErrInvalidPattern = fmt.Errorf("%w: invalid pattern", errdefs.ErrInvalidParameter)

// Result describes how one input matches a pattern.
type Result struct {
	Input   string            `json:"input" yaml:"input"`
	Matched bool              `json:"matched" yaml:"matched"`
	Match   string            `json:"match,omitempty" yaml:"match,omitempty"`
	Groups  []string          `json:"groups,omitempty" yaml:"groups,omitempty"`
	Named   map[string]string `json:"named,omitempty" yaml:"named,omitempty"`
}

// New returns a Matcher keeping compiled patterns in cache. A nil cache
// disables caching.
func New(cache xcache.Cache[*regexp.Regexp]) *Matcher {
	if cache == nil {
		cache = xcache.NewDiscard[*regexp.Regexp]()
	}
	return &Matcher{cache: cache}
}

// Matcher compiles and evaluates patterns. It is safe for concurrent use.
type Matcher struct {
	cache xcache.Cache[*regexp.Regexp]
}

// Compile returns the compiled form of pattern.
func (m *Matcher) Compile(ctx context.Context, pattern string) (*regexp.Regexp, error) {
	re, ok := m.cache.Get(ctx, pattern, xcache.WithLoader[*regexp.Regexp](compile))
	if ok {
		return re, nil
	}
	// the loader does not report why compilation failed
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errdefs.NewE(ErrInvalidPattern, err)
	}
	return re, nil
}

// Match evaluates every input against pattern, in order. It stops early
// when ctx is done.
func (m *Matcher) Match(ctx context.Context, pattern string, inputs ...string) ([]Result, error) {
	re, err := m.Compile(ctx, pattern)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(inputs))
	for i, input := range inputs {
		if err := xcontext.Check(ctx, "match input %d", i); err != nil {
			return nil, err
		}
		results = append(results, evaluate(re, input))
	}
	xlog.C(ctx).Debug("pattern evaluated", "pattern", pattern, "inputs", len(inputs),
		"matched", lo.CountBy(results, func(r Result) bool { return r.Matched }))
	return results, nil
}

func evaluate(re *regexp.Regexp, input string) Result {
	loc := re.FindStringIndex(input)
	if loc == nil {
		return Result{Input: input}
	}
	named, groups := xregexp.SubmatchCaptures(re, input)
	return Result{
		Input:   input,
		Matched: true,
		Match:   input[loc[0]:loc[1]],
		Groups:  groups,
		Named:   named,
	}
}

func compile(ctx context.Context, pattern string) (*regexp.Regexp, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		xlog.C(ctx).Debug("pattern rejected", "pattern", pattern, "error", err)
		return nil, false
	}
	return re, true
}
