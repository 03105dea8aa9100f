package build_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/rxkit/pkg/commands/build"
	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/matcher"
	"github.com/wuxler/rxkit/pkg/regexbuilder"
)

const semverRecipe = `
steps:
  - {op: starts_with, text: v}
  - {op: range, from: 0, to: 9}
  - {op: one_or_more}
  - {op: literal, text: .}
  - {op: range, from: 0, to: 9}
  - {op: one_or_more}
  - {op: ends_with, text: ""}
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "semver.yaml", []byte(semverRecipe), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "nested.yaml", []byte("steps: [{op: literal, text: a}, {op: quantifier, count: 0}]"), 0o644))

	c := build.New()
	c.Recipe.Fs = fsys
	cmd := c.ToCLI()
	stdout := &bytes.Buffer{}
	cmd.Writer = stdout
	cmd.ErrWriter = io.Discard
	cmd.Reader = strings.NewReader(stdin)
	err := cmd.Run(context.Background(), append([]string{"build"}, args...))
	return stdout.String(), err
}

func TestCommand_Run(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		got, err := run(t, "", "--recipe", "semver.yaml")
		require.NoError(t, err)
		assert.Equal(t, "^v[0-9]+\\.[0-9]+$\n", got)
	})

	t.Run("json", func(t *testing.T) {
		got, err := run(t, "", "--recipe", "semver.yaml", "--format", "json", "--check")
		require.NoError(t, err)
		var result build.Result
		require.NoError(t, json.Unmarshal([]byte(got), &result))
		assert.Equal(t, build.Result{Pattern: `^v[0-9]+\.[0-9]+$`, Steps: 7}, result)
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := run(t, `{"seed": "x", "steps": [{"op": "optional"}]}`, "--recipe", "-")
		require.NoError(t, err)
		assert.Equal(t, "x?\n", got)
	})
}

func TestCommand_RunErrors(t *testing.T) {
	t.Run("no recipe", func(t *testing.T) {
		_, err := run(t, "")
		assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
	})

	t.Run("missing recipe", func(t *testing.T) {
		_, err := run(t, "", "--recipe", "missing.yaml")
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("invalid step", func(t *testing.T) {
		_, err := run(t, "", "--recipe", "nested.yaml")
		assert.ErrorIs(t, err, regexbuilder.ErrInvalidQuantifier)
	})

	t.Run("rejected by check", func(t *testing.T) {
		_, err := run(t, `{"steps": [{"op": "literal", "text": "(", "pattern": true}]}`, "--recipe", "-", "--check")
		assert.ErrorIs(t, err, matcher.ErrInvalidPattern)
		assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := run(t, "", "--recipe", "semver.yaml", "--format", "xml")
		assert.ErrorIs(t, err, errdefs.ErrUnsupported)
	})

	t.Run("unexpected args", func(t *testing.T) {
		_, err := run(t, "", "--recipe", "semver.yaml", "extra")
		assert.ErrorContains(t, err, "accepts no args")
	})
}
