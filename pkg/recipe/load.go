package recipe

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/rxkit/pkg/errdefs"
)

// Decode reads one recipe document from r. JSON documents are accepted
// as they are valid YAML. Unknown fields are rejected.
func Decode(r io.Reader) (*Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	recipe := &Recipe{}
	if err := dec.Decode(recipe); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errdefs.Newf(ErrInvalidRecipe, "empty document")
		}
		return nil, errdefs.Newf(ErrInvalidRecipe, "decode: %w", err)
	}
	return recipe, nil
}

// Load reads the recipe stored at path in fsys.
func Load(fsys afero.Fs, path string) (*Recipe, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errdefs.Newf(errdefs.ErrNotFound, "recipe %s", path)
		}
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read only

	recipe, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", path, err)
	}
	return recipe, nil
}
