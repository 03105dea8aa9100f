package options

import (
	"io"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/recipe"
	"github.com/wuxler/rxkit/pkg/util/homedir"
)

// FlagCategoryRecipe is the category name for recipe flags.
const FlagCategoryRecipe = "[Recipe]"

// StdinPath reads the recipe from the standard input.
const StdinPath = "-"

// NewRecipeOptions returns a *RecipeOptions reading from the OS filesystem.
func NewRecipeOptions() *RecipeOptions {
	return &RecipeOptions{Fs: afero.NewOsFs()}
}

// RecipeOptions locates the recipe a command builds its pattern from.
type RecipeOptions struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Fs is the filesystem recipes are read from.
	Fs afero.Fs `json:"-" yaml:"-"`
}

// Flags returns the []cli.Flag related to current options.
func (o *RecipeOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "recipe",
			Aliases:     []string{"r"},
			Usage:       `recipe file (yaml or json), "-" reads from stdin`,
			Sources:     cli.EnvVars("RXKIT_RECIPE"),
			Destination: &o.Path,
			Value:       o.Path,
			Category:    FlagCategoryRecipe,
		},
	}
}

// IsSet reports whether a recipe was specified.
func (o *RecipeOptions) IsSet() bool {
	return o.Path != ""
}

// Load reads the recipe, using stdin when the path is StdinPath. A leading
// "~" in the path is expanded to the home directory.
func (o *RecipeOptions) Load(stdin io.Reader) (*recipe.Recipe, error) {
	switch o.Path {
	case "":
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "no recipe specified, use --recipe")
	case StdinPath:
		return recipe.Decode(stdin)
	}
	path, err := homedir.Expand(o.Path)
	if err != nil {
		return nil, errdefs.NewE(errdefs.ErrInvalidParameter, err)
	}
	return recipe.Load(o.Fs, path)
}
