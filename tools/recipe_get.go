package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/recipe"
)

type GetRecipe struct{ catalog recipe.Catalog }

func NewGetRecipe(catalog recipe.Catalog) *GetRecipe { return &GetRecipe{catalog: catalog} }

func (t *GetRecipe) Name() string  { return "get_recipe" }
func (t *GetRecipe) Title() string { return "Get Recipe" }
func (t *GetRecipe) Description() string {
	return "Gets the full recipe (ingredients, directions, categories, times) for a recipe_id. " +
		"found is false and recipe is null when the id is unknown."
}

func (t *GetRecipe) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipe_id": stringProp("Recipe identifier."),
		},
		Required: []string{"recipe_id"},
	}
}

func (t *GetRecipe) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			// keep the recipe open so exports with extra fields pass through
			"recipe": nullable(&jsonschema.Schema{Type: "object"}),
			"found":  {Type: "boolean"},
		},
		Required: []string{"recipe", "found"},
	}
}

func (t *GetRecipe) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "recipe_id")
	if err != nil {
		return nil, err
	}

	out := struct {
		Recipe *recipe.Recipe `json:"recipe"`
		Found  bool           `json:"found"`
	}{}
	if r, ok := t.catalog.Recipe(id); ok {
		out.Recipe, out.Found = &r, true
	}
	return toOutput(out)
}
