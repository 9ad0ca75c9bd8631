package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/recipe"
)

type GetCategories struct{ catalog recipe.Catalog }

func NewGetCategories(catalog recipe.Catalog) *GetCategories {
	return &GetCategories{catalog: catalog}
}

func (t *GetCategories) Name() string  { return "get_categories" }
func (t *GetCategories) Title() string { return "Get Categories" }
func (t *GetCategories) Description() string {
	return "Lists the distinct recipe categories in the catalog, sorted by name."
}

func (t *GetCategories) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func (t *GetCategories) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"categories": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"categories"},
	}
}

func (t *GetCategories) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	return toOutput(map[string]any{
		"categories": recipe.Categories(t.catalog.Recipes()),
	})
}
