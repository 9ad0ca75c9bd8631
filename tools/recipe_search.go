package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/recipe"
)

type SearchRecipes struct{ catalog recipe.Catalog }

func NewSearchRecipes(catalog recipe.Catalog) *SearchRecipes {
	return &SearchRecipes{catalog: catalog}
}

func (t *SearchRecipes) Name() string  { return "search_recipes" }
func (t *SearchRecipes) Title() string { return "Search Recipes" }
func (t *SearchRecipes) Description() string {
	return "Searches recipes by name, category, ingredient and maximum total time in minutes. " +
		"Every criterion is optional and matched case-insensitively as a substring; given criteria must all match. " +
		"Returns one page of recipe summaries plus the total number of matches."
}

func (t *SearchRecipes) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: pagingProps(map[string]*jsonschema.Schema{
			"name":       stringProp("Part of the recipe name."),
			"category":   stringProp("Part of a category name."),
			"ingredient": stringProp("Part of an ingredient name."),
			"max_total_time": {
				Type:        "integer",
				Description: "Maximum total preparation time in minutes. Recipes with unknown time never match.",
			},
		}),
	}
}

func (t *SearchRecipes) OutputSchema() *jsonschema.Schema {
	minTotal := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipes": {Type: "array", Items: recipeSummarySchema()},
			"total":   {Type: "integer", Minimum: &minTotal},
		},
		Required: []string{"recipes", "total"},
	}
}

func (t *SearchRecipes) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	q := recipe.Query{
		Name:       optionalString(input, "name"),
		Category:   optionalString(input, "category"),
		Ingredient: optionalString(input, "ingredient"),
	}
	if v, ok := optionalInt(input, "max_total_time"); ok {
		q.MaxTotalTime = &v
	}
	q.Skip, q.Limit = page(input)

	matches, total := recipe.Search(t.catalog.Recipes(), q)

	out := struct {
		Recipes []recipeSummary `json:"recipes"`
		Total   int             `json:"total"`
	}{
		Recipes: make([]recipeSummary, 0, len(matches)),
		Total:   total,
	}
	for _, r := range matches {
		out.Recipes = append(out.Recipes, summarize(r))
	}
	return toOutput(out)
}

// recipeSummary is the compact projection returned by searches.
type recipeSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     int      `json:"rating,omitempty"`
	Categories []string `json:"categories"`
	PrepTime   string   `json:"prep_time,omitempty"`
	CookTime   string   `json:"cook_time,omitempty"`
	TotalTime  *int     `json:"total_time,omitempty"`
}

func summarize(r recipe.Recipe) recipeSummary {
	s := recipeSummary{
		ID:         r.ID,
		Name:       r.Name,
		Rating:     r.Rating,
		Categories: append(make([]string, 0, len(r.Categories)), r.Categories...),
		PrepTime:   r.PrepTime,
		CookTime:   r.CookTime,
	}
	if minutes, ok := r.TotalMinutes(); ok {
		s.TotalTime = &minutes
	}
	return s
}
