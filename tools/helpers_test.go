package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"kitchensage/mealplan"
	"kitchensage/recipe"
	"kitchensage/tools/storage"
)

const testCatalogJSON = `{
  "recipes": [
    {
      "id": "pancakes",
      "name": "Buttermilk Pancakes",
      "rating": 5,
      "categories": ["Breakfast", "Sweet"],
      "prep_time": "10 mins",
      "cook_time": "15 mins",
      "ingredients": [
        {"name": "flour", "quantity": "2", "unit": "cup"},
        {"name": "egg", "qty": 2},
        {"name": "salt", "quantity": "1/2", "unit": "tsp"}
      ],
      "directions": [{"step": 1, "text": "Whisk."}, {"step": 2, "text": "Fry."}]
    },
    {
      "id": "bread",
      "name": "Country Bread",
      "categories": ["Baking"],
      "total_time": 240,
      "ingredients": [
        {"name": "For the dough:", "is_header": true},
        {"name": "Flour", "quantity": "1 1/2", "unit": "Cup"},
        {"name": "salt", "quantity": "a pinch", "unit": "tsp"}
      ]
    },
    {
      "id": "omelet",
      "name": "Herb Omelet",
      "categories": ["breakfast"],
      "prep_time": "5 minutes",
      "ingredients": [
        {"name": "egg", "quantity": "3"},
        {"name": "chives", "unit": "bunch"}
      ]
    }
  ]
}`

func newTestCatalog(t *testing.T) *recipe.MemoryCatalog {
	t.Helper()
	catalog, err := LoadCatalog(context.Background(), storage.NewTestRecipeState([]byte(testCatalogJSON)))
	require.NoError(t, err)
	return catalog
}

func newTestManager(t *testing.T, catalog recipe.Catalog) *mealplan.Manager {
	t.Helper()
	n := 0
	return mealplan.NewManager(catalog, mealplan.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("plan-%d", n)
	}))
}

func run(t *testing.T, tool Tool, input map[string]any) map[string]any {
	t.Helper()
	out, err := tool.Run(context.Background(), input)
	require.NoError(t, err)
	return out
}
