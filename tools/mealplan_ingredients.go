package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/mealplan"
	"kitchensage/recipe"
)

type GetMealPlanIngredients struct{ plans MealPlans }

func NewGetMealPlanIngredients(plans MealPlans) *GetMealPlanIngredients {
	return &GetMealPlanIngredients{plans: plans}
}

func (t *GetMealPlanIngredients) Name() string  { return "get_meal_plan_ingredients" }
func (t *GetMealPlanIngredients) Title() string { return "Get Meal Plan Ingredients" }
func (t *GetMealPlanIngredients) Description() string {
	return "Builds the consolidated shopping list of a meal plan. Lines sharing an ingredient name and unit are merged; " +
		"numeric quantities are summed, and a quantity mixing free-text amounts is returned as a list of amounts. " +
		"Recipe ids missing from the catalog are listed in missing_recipe_ids."
}

func (t *GetMealPlanIngredients) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan_id": stringProp("Meal plan identifier."),
		},
		Required: []string{"meal_plan_id"},
	}
}

func (t *GetMealPlanIngredients) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients":        {Type: "array", Items: consolidatedIngredientSchema()},
			"missing_recipe_ids": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"found":              {Type: "boolean"},
		},
		Required: []string{"ingredients", "missing_recipe_ids", "found"},
	}
}

func (t *GetMealPlanIngredients) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "meal_plan_id")
	if err != nil {
		return nil, err
	}

	out := struct {
		recipe.ShoppingList
		Found bool `json:"found"`
	}{
		ShoppingList: recipe.ShoppingList{
			Ingredients:      []recipe.ConsolidatedIngredient{},
			MissingRecipeIDs: []string{},
		},
	}

	list, err := t.plans.Ingredients(id)
	switch {
	case errors.Is(err, mealplan.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		out.ShoppingList, out.Found = list, true
	}
	return toOutput(out)
}
