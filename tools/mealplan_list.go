package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/mealplan"
)

type ListMealPlans struct{ plans MealPlans }

func NewListMealPlans(plans MealPlans) *ListMealPlans { return &ListMealPlans{plans: plans} }

func (t *ListMealPlans) Name() string  { return "list_meal_plans" }
func (t *ListMealPlans) Title() string { return "List Meal Plans" }
func (t *ListMealPlans) Description() string {
	return "Lists meal plans in creation order, optionally filtered by part of the plan name, with the total number of matches."
}

func (t *ListMealPlans) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: pagingProps(map[string]*jsonschema.Schema{
			"name": stringProp("Part of the meal plan name."),
		}),
	}
}

func (t *ListMealPlans) OutputSchema() *jsonschema.Schema {
	minTotal := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plans": {Type: "array", Items: mealPlanSchema()},
			"total":      {Type: "integer", Minimum: &minTotal},
		},
		Required: []string{"meal_plans", "total"},
	}
}

func (t *ListMealPlans) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	skip, limit := page(input)
	plans, total := t.plans.List(mealplan.ListQuery{
		Name:  optionalString(input, "name"),
		Skip:  skip,
		Limit: limit,
	})

	return toOutput(map[string]any{
		"meal_plans": plans,
		"total":      total,
	})
}
