package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type CreateMealPlan struct{ plans MealPlans }

func NewCreateMealPlan(plans MealPlans) *CreateMealPlan { return &CreateMealPlan{plans: plans} }

func (t *CreateMealPlan) Name() string  { return "create_meal_plan" }
func (t *CreateMealPlan) Title() string { return "Create Meal Plan" }
func (t *CreateMealPlan) Description() string {
	return "Creates a named meal plan from an ordered list of recipe ids. " +
		"Repeating a recipe id doubles its contribution to the shopping list; unknown ids are kept and reported later."
}

func (t *CreateMealPlan) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":       stringProp("Meal plan name."),
			"recipe_ids": stringArrayProp("Recipe ids in plan order."),
		},
		Required: []string{"name"},
	}
}

func (t *CreateMealPlan) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan": mealPlanSchema(),
		},
		Required: []string{"meal_plan"},
	}
}

func (t *CreateMealPlan) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name, err := requiredString(input, "name")
	if err != nil {
		return nil, err
	}
	ids, _, err := stringSlice(input, "recipe_ids")
	if err != nil {
		return nil, err
	}

	mp := t.plans.Create(name, ids)
	return toOutput(map[string]any{"meal_plan": mp})
}
