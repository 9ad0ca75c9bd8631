package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type DeleteMealPlan struct{ plans MealPlans }

func NewDeleteMealPlan(plans MealPlans) *DeleteMealPlan { return &DeleteMealPlan{plans: plans} }

func (t *DeleteMealPlan) Name() string  { return "delete_meal_plan" }
func (t *DeleteMealPlan) Title() string { return "Delete Meal Plan" }
func (t *DeleteMealPlan) Description() string {
	return "Deletes a meal plan. deleted is false when no such plan exists."
}

func (t *DeleteMealPlan) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan_id": stringProp("Meal plan identifier."),
		},
		Required: []string{"meal_plan_id"},
	}
}

func (t *DeleteMealPlan) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"deleted": {Type: "boolean"},
		},
		Required: []string{"deleted"},
	}
}

func (t *DeleteMealPlan) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "meal_plan_id")
	if err != nil {
		return nil, err
	}
	return toOutput(map[string]any{"deleted": t.plans.Delete(id)})
}
