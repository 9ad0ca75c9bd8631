package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type UpdateMealPlan struct{ plans MealPlans }

func NewUpdateMealPlan(plans MealPlans) *UpdateMealPlan { return &UpdateMealPlan{plans: plans} }

func (t *UpdateMealPlan) Name() string  { return "update_meal_plan" }
func (t *UpdateMealPlan) Title() string { return "Update Meal Plan" }
func (t *UpdateMealPlan) Description() string {
	return "Replaces the name and the full recipe id list of a meal plan. " +
		"This is not a patch: recipe_ids becomes the complete new list. found is false when no such plan exists."
}

func (t *UpdateMealPlan) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan_id": stringProp("Meal plan identifier."),
			"name":         stringProp("New meal plan name."),
			"recipe_ids":   stringArrayProp("Complete new list of recipe ids in plan order."),
		},
		Required: []string{"meal_plan_id", "name", "recipe_ids"},
	}
}

func (t *UpdateMealPlan) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan": nullable(mealPlanSchema()),
			"found":     {Type: "boolean"},
		},
		Required: []string{"meal_plan", "found"},
	}
}

func (t *UpdateMealPlan) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "meal_plan_id")
	if err != nil {
		return nil, err
	}
	name, err := requiredString(input, "name")
	if err != nil {
		return nil, err
	}
	ids, ok, err := stringSlice(input, "recipe_ids")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("recipe_ids is required")
	}

	res, err := newPlanResult(t.plans.Update(id, name, ids))
	if err != nil {
		return nil, err
	}
	return toOutput(res)
}
