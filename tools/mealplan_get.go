package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type GetMealPlan struct{ plans MealPlans }

func NewGetMealPlan(plans MealPlans) *GetMealPlan { return &GetMealPlan{plans: plans} }

func (t *GetMealPlan) Name() string  { return "get_meal_plan" }
func (t *GetMealPlan) Title() string { return "Get Meal Plan" }
func (t *GetMealPlan) Description() string {
	return "Gets a meal plan by meal_plan_id. found is false when no such plan exists."
}

func (t *GetMealPlan) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan_id": stringProp("Meal plan identifier."),
		},
		Required: []string{"meal_plan_id"},
	}
}

func (t *GetMealPlan) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan": nullable(mealPlanSchema()),
			"found":     {Type: "boolean"},
		},
		Required: []string{"meal_plan", "found"},
	}
}

func (t *GetMealPlan) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "meal_plan_id")
	if err != nil {
		return nil, err
	}

	res, err := newPlanResult(t.plans.Get(id))
	if err != nil {
		return nil, err
	}
	return toOutput(res)
}
