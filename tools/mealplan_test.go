package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanTools_Lifecycle(t *testing.T) {
	catalog := newTestCatalog(t)
	plans := newTestManager(t, catalog)

	out := run(t, NewCreateMealPlan(plans), map[string]any{
		"name":       "Week 1",
		"recipe_ids": []any{"pancakes", "bread", "ghost", "pancakes"},
	})
	created := out["meal_plan"].(map[string]any)
	assert.Equal(t, "plan-1", created["id"])
	assert.Equal(t, "Week 1", created["name"])
	assert.Equal(t, []any{"pancakes", "bread", "ghost", "pancakes"}, created["recipe_ids"])
	assert.NotEmpty(t, created["created_at"])

	t.Run("get", func(t *testing.T) {
		out := run(t, NewGetMealPlan(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, true, out["found"])
		assert.Equal(t, created, out["meal_plan"])
	})

	t.Run("list", func(t *testing.T) {
		run(t, NewCreateMealPlan(plans), map[string]any{"name": "Holiday"})

		out := run(t, NewListMealPlans(plans), map[string]any{"name": "week"})
		assert.Equal(t, 1.0, out["total"])
		assert.Len(t, out["meal_plans"], 1)

		out = run(t, NewListMealPlans(plans), map[string]any{"skip": 1.0})
		assert.Equal(t, 2.0, out["total"])
		page := out["meal_plans"].([]any)
		require.Len(t, page, 1)
		assert.Equal(t, "Holiday", page[0].(map[string]any)["name"])
	})

	t.Run("ingredients", func(t *testing.T) {
		out := run(t, NewGetMealPlanIngredients(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, true, out["found"])
		assert.Equal(t, []any{"ghost"}, out["missing_recipe_ids"])
		assert.Equal(t, []any{
			map[string]any{
				"name":       "flour",
				"unit":       "cup",
				"quantity":   "5.5",
				"recipe_ids": []any{"pancakes", "bread", "pancakes"},
			},
			map[string]any{
				"name":       "egg",
				"unit":       "",
				"quantity":   "4",
				"recipe_ids": []any{"pancakes", "pancakes"},
			},
			map[string]any{
				"name":       "salt",
				"unit":       "tsp",
				"quantity":   []any{"1/2", "a pinch"},
				"recipe_ids": []any{"pancakes", "bread", "pancakes"},
			},
		}, out["ingredients"])
	})

	t.Run("update replaces the recipe list", func(t *testing.T) {
		out := run(t, NewUpdateMealPlan(plans), map[string]any{
			"meal_plan_id": "plan-1",
			"name":         "Week 1 (light)",
			"recipe_ids":   []any{"omelet"},
		})
		assert.Equal(t, true, out["found"])
		updated := out["meal_plan"].(map[string]any)
		assert.Equal(t, []any{"omelet"}, updated["recipe_ids"])
		assert.Equal(t, created["created_at"], updated["created_at"])

		out = run(t, NewGetMealPlanIngredients(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, []any{
			map[string]any{"name": "egg", "unit": "", "quantity": "3", "recipe_ids": []any{"omelet"}},
			map[string]any{"name": "chives", "unit": "bunch", "quantity": "", "recipe_ids": []any{"omelet"}},
		}, out["ingredients"])
		assert.Equal(t, []any{}, out["missing_recipe_ids"])
	})

	t.Run("delete", func(t *testing.T) {
		out := run(t, NewDeleteMealPlan(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, map[string]any{"deleted": true}, out)

		out = run(t, NewDeleteMealPlan(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, map[string]any{"deleted": false}, out)
	})

	t.Run("deleted plan is reported as not found", func(t *testing.T) {
		out := run(t, NewGetMealPlan(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, map[string]any{"meal_plan": nil, "found": false}, out)

		out = run(t, NewGetMealPlanIngredients(plans), map[string]any{"meal_plan_id": "plan-1"})
		assert.Equal(t, map[string]any{
			"ingredients":        []any{},
			"missing_recipe_ids": []any{},
			"found":              false,
		}, out)

		out = run(t, NewUpdateMealPlan(plans), map[string]any{
			"meal_plan_id": "plan-1",
			"name":         "again",
			"recipe_ids":   []any{},
		})
		assert.Equal(t, map[string]any{"meal_plan": nil, "found": false}, out)
	})
}

func TestMealPlanTools_InvalidInput(t *testing.T) {
	plans := newTestManager(t, newTestCatalog(t))

	tests := []struct {
		name    string
		tool    Tool
		input   map[string]any
		wantErr string
	}{
		{
			name:    "create without a name",
			tool:    NewCreateMealPlan(plans),
			input:   map[string]any{"recipe_ids": []any{"bread"}},
			wantErr: "name is required",
		},
		{
			name:    "create with a non-string recipe id",
			tool:    NewCreateMealPlan(plans),
			input:   map[string]any{"name": "x", "recipe_ids": []any{"bread", 7.0}},
			wantErr: "recipe_ids[1] must be a string, got float64",
		},
		{
			name:    "create with recipe_ids that is not an array",
			tool:    NewCreateMealPlan(plans),
			input:   map[string]any{"name": "x", "recipe_ids": "bread"},
			wantErr: "recipe_ids must be an array of strings, got string",
		},
		{
			name:    "update without recipe ids",
			tool:    NewUpdateMealPlan(plans),
			input:   map[string]any{"meal_plan_id": "plan-1", "name": "x"},
			wantErr: "recipe_ids is required",
		},
		{
			name:    "get without an id",
			tool:    NewGetMealPlan(plans),
			input:   map[string]any{},
			wantErr: "meal_plan_id is required",
		},
		{
			name:    "delete without an id",
			tool:    NewDeleteMealPlan(plans),
			input:   map[string]any{"meal_plan_id": 12.0},
			wantErr: "meal_plan_id is required",
		},
		{
			name:    "ingredients without an id",
			tool:    NewGetMealPlanIngredients(plans),
			input:   map[string]any{},
			wantErr: "meal_plan_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tool.Run(context.Background(), tt.input)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCreateMealPlan_AcceptsStringSlices(t *testing.T) {
	plans := newTestManager(t, newTestCatalog(t))
	out := run(t, NewCreateMealPlan(plans), map[string]any{
		"name":       "From the CLI",
		"recipe_ids": []string{"omelet", "omelet"},
	})
	assert.Equal(t, []any{"omelet", "omelet"}, out["meal_plan"].(map[string]any)["recipe_ids"])
}
