package tools

import (
	"errors"

	"kitchensage/mealplan"
	"kitchensage/recipe"
)

// MealPlans is the meal plan store the meal plan tools operate on.
type MealPlans interface {
	Create(name string, recipeIDs []string) mealplan.MealPlan
	Get(id string) (mealplan.MealPlan, error)
	List(q mealplan.ListQuery) ([]mealplan.MealPlan, int)
	Update(id, name string, recipeIDs []string) (mealplan.MealPlan, error)
	Delete(id string) bool
	Ingredients(id string) (recipe.ShoppingList, error)
}

var _ MealPlans = (*mealplan.Manager)(nil)

// planResult is the shared {meal_plan, found} output shape. A missing plan is
// reported through found rather than as an error.
type planResult struct {
	MealPlan *mealplan.MealPlan `json:"meal_plan"`
	Found    bool               `json:"found"`
}

func newPlanResult(mp mealplan.MealPlan, err error) (planResult, error) {
	if errors.Is(err, mealplan.ErrNotFound) {
		return planResult{}, nil
	}
	if err != nil {
		return planResult{}, err
	}
	return planResult{MealPlan: &mp, Found: true}, nil
}
