package recipe

import "strings"

// ConsolidatedIngredient is one shopping list line: every ingredient line
// sharing the same normalized name and unit, merged.
type ConsolidatedIngredient struct {
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	Quantity  Quantity `json:"quantity"`
	RecipeIDs []string `json:"recipe_ids"`
}

// ShoppingList is the consolidated view of a set of recipe references.
type ShoppingList struct {
	Ingredients      []ConsolidatedIngredient `json:"ingredients"`
	MissingRecipeIDs []string                 `json:"missing_recipe_ids"`
}

type mergeKey struct {
	name, unit string
}

func keyOf(name, unit string) mergeKey {
	return mergeKey{name: normalize(name), unit: normalize(unit)}
}

// consolidator accumulates lines in first-appearance order.
type consolidator struct {
	items []ConsolidatedIngredient
	index map[mergeKey]int
}

func newConsolidator() *consolidator {
	return &consolidator{
		items: make([]ConsolidatedIngredient, 0),
		index: map[mergeKey]int{},
	}
}

func (c *consolidator) add(name, unit string, q Quantity, recipeIDs ...string) {
	k := keyOf(name, unit)
	if i, ok := c.index[k]; ok {
		item := &c.items[i]
		item.Quantity = item.Quantity.Add(q)
		item.RecipeIDs = append(item.RecipeIDs, recipeIDs...)
		return
	}
	c.index[k] = len(c.items)
	c.items = append(c.items, ConsolidatedIngredient{
		Name:      strings.TrimSpace(name),
		Unit:      strings.TrimSpace(unit),
		Quantity:  q.clone(),
		RecipeIDs: append([]string(nil), recipeIDs...),
	})
}

// Consolidate merges the ingredient lines of recipes, walked in order, into
// one list keyed by normalized name and unit. Units are compared as text and
// never converted, so the same ingredient in two units yields two entries.
func Consolidate(recipes []Recipe) []ConsolidatedIngredient {
	c := newConsolidator()
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if ing.IsHeader || strings.TrimSpace(ing.Name) == "" {
				continue
			}
			c.add(ing.Name, ing.Unit, ParseQuantity(ing.Quantity), r.ID)
		}
	}
	return c.items
}

// Merge combines already consolidated lists as if their recipes had been
// consolidated together, in argument order.
func Merge(lists ...[]ConsolidatedIngredient) []ConsolidatedIngredient {
	c := newConsolidator()
	for _, list := range lists {
		for _, item := range list {
			c.add(item.Name, item.Unit, item.Quantity, item.RecipeIDs...)
		}
	}
	return c.items
}

// BuildShoppingList resolves recipeIDs against catalog and consolidates the
// recipes found. Ids absent from the catalog are skipped and reported once
// each, in first-seen order.
func BuildShoppingList(catalog Catalog, recipeIDs []string) ShoppingList {
	recipes := make([]Recipe, 0, len(recipeIDs))
	missing := make([]string, 0)
	for _, id := range recipeIDs {
		r, ok := catalog.Recipe(id)
		if !ok {
			missing = appendDistinct(missing, id)
			continue
		}
		recipes = append(recipes, r)
	}
	return ShoppingList{
		Ingredients:      Consolidate(recipes),
		MissingRecipeIDs: missing,
	}
}
