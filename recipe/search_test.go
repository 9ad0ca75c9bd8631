package recipe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func fixtureRecipes() []Recipe {
	return []Recipe{
		{
			ID: "1", Name: "Chicken Curry", Categories: []string{"Dinner", "Indian"},
			Ingredients: []Ingredient{{Name: "Chicken thighs", Quantity: "500", Unit: "g"}, {Name: "Curry paste", Quantity: "2", Unit: "tbsp"}},
			TotalTime:   intPtr(45),
		},
		{
			ID: "2", Name: "Pancakes", Categories: []string{"Breakfast"},
			Ingredients: []Ingredient{{Name: "For the batter:", IsHeader: true}, {Name: "flour", Quantity: "2", Unit: "cup"}, {Name: "egg", Quantity: "1"}},
			PrepTime:    "10 mins", CookTime: "15 mins",
		},
		{
			ID: "3", Name: "Chicken Noodle Soup", Categories: []string{"Soups", "Dinner"},
			Ingredients: []Ingredient{{Name: "chicken breast", Quantity: "2"}, {Name: "egg noodles", Quantity: "200", Unit: "g"}},
		},
		{
			ID: "4", Name: "Overnight Oats", Categories: []string{"breakfast", "Make-ahead"},
			Ingredients: []Ingredient{{Name: "oats", Quantity: "1/2", Unit: "cup"}, {Name: "milk", Quantity: "1/2", Unit: "cup"}},
			TotalTime:   intPtr(5),
		},
	}
}

func idsOf(recipes []Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	recipes := fixtureRecipes()

	tests := []struct {
		name      string
		query     Query
		wantIDs   []string
		wantTotal int
	}{
		{name: "no criteria returns everything in catalog order", query: Query{}, wantIDs: []string{"1", "2", "3", "4"}, wantTotal: 4},
		{name: "name is a case-insensitive substring", query: Query{Name: "CHICKEN"}, wantIDs: []string{"1", "3"}, wantTotal: 2},
		{name: "blank terms are ignored", query: Query{Name: "   ", Category: ""}, wantIDs: []string{"1", "2", "3", "4"}, wantTotal: 4},
		{name: "category matches any category by substring", query: Query{Category: "breakfast"}, wantIDs: []string{"2", "4"}, wantTotal: 2},
		{name: "category partial term", query: Query{Category: "ind"}, wantIDs: []string{"1"}, wantTotal: 1},
		{name: "ingredient matches any ingredient line", query: Query{Ingredient: "egg"}, wantIDs: []string{"2", "3"}, wantTotal: 2},
		{name: "header lines never match ingredients", query: Query{Ingredient: "batter"}, wantIDs: []string{}, wantTotal: 0},
		{name: "max total time excludes unknown times", query: Query{MaxTotalTime: intPtr(30)}, wantIDs: []string{"2", "4"}, wantTotal: 2},
		{name: "max total time is inclusive", query: Query{MaxTotalTime: intPtr(45)}, wantIDs: []string{"1", "2", "4"}, wantTotal: 3},
		{name: "criteria combine with AND", query: Query{Name: "chicken", Category: "dinner", MaxTotalTime: intPtr(60)}, wantIDs: []string{"1"}, wantTotal: 1},
		{name: "no match", query: Query{Name: "lasagna"}, wantIDs: []string{}, wantTotal: 0},
		{name: "skip and limit window the matches", query: Query{Skip: 1, Limit: 2}, wantIDs: []string{"2", "3"}, wantTotal: 4},
		{name: "negative pagination is clamped", query: Query{Skip: -3, Limit: -1}, wantIDs: []string{"1", "2", "3", "4"}, wantTotal: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := Search(recipes, tt.query)
			assert.Equal(t, tt.wantIDs, idsOf(got))
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestSearchSkipPastMatches(t *testing.T) {
	recipes := make([]Recipe, 0, 10)
	for i := 0; i < 10; i++ {
		name := "Salad"
		if i < 7 {
			name = "Tomato Soup"
		}
		recipes = append(recipes, Recipe{ID: fmt.Sprint(i), Name: name})
	}

	got, total := Search(recipes, Query{Name: "soup", Skip: 10, Limit: 5})
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Equal(t, 7, total)
}

func TestCategories(t *testing.T) {
	got := Categories(fixtureRecipes())
	assert.Equal(t, []string{"Breakfast", "Dinner", "Indian", "Make-ahead", "Soups"}, got)
	assert.Equal(t, []string{}, Categories(nil))
}

var (
	searchNames       = []string{"Tomato Soup", "Chicken Salad", "Beef Stew", "Green salad", "Tomato Tart"}
	searchCategories  = []string{"Dinner", "Lunch", "Vegetarian", "Soups"}
	searchIngredients = []string{"tomato", "chicken", "beef", "lettuce", "onion"}
	nameTerms         = []interface{}{"", "tomato", "SALAD", "stew", "x"}
	categoryTerms     = []interface{}{"", "dinner", "veg", "soups"}
	ingredientTerms   = []interface{}{"", "tomato", "CHICK", "onion"}
)

// generatedRecipes derives a catalog from integer seeds.
func generatedRecipes(seeds []int) []Recipe {
	out := make([]Recipe, 0, len(seeds))
	for i, s := range seeds {
		r := Recipe{
			ID:         fmt.Sprintf("r%d", i),
			Name:       searchNames[s%len(searchNames)],
			Categories: []string{searchCategories[(s/5)%len(searchCategories)]},
			Ingredients: []Ingredient{
				{Name: searchIngredients[(s/20)%len(searchIngredients)]},
				{Name: searchIngredients[(s/100)%len(searchIngredients)]},
			},
		}
		if s%7 != 0 {
			r.TotalTime = intPtr((s / 7) % 120)
		}
		out = append(out, r)
	}
	return out
}

// satisfies restates every predicate independently of the engine.
func satisfies(r Recipe, q Query) bool {
	lower := strings.ToLower
	if q.Name != "" && !strings.Contains(lower(r.Name), lower(q.Name)) {
		return false
	}
	if q.Category != "" {
		found := false
		for _, c := range r.Categories {
			found = found || strings.Contains(lower(c), lower(q.Category))
		}
		if !found {
			return false
		}
	}
	if q.Ingredient != "" {
		found := false
		for _, ing := range r.Ingredients {
			found = found || strings.Contains(lower(ing.Name), lower(q.Ingredient))
		}
		if !found {
			return false
		}
	}
	if q.MaxTotalTime != nil && (r.TotalTime == nil || *r.TotalTime > *q.MaxTotalTime) {
		return false
	}
	return true
}

func TestSearchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	query := func(name, category, ingredient string, maxTime int) Query {
		q := Query{Name: name, Category: category, Ingredient: ingredient}
		if maxTime >= 0 {
			q.MaxTotalTime = intPtr(maxTime)
		}
		return q
	}

	properties.Property("results are exactly the recipes satisfying every predicate", prop.ForAll(
		func(seeds []int, name, category, ingredient string, maxTime int) bool {
			recipes := generatedRecipes(seeds)
			q := query(name, category, ingredient, maxTime)
			got, total := Search(recipes, q)

			want := make([]string, 0)
			for _, r := range recipes {
				if satisfies(r, q) {
					want = append(want, r.ID)
				}
			}
			return fmt.Sprint(idsOf(got)) == fmt.Sprint(want) && total == len(want)
		},
		gen.SliceOf(gen.IntRange(0, 5000)),
		gen.OneConstOf(nameTerms...),
		gen.OneConstOf(categoryTerms...),
		gen.OneConstOf(ingredientTerms...),
		gen.IntRange(-1, 130),
	))

	properties.Property("total does not depend on skip or limit", prop.ForAll(
		func(seeds []int, name string, skip, limit int) bool {
			recipes := generatedRecipes(seeds)
			_, full := Search(recipes, Query{Name: name})
			page, total := Search(recipes, Query{Name: name, Skip: skip, Limit: limit})

			wantLen := full - skip
			if skip < 0 {
				wantLen = full
			}
			if wantLen < 0 {
				wantLen = 0
			}
			if limit > 0 && wantLen > limit {
				wantLen = limit
			}
			return total == full && len(page) == wantLen
		},
		gen.SliceOf(gen.IntRange(0, 5000)),
		gen.OneConstOf(nameTerms...),
		gen.IntRange(-5, 40),
		gen.IntRange(-5, 40),
	))

	properties.Property("Matches agrees with Search", prop.ForAll(
		func(seeds []int, ingredient string) bool {
			recipes := generatedRecipes(seeds)
			q := Query{Ingredient: ingredient}
			got, _ := Search(recipes, q)
			n := 0
			for _, r := range recipes {
				if Matches(r, q) {
					n++
				}
			}
			return n == len(got)
		},
		gen.SliceOf(gen.IntRange(0, 5000)),
		gen.OneConstOf(ingredientTerms...),
	))

	properties.TestingRun(t)
}
