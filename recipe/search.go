package recipe

import (
	"sort"
	"strings"

	"kitchensage/paging"
)

// Query holds the optional search criteria. Blank terms and a nil
// MaxTotalTime impose no constraint; given criteria are combined with AND.
type Query struct {
	Name         string
	Category     string
	Ingredient   string
	MaxTotalTime *int
	Skip         int
	Limit        int
}

// Search filters recipes by q, keeping their order, and returns the requested
// page along with the number of matches before pagination.
func Search(recipes []Recipe, q Query) (matches []Recipe, total int) {
	m := newMatcher(q)
	all := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if m.match(r) {
			all = append(all, r)
		}
	}
	return paging.Apply(all, q.Skip, q.Limit), len(all)
}

// Matches reports whether r satisfies every criterion in q. Pagination fields
// are ignored.
func Matches(r Recipe, q Query) bool {
	return newMatcher(q).match(r)
}

type matcher struct {
	name, category, ingredient string
	maxTotalTime               *int
}

func newMatcher(q Query) matcher {
	return matcher{
		name:         normalize(q.Name),
		category:     normalize(q.Category),
		ingredient:   normalize(q.Ingredient),
		maxTotalTime: q.MaxTotalTime,
	}
}

func (m matcher) match(r Recipe) bool {
	if m.name != "" && !strings.Contains(strings.ToLower(r.Name), m.name) {
		return false
	}
	if m.category != "" && !anyContains(r.Categories, m.category) {
		return false
	}
	if m.ingredient != "" && !m.hasIngredient(r) {
		return false
	}
	if m.maxTotalTime != nil {
		total, ok := r.TotalMinutes()
		if !ok || total > *m.maxTotalTime {
			return false
		}
	}
	return true
}

func (m matcher) hasIngredient(r Recipe) bool {
	for _, ing := range r.Ingredients {
		if ing.IsHeader {
			continue
		}
		if strings.Contains(strings.ToLower(ing.Name), m.ingredient) {
			return true
		}
	}
	return false
}

func anyContains(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Categories returns the distinct category names used by recipes, compared
// case-insensitively, keeping the first spelling seen and sorted by name.
func Categories(recipes []Recipe) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, r := range recipes {
		for _, c := range r.Categories {
			c = strings.TrimSpace(c)
			key := strings.ToLower(c)
			if c == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
