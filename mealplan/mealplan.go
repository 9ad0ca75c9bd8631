// Package mealplan manages named meal plans and derives their shopping lists
// from a recipe catalog.
package mealplan

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"kitchensage/paging"
	"kitchensage/recipe"
)

// ErrNotFound is returned for lookups of meal plans that do not exist.
var ErrNotFound = errors.New("meal plan not found")

// MealPlan is a named, ordered list of recipe references. The same recipe id
// may appear more than once to double its contribution.
type MealPlan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RecipeIDs []string  `json:"recipe_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (mp *MealPlan) clone() MealPlan {
	out := *mp
	out.RecipeIDs = append(make([]string, 0, len(mp.RecipeIDs)), mp.RecipeIDs...)
	return out
}

// ListQuery filters and pages List results.
type ListQuery struct {
	Name  string
	Skip  int
	Limit int
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator replaces the UUID generator used for new plans.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// WithClock replaces time.Now for timestamps.
func WithClock(fn func() time.Time) Option {
	return func(m *Manager) { m.now = fn }
}

// Manager owns meal plans in memory. Stored records are never mutated: every
// write swaps in a new snapshot, so concurrent readers always see either the
// old or the new plan in full.
type Manager struct {
	mu      sync.RWMutex
	plans   map[string]*MealPlan
	order   []string
	catalog recipe.Catalog
	newID   func() string
	now     func() time.Time
}

// NewManager creates a manager resolving recipes against catalog.
func NewManager(catalog recipe.Catalog, opts ...Option) *Manager {
	m := &Manager{
		plans:   map[string]*MealPlan{},
		order:   make([]string, 0),
		catalog: catalog,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create stores a new plan. Recipe ids are kept as given: neither
// deduplicated nor checked against the catalog.
func (m *Manager) Create(name string, recipeIDs []string) MealPlan {
	now := m.now().UTC()
	mp := &MealPlan{
		ID:        m.newID(),
		Name:      name,
		RecipeIDs: append(make([]string, 0, len(recipeIDs)), recipeIDs...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.plans[mp.ID] = mp
	m.order = append(m.order, mp.ID)
	m.mu.Unlock()

	slog.Info("MEALPLAN: Created", "id", mp.ID, "name", name, "recipes_count", len(recipeIDs))
	return mp.clone()
}

// Get returns the plan with the given id.
func (m *Manager) Get(id string) (MealPlan, error) {
	mp, ok := m.snapshot(id)
	if !ok {
		return MealPlan{}, ErrNotFound
	}
	return mp.clone(), nil
}

// List returns plans in creation order whose name contains q.Name
// (case-insensitive), paged by q.Skip and q.Limit, and the number of matches
// before paging.
func (m *Manager) List(q ListQuery) ([]MealPlan, int) {
	term := strings.ToLower(strings.TrimSpace(q.Name))

	m.mu.RLock()
	matches := make([]MealPlan, 0, len(m.order))
	for _, id := range m.order {
		mp := m.plans[id]
		if term != "" && !strings.Contains(strings.ToLower(mp.Name), term) {
			continue
		}
		matches = append(matches, mp.clone())
	}
	m.mu.RUnlock()

	return paging.Apply(matches, q.Skip, q.Limit), len(matches)
}

// Update replaces the name and recipe ids of a plan.
func (m *Manager) Update(id, name string, recipeIDs []string) (MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.plans[id]
	if !ok {
		return MealPlan{}, ErrNotFound
	}
	mp := &MealPlan{
		ID:        id,
		Name:      name,
		RecipeIDs: append(make([]string, 0, len(recipeIDs)), recipeIDs...),
		CreatedAt: old.CreatedAt,
		UpdatedAt: m.now().UTC(),
	}
	m.plans[id] = mp

	slog.Info("MEALPLAN: Updated", "id", id, "name", name, "recipes_count", len(recipeIDs))
	return mp.clone(), nil
}

// Delete removes a plan and reports whether it existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.plans[id]; !ok {
		return false
	}
	delete(m.plans, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}

	slog.Info("MEALPLAN: Deleted", "id", id)
	return true
}

// Ingredients computes the consolidated shopping list of a plan from the
// current catalog. Nothing is cached: every call reflects the plan and the
// catalog as they are now.
func (m *Manager) Ingredients(id string) (recipe.ShoppingList, error) {
	mp, ok := m.snapshot(id)
	if !ok {
		return recipe.ShoppingList{}, ErrNotFound
	}

	list := recipe.BuildShoppingList(m.catalog, mp.RecipeIDs)
	if len(list.MissingRecipeIDs) > 0 {
		slog.Info("MEALPLAN: Skipped recipes missing from the catalog",
			"id", id,
			"missing_recipe_ids", list.MissingRecipeIDs,
		)
	}
	return list, nil
}

func (m *Manager) snapshot(id string) (*MealPlan, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mp, ok := m.plans[id]
	return mp, ok
}
