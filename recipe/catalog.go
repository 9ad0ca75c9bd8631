package recipe

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrMissingID is returned when a recipe without an id is indexed.
	ErrMissingID = errors.New("recipe has no id")
	// ErrDuplicateID is returned when two recipes share an id.
	ErrDuplicateID = errors.New("duplicate recipe id")
)

// Catalog provides read-only recipe snapshots in their natural order.
type Catalog interface {
	Recipe(id string) (Recipe, bool)
	Recipes() []Recipe
}

// Compile-time interface check.
var _ Catalog = (*MemoryCatalog)(nil)

// MemoryCatalog is an ordered, indexed set of recipes. Safe for concurrent use.
type MemoryCatalog struct {
	mu      sync.RWMutex
	recipes []Recipe
	index   map[string]int
}

// NewMemoryCatalog builds a catalog keeping the given order. Every recipe
// needs a unique, non-empty id.
func NewMemoryCatalog(recipes ...Recipe) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		recipes: make([]Recipe, 0, len(recipes)),
		index:   make(map[string]int, len(recipes)),
	}
	for i, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("recipe %d (%q): %w", i, r.Name, ErrMissingID)
		}
		if _, ok := c.index[r.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		c.index[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}
	return c, nil
}

// Recipe looks up a recipe by id.
func (c *MemoryCatalog) Recipe(id string) (Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i], true
}

// Recipes returns the recipes in catalog order.
func (c *MemoryCatalog) Recipes() []Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Len returns the number of recipes.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// Put adds a recipe at the end of the catalog or replaces the recipe with the
// same id in place.
func (c *MemoryCatalog) Put(r Recipe) error {
	if r.ID == "" {
		return ErrMissingID
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[r.ID]; ok {
		c.recipes[i] = r
		return nil
	}
	c.index[r.ID] = len(c.recipes)
	c.recipes = append(c.recipes, r)
	return nil
}

// Remove deletes a recipe. It reports whether the recipe existed.
func (c *MemoryCatalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	recipes := make([]Recipe, 0, len(c.recipes)-1)
	recipes = append(recipes, c.recipes[:i]...)
	recipes = append(recipes, c.recipes[i+1:]...)
	c.recipes = recipes

	delete(c.index, id)
	for j := i; j < len(c.recipes); j++ {
		c.index[c.recipes[j].ID] = j
	}
	return true
}
