package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"kitchensage/recipe"
	"kitchensage/tools/storage"
)

// LoadCatalog reads a recipe export from state and indexes it. JSON exports
// may be a bare array or an object with a "recipes" array; anything else is
// decoded as YAML in the same two shapes.
func LoadCatalog(ctx context.Context, state storage.RecipeState) (*recipe.MemoryCatalog, error) {
	b, err := state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}

	recipes, err := decodeRecipes(b)
	if err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}

	catalog, err := recipe.NewMemoryCatalog(recipes...)
	if err != nil {
		return nil, fmt.Errorf("index recipes: %w", err)
	}

	slog.Info("SETUP: Recipe catalog loaded", "recipes_count", catalog.Len())
	return catalog, nil
}

func decodeRecipes(b []byte) ([]recipe.Recipe, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}

	switch b[0] {
	case '[':
		var recipes []recipe.Recipe
		if err := json.Unmarshal(b, &recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	case '{':
		var doc struct {
			Recipes []recipe.Recipe `json:"recipes"`
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return doc.Recipes, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var recipes []recipe.Recipe
		if err := node.Decode(&recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	case yaml.MappingNode:
		var doc struct {
			Recipes []recipe.Recipe `yaml:"recipes"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Recipes, nil
	}
	return nil, fmt.Errorf("unexpected recipe document: line %d", node.Line)
}
