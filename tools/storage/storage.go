// Package storage loads raw recipe exports from files, S3 objects or memory.
package storage

import (
	"context"
	"errors"
)

// RecipeState returns the raw bytes of a recipe export.
type RecipeState interface {
	Load(ctx context.Context) ([]byte, error)
}

// TestRecipeState is a simple in-memory implementation for testing
type TestRecipeState struct {
	data  []byte
	err   error
	loads int
}

func NewTestRecipeState(data []byte) *TestRecipeState {
	return &TestRecipeState{data: data}
}

func NewTestRecipeStateWithError() *TestRecipeState {
	return &TestRecipeState{err: errors.New("not found")}
}

func (t *TestRecipeState) Load(ctx context.Context) ([]byte, error) {
	t.loads++
	if t.err != nil {
		return nil, t.err
	}
	return t.data, nil
}

// Loads reports how many times Load was called.
func (t *TestRecipeState) Loads() int { return t.loads }
