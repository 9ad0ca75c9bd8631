// Package recipe holds the recipe catalog model together with the search and
// ingredient consolidation engines that operate on it.
package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recipe is a read-only snapshot of a catalog entry.
type Recipe struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Source      string       `json:"source,omitempty" yaml:"source,omitempty"`
	Rating      int          `json:"rating,omitempty" yaml:"rating,omitempty"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Directions  []Direction  `json:"directions" yaml:"directions"`
	Categories  []string     `json:"categories" yaml:"categories"`
	PrepTime    string       `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime    string       `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime   *int         `json:"total_time,omitempty" yaml:"total_time,omitempty"`
}

// Ingredient is a single line of a recipe's ingredient list. Header lines
// ("For the sauce:") carry only a name and are skipped by search and
// consolidation.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Quantity string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty" yaml:"unit,omitempty"`
	IsHeader bool   `json:"is_header,omitempty" yaml:"is_header,omitempty"`
}

// Direction is one numbered preparation step.
type Direction struct {
	Step int    `json:"step" yaml:"step"`
	Text string `json:"text" yaml:"text"`
}

// TotalMinutes reports the total preparation time in minutes. An explicit
// TotalTime wins; otherwise the parseable parts of PrepTime and CookTime are
// summed. ok is false when nothing is known.
func (r Recipe) TotalMinutes() (minutes int, ok bool) {
	if r.TotalTime != nil {
		return *r.TotalTime, true
	}
	prep, prepOK := ParseMinutes(r.PrepTime)
	cook, cookOK := ParseMinutes(r.CookTime)
	if !prepOK && !cookOK {
		return 0, false
	}
	return prep + cook, true
}

// UnmarshalJSON accepts the quantity either as a string or as a bare JSON
// number, under "quantity" or the short "qty" key.
func (i *Ingredient) UnmarshalJSON(b []byte) error {
	type plain Ingredient
	var raw struct {
		plain
		Quantity json.RawMessage `json:"quantity"`
		Qty      json.RawMessage `json:"qty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = Ingredient(raw.plain)

	q := raw.Quantity
	if len(q) == 0 || string(q) == "null" {
		q = raw.Qty
	}
	text, err := quantityText(q)
	if err != nil {
		return fmt.Errorf("ingredient %q: %w", i.Name, err)
	}
	i.Quantity = text
	return nil
}

func quantityText(raw json.RawMessage) (string, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return "", nil
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse quantity: %w", err)
		}
		return text, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("quantity must be a string or a number: %w", err)
	}
	return n.String(), nil
}
