package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"kitchensage/mealplan"
	"kitchensage/slack"
)

// Poster delivers a text message to a channel.
type Poster interface {
	PostMessage(ctx context.Context, channel string, message string) error
}

type ShareShoppingList struct {
	plans          MealPlans
	poster         Poster
	defaultChannel string
}

func NewShareShoppingList(plans MealPlans, poster Poster, defaultChannel string) *ShareShoppingList {
	return &ShareShoppingList{plans: plans, poster: poster, defaultChannel: defaultChannel}
}

func (t *ShareShoppingList) Name() string  { return "share_shopping_list" }
func (t *ShareShoppingList) Title() string { return "Share Shopping List" }
func (t *ShareShoppingList) Description() string {
	return "Posts the consolidated shopping list of a meal plan to Slack. " +
		"channel is optional and defaults to the configured channel. found is false when no such plan exists."
}

func (t *ShareShoppingList) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"meal_plan_id": stringProp("Meal plan identifier."),
			"channel":      stringProp("Slack channel, e.g. #groceries."),
		},
		Required: []string{"meal_plan_id"},
	}
}

func (t *ShareShoppingList) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"posted":  {Type: "boolean"},
			"channel": {Type: "string"},
			"found":   {Type: "boolean"},
		},
		Required: []string{"posted", "channel", "found"},
	}
}

func (t *ShareShoppingList) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := requiredString(input, "meal_plan_id")
	if err != nil {
		return nil, err
	}
	channel := optionalString(input, "channel")
	if channel == "" {
		channel = t.defaultChannel
	}

	out := struct {
		Posted  bool   `json:"posted"`
		Channel string `json:"channel"`
		Found   bool   `json:"found"`
	}{Channel: channel}

	mp, err := t.plans.Get(id)
	if errors.Is(err, mealplan.ErrNotFound) {
		return toOutput(out)
	}
	if err != nil {
		return nil, err
	}
	list, err := t.plans.Ingredients(id)
	if err != nil {
		return nil, err
	}
	out.Found = true

	if err := t.poster.PostMessage(ctx, channel, slack.FormatShoppingList(mp.Name, list)); err != nil {
		return nil, fmt.Errorf("post shopping list: %w", err)
	}
	out.Posted = true
	return toOutput(out)
}
