package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedMessage struct {
	channel, text string
}

type recordingPoster struct {
	err      error
	messages []postedMessage
}

func (p *recordingPoster) PostMessage(ctx context.Context, channel string, message string) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, postedMessage{channel: channel, text: message})
	return nil
}

func TestShareShoppingList_Run(t *testing.T) {
	catalog := newTestCatalog(t)
	plans := newTestManager(t, catalog)
	mp := plans.Create("Brunch", []string{"omelet", "missing"})

	t.Run("posts to the default channel", func(t *testing.T) {
		poster := &recordingPoster{}
		tool := NewShareShoppingList(plans, poster, "#groceries")

		out := run(t, tool, map[string]any{"meal_plan_id": mp.ID})
		assert.Equal(t, map[string]any{"posted": true, "channel": "#groceries", "found": true}, out)

		require.Len(t, poster.messages, 1)
		assert.Equal(t, "#groceries", poster.messages[0].channel)
		assert.Equal(t, "*Shopping list: Brunch*\n"+
			"• 3 egg\n"+
			"• bunch chives\n"+
			"_Recipes not found: missing_\n", poster.messages[0].text)
	})

	t.Run("channel override", func(t *testing.T) {
		poster := &recordingPoster{}
		tool := NewShareShoppingList(plans, poster, "#groceries")

		out := run(t, tool, map[string]any{"meal_plan_id": mp.ID, "channel": "#family"})
		assert.Equal(t, "#family", out["channel"])
		require.Len(t, poster.messages, 1)
		assert.Equal(t, "#family", poster.messages[0].channel)
	})

	t.Run("unknown plan posts nothing", func(t *testing.T) {
		poster := &recordingPoster{}
		tool := NewShareShoppingList(plans, poster, "#groceries")

		out := run(t, tool, map[string]any{"meal_plan_id": "nope"})
		assert.Equal(t, map[string]any{"posted": false, "channel": "#groceries", "found": false}, out)
		assert.Empty(t, poster.messages)
	})

	t.Run("delivery failure is a tool error", func(t *testing.T) {
		cause := errors.New("webhook down")
		tool := NewShareShoppingList(plans, &recordingPoster{err: cause}, "#groceries")

		_, err := tool.Run(context.Background(), map[string]any{"meal_plan_id": mp.ID})
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "post shopping list")
	})
}
