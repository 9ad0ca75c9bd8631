package slack

import (
	"fmt"
	"strings"

	"kitchensage/recipe"
)

// FormatShoppingList renders a consolidated shopping list as Slack mrkdwn.
func FormatShoppingList(title string, list recipe.ShoppingList) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Shopping list: %s*\n", title)

	if len(list.Ingredients) == 0 {
		sb.WriteString("_Nothing to buy._\n")
	}
	for _, item := range list.Ingredients {
		sb.WriteString("• ")
		sb.WriteString(formatLine(item))
		sb.WriteString("\n")
	}

	if len(list.MissingRecipeIDs) > 0 {
		fmt.Fprintf(&sb, "_Recipes not found: %s_\n", strings.Join(list.MissingRecipeIDs, ", "))
	}
	return sb.String()
}

func formatLine(item recipe.ConsolidatedIngredient) string {
	parts := make([]string, 0, 3)
	if amount := item.Quantity.String(); amount != "" {
		parts = append(parts, amount)
	}
	if item.Unit != "" {
		parts = append(parts, item.Unit)
	}
	parts = append(parts, item.Name)
	return strings.Join(parts, " ")
}
