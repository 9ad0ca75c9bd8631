package tools

import (
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"kitchensage/recipe"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// RegistryOption configures optional tools and wrappers.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	poster  Poster
	channel string
	tracer  trace.Tracer
	meter   metric.Meter
}

// WithSlack registers share_shopping_list, posting through poster to
// defaultChannel unless a call names another channel.
func WithSlack(poster Poster, defaultChannel string) RegistryOption {
	return func(o *registryOptions) {
		o.poster = poster
		o.channel = defaultChannel
	}
}

// WithInstrumentation wraps every tool with Instrument.
func WithInstrumentation(tracer trace.Tracer, meter metric.Meter) RegistryOption {
	return func(o *registryOptions) {
		o.tracer = tracer
		o.meter = meter
	}
}

// NewRegistry creates a new tool registry over a recipe catalog and a meal
// plan store.
func NewRegistry(catalog recipe.Catalog, plans MealPlans, opts ...RegistryOption) (*Registry, error) {
	if catalog == nil || plans == nil {
		return nil, errors.New("registry needs a recipe catalog and a meal plan store")
	}

	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	all := []Tool{
		NewSearchRecipes(catalog),
		NewGetRecipe(catalog),
		NewGetCategories(catalog),
		NewCreateMealPlan(plans),
		NewGetMealPlan(plans),
		NewListMealPlans(plans),
		NewUpdateMealPlan(plans),
		NewDeleteMealPlan(plans),
		NewGetMealPlanIngredients(plans),
	}
	if o.poster != nil {
		all = append(all, NewShareShoppingList(plans, o.poster, o.channel))
	}

	registry := make(Registry, len(all))
	for _, tool := range all {
		if o.tracer != nil && o.meter != nil {
			tool = Instrument(tool, o.tracer, o.meter)
		}
		registry[tool.Name()] = tool
	}
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}
