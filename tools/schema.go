package tools

import "github.com/modelcontextprotocol/go-sdk/jsonschema"

func stringProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func stringArrayProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

// pagingProps adds the skip and limit properties shared by list operations.
func pagingProps(props map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	props["skip"] = &jsonschema.Schema{
		Type:        "integer",
		Description: "Number of matches to skip. Negative values are treated as 0.",
	}
	props["limit"] = &jsonschema.Schema{
		Type:        "integer",
		Description: "Maximum number of matches to return. 0 or less returns every remaining match.",
	}
	return props
}

func recipeSummarySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":         {Type: "string"},
			"name":       {Type: "string"},
			"rating":     {Type: "integer"},
			"categories": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"prep_time":  {Type: "string"},
			"cook_time":  {Type: "string"},
			"total_time": {Type: "integer"},
		},
		Required: []string{"id", "name", "categories"},
	}
}

func mealPlanSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":         {Type: "string"},
			"name":       {Type: "string"},
			"recipe_ids": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"created_at": {Type: "string"},
			"updated_at": {Type: "string"},
		},
		Required: []string{"id", "name", "recipe_ids"},
	}
}

func nullable(s *jsonschema.Schema) *jsonschema.Schema {
	s.Types = []string{s.Type, "null"}
	s.Type = ""
	return s
}

// consolidatedIngredientSchema describes one shopping list line. A numeric
// total is a string; a total mixing free-text amounts is an array.
func consolidatedIngredientSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"unit": {Type: "string"},
			"quantity": {
				AnyOf: []*jsonschema.Schema{
					{Type: "string"},
					{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				},
			},
			"recipe_ids": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"name", "unit", "quantity", "recipe_ids"},
	}
}
