package kitchensage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchensage/tools"
)

func TestDumpCall(t *testing.T) {
	var buf bytes.Buffer
	DumpCall(&buf, tools.Call{Name: "get_recipe", Input: map[string]any{"recipe_id": "tea"}}, map[string]any{
		"found":  true,
		"recipe": nil,
	})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "tool: get_recipe\n"))
	assert.Contains(t, out, `"recipe_id"`)
	assert.Contains(t, out, "output:")
	assert.Less(t, strings.Index(out, `"found"`), strings.Index(out, `"recipe"`), "keys are sorted")
}
