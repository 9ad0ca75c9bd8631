package kitchensage

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"kitchensage/tools"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DumpCall writes a tool call and its output to w with map keys sorted.
func DumpCall(w io.Writer, call tools.Call, output map[string]any) {
	fmt.Fprintf(w, "tool: %s\n", call.Name)
	dumpConfig.Fdump(w, call.Input)
	fmt.Fprintln(w, "output:")
	dumpConfig.Fdump(w, output)
}
