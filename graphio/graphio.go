package graphio

import (
	"fmt"
	"strings"

	"github.com/advancedresearch/avatar-graph/core"
)

// Render writes g's core.Graph.String() summary followed by a degree
// table (vertex index, neighbor count, neighbor list in Neighbors order) to a
// single string. The degree table is derived entirely from
// g.Neighbors, so it reflects self-loops as a degree of (at least) 2
// the same way Neighbors does.
func Render(g *core.Graph) string {
	var b strings.Builder
	b.WriteString(g.String())
	b.WriteString("degrees:\n")

	n := g.VertexCount()
	for v := 0; v < n; v++ {
		neighbors := g.Neighbors(v)
		fmt.Fprintf(&b, "  %d: degree=%d neighbors=%v\n", v, len(neighbors), neighbors)
	}

	return b.String()
}
