package core

import (
	"fmt"
	"strings"
)

// String renders a stable, multi-line summary of g: vertex count, the
// edge list in insertion order, and each vertex's core/uniq flags. It
// is meant for log lines and test failure messages, not for
// persistence — see the graphio package for a more detailed report.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Graph{vertices=%d edges=%d}\n", len(g.vertices), len(g.edges))
	for i, v := range g.vertices {
		fmt.Fprintf(&b, "  %d: core=%t uniq=", i, v.Core)
		if v.Uniq == nil {
			b.WriteString("-")
		} else {
			fmt.Fprintf(&b, "%d", *v.Uniq)
		}
		b.WriteString("\n")
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "  (%d, %d)\n", e.A, e.B)
	}

	return b.String()
}
