package predicate

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/advancedresearch/avatar-graph/core"
	"github.com/advancedresearch/avatar-graph/distance"
)

// Along returns the vertices reachable from a when walking toward b
// along the gradient of shortest distances to b, sorted ascending. The
// second return value is false if b does not see the whole graph (any
// vertex unreachable from b counts as failure, not only a) — matching
// the reference behavior where along relies on distance(b) having
// succeeded outright.
//
// b is treated as a terminal: once reached, its own neighbors are not
// expanded, since edges incident to the target that don't already lie
// on a gradient path toward it should not pull in extra vertices.
func Along(g *core.Graph, a, b int) ([]int, bool) {
	dist := distance.Distance(g, b)
	if !dist.Connected {
		return nil, false
	}
	maxDist, ok := dist.Lookup(a)
	if !ok {
		return nil, false
	}

	reached := treeset.NewWith(utils.IntComparator, a)
	queue := []int{a}
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		dv, _ := dist.Lookup(v)
		if dv == 0 {
			// v == b: don't explore its other incident edges.
			continue
		}
		for _, w := range g.Neighbors(v) {
			if reached.Contains(w) {
				continue
			}
			dw, ok := dist.Lookup(w)
			if !ok || dw > maxDist {
				continue
			}
			reached.Add(w)
			queue = append(queue, w)
		}
	}

	values := reached.Values()
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(int)
	}

	return out, true
}

// AllReachableAlong reports whether Along(a, b) visits every vertex of
// the graph.
func AllReachableAlong(g *core.Graph, a, b int) bool {
	ids, ok := Along(g, a, b)
	if !ok {
		return false
	}

	n := g.VertexCount()
	if len(ids) != n {
		return false
	}
	for i, v := range ids {
		if v != i {
			return false
		}
	}

	return true
}
