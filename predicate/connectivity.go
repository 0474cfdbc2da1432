package predicate

import (
	"sort"

	"github.com/advancedresearch/avatar-graph/avatar"
	"github.com/advancedresearch/avatar-graph/core"
)

// connectivityLaw is the per-edge numeric rule linking the avatar
// distances n (of a vertex) and m (of one of its neighbors):
//
//	n == 0: m must be 1
//	n == 1: m must be 0 or > 1
//	n >= 2: m must be in (0, n) or > n
func connectivityLaw(n, m uint64) bool {
	switch {
	case n == 0:
		return m == 1
	case n == 1:
		return m == 0 || m > 1
	default:
		return (m > 0 && m < n) || m > n
	}
}

// AvatarConnectivity reports whether every edge of g obeys
// connectivityLaw for both of its endpoints' avatar distances from
// source.
func AvatarConnectivity(g *core.Graph, source int) bool {
	pairs := avatar.AvatarDistance(g, source)

	value := make(map[int]uint64, len(pairs))
	for _, p := range pairs {
		value[p.Vertex] = p.Dist
	}

	for _, p := range pairs {
		for _, w := range g.Neighbors(p.Vertex) {
			m, ok := value[w]
			if !ok {
				continue
			}
			if !connectivityLaw(p.Dist, m) {
				return false
			}
		}
	}

	return true
}

// AvatarConnectivityFailuresOf returns the vertices (excluding source)
// that participate in at least one edge violating connectivityLaw,
// sorted by avatar distance ascending (ties broken by vertex index).
func AvatarConnectivityFailuresOf(g *core.Graph, source int) []int {
	pairs := avatar.AvatarDistance(g, source)

	value := make(map[int]uint64, len(pairs))
	for _, p := range pairs {
		value[p.Vertex] = p.Dist
	}

	order := make([]avatar.Pair, len(pairs))
	copy(order, pairs)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Dist < order[j].Dist })

	var res []int
	for _, p := range order {
		if p.Vertex == source {
			continue
		}
		failed := false
		for _, w := range g.Neighbors(p.Vertex) {
			m, ok := value[w]
			if !ok {
				continue
			}
			if !connectivityLaw(p.Dist, m) {
				failed = true
				break
			}
		}
		if failed {
			res = append(res, p.Vertex)
		}
	}

	return res
}
