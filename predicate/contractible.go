package predicate

import (
	"sort"

	"github.com/advancedresearch/avatar-graph/core"
	"github.com/advancedresearch/avatar-graph/distance"
)

// Contractible returns the number of contractible vertices relative to
// source: vertices with exactly one neighbor whose shortest distance m
// satisfies 0 < m <= the vertex's own shortest distance n. The source
// itself (distance 0) is never counted as such a neighbor, so a vertex
// at distance 1 is contractible only when exactly one other distance-1
// vertex is adjacent to it.
func Contractible(g *core.Graph, source int) int {
	return len(ContractiblesOf(g, source))
}

// ContractiblesOf returns the contractible vertices relative to source,
// in shortest-distance-ascending order (ties broken by vertex index,
// since the ordering sort is stable over the vertex-ascending input).
func ContractiblesOf(g *core.Graph, source int) []int {
	out := distance.Distance(g, source)

	byVertex := make(map[int]uint64, len(out.Pairs))
	for _, p := range out.Pairs {
		byVertex[p.Vertex] = p.Dist
	}

	order := make([]distance.Pair, len(out.Pairs))
	copy(order, out.Pairs)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Dist < order[j].Dist })

	var res []int
	for _, p := range order {
		n := p.Dist
		count := 0
		for _, w := range g.Neighbors(p.Vertex) {
			m, ok := byVertex[w]
			if !ok || m == 0 || m > n {
				continue
			}
			count++
		}
		if count == 1 {
			res = append(res, p.Vertex)
		}
	}

	return res
}
