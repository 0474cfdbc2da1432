package avatar

import (
	"sort"

	"github.com/emirpasic/gods/utils"

	"github.com/advancedresearch/avatar-graph/core"
	"github.com/advancedresearch/avatar-graph/distance"
)

// Pair is the (vertex, avatar distance) result shape; identical to
// distance.Pair since both describe a vertex-keyed uint64 quantity.
type Pair = distance.Pair

// node is the working record carried through the two reorderings.
type node struct {
	vertex   int
	value    uint64
	children int
}

// AvatarDistance returns the avatar distance of every vertex relative
// to source, sorted ascending by vertex. g need not be connected from
// source: distance.Distance's partial result is accepted as input the
// same as a full one.
func AvatarDistance(g *core.Graph, source int) []Pair {
	out := distance.Distance(g, source)

	nodes := make([]node, len(out.Pairs))
	for i, p := range out.Pairs {
		nodes[i] = node{vertex: p.Vertex, value: p.Dist}
	}

	// Step 1: order by shortest distance ascending (stable keeps the
	// original vertex-ascending order for ties).
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].value < nodes[j].value })

	// position maps a vertex to its index in the current `nodes` order,
	// kept in sync across both reorderings below.
	position := make(map[int]int, len(nodes))
	for i, nd := range nodes {
		position[nd.vertex] = i
	}

	// Step 2: count children — neighbors that precede this vertex in
	// the current order (not neighbors with strictly smaller value;
	// see doc.go on semi-contractibility).
	for i := range nodes {
		count := 0
		for _, w := range g.Neighbors(nodes[i].vertex) {
			if pos, ok := position[w]; ok && pos < i {
				count++
			}
		}
		nodes[i].children = count
	}

	// Step 3: re-sort by (distance asc, children desc). Descending
	// child count is a negated-ascending comparison, composed from
	// gods/utils primitives rather than a bespoke less-func.
	sort.SliceStable(nodes, func(i, j int) bool {
		if c := utils.UInt64Comparator(nodes[i].value, nodes[j].value); c != 0 {
			return c < 0
		}
		return utils.IntComparator(-nodes[i].children, -nodes[j].children) < 0
	})
	for i, nd := range nodes {
		position[nd.vertex] = i
	}

	// Step 4: walk in this order, summing each already-processed
	// neighbor's current value (a zero value contributes 1), and
	// raise this vertex's value to that sum if larger.
	for i := range nodes {
		var sum uint64
		for _, w := range g.Neighbors(nodes[i].vertex) {
			pos, ok := position[w]
			if !ok || pos >= i {
				continue
			}
			m := nodes[pos].value
			if m == 0 {
				m = 1
			}
			sum += m
		}
		if sum > nodes[i].value {
			nodes[i].value = sum
		}
	}

	// Step 5: sort by vertex index ascending and return.
	pairs := make([]Pair, len(nodes))
	for i, nd := range nodes {
		pairs[i] = Pair{Vertex: nd.vertex, Dist: nd.value}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Vertex < pairs[j].Vertex })

	return pairs
}
