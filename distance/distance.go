package distance

import (
	"sort"

	"github.com/advancedresearch/avatar-graph/core"
)

// Pair associates a vertex with its shortest distance from the source.
type Pair struct {
	Vertex int
	Dist   uint64
}

// Outcome is the result of Distance: Pairs sorted ascending by Vertex,
// and Connected reporting whether every vertex of the graph was
// reached. When Connected is false, Pairs holds only the reachable
// vertices (still sorted by Vertex) — the "partial" result the
// specification's Failure case carries.
type Outcome struct {
	Pairs     []Pair
	Connected bool
}

// queueItem pairs a vertex with the depth it was discovered at, the
// same shape as the teacher's bfs.queueItem.
type queueItem struct {
	vertex int
	depth  uint64
}

// Distance computes shortest-path distances from source over g.
//
// A graph consisting of exactly one vertex is a documented exception:
// the specification's described algorithm terminates before declaring
// success on a singleton (its main placement loop never runs because
// the source is trivially "already placed"), so Distance preserves
// that quirk rather than special-casing singletons into a trivial
// success — callers that want success on a singleton must special-case
// it themselves.
func Distance(g *core.Graph, source int) Outcome {
	n := g.VertexCount()
	if n == 1 {
		return Outcome{Pairs: []Pair{{Vertex: source, Dist: 0}}, Connected: false}
	}

	visited := make(map[int]uint64, n)
	visited[source] = 0
	queue := []queueItem{{vertex: source, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, w := range g.Neighbors(item.vertex) {
			if _, seen := visited[w]; seen {
				continue
			}
			visited[w] = item.depth + 1
			queue = append(queue, queueItem{vertex: w, depth: item.depth + 1})
		}
	}

	pairs := make([]Pair, 0, len(visited))
	for v, d := range visited {
		pairs = append(pairs, Pair{Vertex: v, Dist: d})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Vertex < pairs[j].Vertex })

	return Outcome{Pairs: pairs, Connected: len(visited) == n}
}

// Lookup returns the distance of v within o.Pairs and whether it was
// present, a small convenience for callers (avatar, predicate) that
// need O(log n) random access instead of a linear scan.
func (o Outcome) Lookup(v int) (uint64, bool) {
	i := sort.Search(len(o.Pairs), func(i int) bool { return o.Pairs[i].Vertex >= v })
	if i < len(o.Pairs) && o.Pairs[i].Vertex == v {
		return o.Pairs[i].Dist, true
	}

	return 0, false
}
