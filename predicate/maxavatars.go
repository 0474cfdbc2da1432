package predicate

import (
	"github.com/advancedresearch/avatar-graph/avatar"
	"github.com/advancedresearch/avatar-graph/core"
)

// MaxAvatars returns the maximum avatar distance reachable from source
// and every vertex achieving it, in ascending index order. The maximum
// over a graph with no vertices is 0 with an empty list.
func MaxAvatars(g *core.Graph, source int) (uint64, []int) {
	pairs := avatar.AvatarDistance(g, source)

	var max uint64
	var at []int
	for _, p := range pairs {
		switch {
		case p.Dist > max:
			max = p.Dist
			at = []int{p.Vertex}
		case p.Dist == max:
			at = append(at, p.Vertex)
		}
	}

	return max, at
}
