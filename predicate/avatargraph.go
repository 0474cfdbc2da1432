package predicate

import (
	"github.com/advancedresearch/avatar-graph/core"
	"github.com/advancedresearch/avatar-graph/distance"
)

// IsAvatarGraph reports whether g is an avatar graph rooted at source:
//
//  1. no vertex may be contractible relative to source.
//  2. g must be connected from source.
//  3. the maximum avatar distance must be reached by exactly one vertex.
//  4. every vertex must lie along that unique avatar's gradient path
//     back to source.
//  5. every edge must satisfy AvatarConnectivity.
//
// Each check short-circuits; a graph that fails an earlier one is never
// tested against the later ones.
func IsAvatarGraph(g *core.Graph, source int) bool {
	if Contractible(g, source) != 0 {
		return false
	}
	if !distance.Distance(g, source).Connected {
		return false
	}

	_, avatars := MaxAvatars(g, source)
	if len(avatars) != 1 {
		return false
	}

	if !AllReachableAlong(g, avatars[0], source) {
		return false
	}

	return AvatarConnectivity(g, source)
}
