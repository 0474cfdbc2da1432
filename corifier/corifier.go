package corifier

import (
	"github.com/advancedresearch/avatar-graph/core"
	"github.com/advancedresearch/avatar-graph/predicate"
)

// Corify labels every vertex of g: a vertex i for which
// predicate.IsAvatarGraph(g, i) holds is marked core with Uniq set to
// the first vertex returned by predicate.MaxAvatars(g, i); every other
// vertex is marked non-core with Uniq cleared.
//
// Corify is deterministic and idempotent: running it twice in a row
// leaves every flag unchanged, since it only reads edges (never
// touched by a previous run) and the Core/Uniq flags it is about to
// overwrite.
func Corify(g *core.Graph, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	for i := 0; i < n; i++ {
		if predicate.IsAvatarGraph(g, i) {
			_, avatars := predicate.MaxAvatars(g, i)
			uniq := avatars[0]
			if err := g.SetCore(i, true); err != nil {
				return err
			}
			if err := g.SetUniq(i, &uniq); err != nil {
				return err
			}
			o.OnCore(i, uniq)
		} else {
			if err := g.SetCore(i, false); err != nil {
				return err
			}
			if err := g.SetUniq(i, nil); err != nil {
				return err
			}
			o.OnNonCore(i)
		}
	}

	return nil
}
