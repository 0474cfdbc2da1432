// Package avatargraph decides, for an undirected simple graph and a
// chosen vertex, whether that vertex is a valid core candidate under
// the avatar-graph axioms, and derives the supporting quantities that
// decision depends on.
//
// The module is organized under focused subpackages:
//
//	core/      — the Graph, Vertex, Edge store and its thread-safe primitives
//	distance/  — shortest-path distances from a source vertex
//	avatar/    — avatar distances (child-sum relaxation with a tie-break order)
//	predicate/ — max-avatars, contractibles, along-paths, avatar connectivity, IsAvatarGraph
//	corifier/  — labels every vertex core/non-core and records its unique highest avatar
//	matrix/    — small-integer adjacency rendering
//	graphio/   — deterministic text rendering for logs and golden-file tests
//
// A minimal walk through the library:
//
//	g := core.NewGraph()
//	for i := 0; i < 4; i++ {
//		g.AddVertex(false)
//	}
//	g.AddEdge(0, 1)
//	g.AddEdge(0, 2)
//	g.AddEdge(1, 3)
//	g.AddEdge(2, 3)
//
//	if err := corifier.Corify(g); err != nil {
//		// handle err
//	}
//	// g.CountCores() == 4
//
// This package itself holds no code; it exists to document the module
// as a whole. Import the subpackage you need.
package avatargraph
