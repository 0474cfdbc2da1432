// Package core defines the Avatar Graph's Vertex/Edge store: a dense,
// index-addressed, undirected simple graph with per-vertex core/uniq
// bookkeeping, thread-safe under a single sync.RWMutex.
//
// A Graph is append-only during the editing phase (AddVertex, AddEdge)
// except for Swap, which permutes two vertex indices in place,
// RemoveSelfEdges, which deletes self-loops, and RemoveSelfUniqueEdges
// and the SetCore/SetUniq setters, which mutate the core/uniq flags.
// There is no persistence, wire format, or weighted/directed/multi-edge
// support — see the package-level Non-goals in the project's
// specification.
package core
