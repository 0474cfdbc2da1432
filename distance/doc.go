// Package distance computes unweighted shortest-path distances from a
// source vertex over a core.Graph.
//
// Distance explores vertices in a breadth-first queue, the way the
// teacher package's bfs.BFS walks a queue of (id, depth) items — the
// specification itself notes that "implementations that use canonical
// BFS and produce the same numerical distances satisfy the spec" in
// place of the two-phase coarse-scan-then-relax algorithm it describes
// at design level, since canonical BFS never produces the
// over-estimates that scan order would otherwise need a relaxation
// pass to correct.
//
// A source not connected to every vertex is not an error: Distance
// reports Outcome.Connected == false and still returns the reachable,
// sorted-by-vertex partial result, mirroring the Success/Failure
// duality of the original algorithm without forcing callers through
// Go's error-handling idiom for an expected graph shape.
package distance
