// Package avatar computes avatar distances: the child-sum relaxation of
// shortest-path distances described in the project's specification.
//
// An avatar distance is the number of paths a vertex has to the chosen
// core. It is derived from the shortest-distance vector by processing
// vertices in ascending shortest-distance order, broken by descending
// child count, and summing each vertex's already-processed neighbors
// (its "children" in this order — not necessarily strictly closer to
// the core, since two same-distance neighbors may each serve as the
// other's child depending on vertex order; this is the documented
// "semi-contractibility" case of the avatar-graph model).
//
// The two-key sort (distance, then negated child count) is expressed
// with github.com/emirpasic/gods/utils comparators composed by hand,
// the way the pack's JodeZer/dag manifest pairs graph code with gods
// for ordered-structure needs.
package avatar
