// Package predicate implements the structural predicates the
// avatar-graph axioms are built from — maximum avatars, contractible
// vertices, along-paths, avatar connectivity — and their composition
// into IsAvatarGraph.
//
// Every function here is a pure query: none mutate the core.Graph they
// are given.
package predicate
