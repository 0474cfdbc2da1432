// Package corifier provides tunable options and the Corify entry point
// for labeling every vertex of a core.Graph as core/non-core and
// recording each core's unique highest avatar.
//
// Corify never mutates edges; it only rewrites the Core and Uniq flags
// already present on core.Graph's vertices, driven entirely by the
// predicate package's pure queries.
package corifier
