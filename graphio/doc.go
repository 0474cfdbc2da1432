// Package graphio renders a core.Graph as deterministic, ordering-stable
// text for logs and golden-file tests: a vertex/edge listing plus a
// per-vertex degree table.
//
// This is a debug/log view, not a wire or persistence format — there is
// no corresponding parser, and none is planned.
package graphio
