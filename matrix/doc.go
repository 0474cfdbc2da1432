// Package matrix renders a core.Graph as a small-integer N×N table: a
// debug/inspection view, not a wire format. See Matrix for the exact,
// deliberately asymmetric encoding.
package matrix
