// Package lvminor is an in-memory engine for exploring graph minors.
//
// A graph is branched along one of its edges into two children: one with the
// edge deleted and one with the edge contracted. Every child is relaxed by a
// force-directed layout, and each change to the exploration tree is a new
// snapshot that can be reverted.
//
// Packages:
//
//	vector/   2-D vectors with tolerance-based equality
//	matrix/   symmetric boolean adjacency matrix
//	core/     Graph, Node and Edge, edge contraction, node removal
//	builder/  seed graphs: reference, lattice, grid, path, cycle, complete, star, wheel
//	layout/   force layout engine and the tick scheduler
//	explore/  layered exploration tree with undo
//	metrics/  Prometheus collectors for layout and tree activity
//
// The lvminor command (cmd/lvminor) wires these into a demo, an interactive
// terminal explorer and an HTTP server.
package lvminor
