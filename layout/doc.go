// Package layout relaxes node positions of a core.Graph with a simple
// force model and drives that relaxation from an external tick source.
//
// Per tick, for every node i at p_i (all positions read from one snapshot):
//
//	repulsion  = Σ_{j≠i} û_ij · (−Repulsion / |p_j − p_i|²)   (coincident j skipped)
//	attraction = Σ_{j∈N(i)} Attraction · (p_j − p_i)
//	gravity    = Gravity · normalize(−p_i)
//	F_i        = repulsion + attraction + gravity
//
// followed by semi-implicit Euler integration:
//
//	v_i += F_i·dt
//	p_i += v_i·dt
//
// where û_ij is the unit vector from i to j. A positive Repulsion pushes
// nodes apart; any coefficient set to zero disables that force.
//
// A graph is settled when every F_i is zero under vector.Epsilon. Because the
// check uses the forces the tick integrated with, a node that moved in tick t
// is never reported in equilibrium at tick t.
//
// Engine.Tick is the per-graph step. Scheduler fans ticks out over tracked
// graphs (bounded by Concurrency) whenever its TickSource fires, and stops
// stepping a graph once it settles; structural edits re-arm it via Wake.
//
// Complexity: one tick is O(V²) per graph.
package layout
