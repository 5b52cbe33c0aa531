// Package explore keeps the branching history of graph edits.
//
// A Tree is organised in layers (generations). Layer L has b^L slots, where b
// is the branching factor (default 2), and each slot holds at most one
// *core.Graph. The tree starts with layer 0 allocated and empty.
//
// Derivation rule: editing the graph at (L, s) by deleting an edge and, in a
// second copy, contracting it publishes the two children at (L+1, b·s) and
// (L+1, b·s+1). The parent of (L, s) is therefore (L−1, ⌊s/b⌋), so ancestor
// chains are recovered by index arithmetic alone.
//
// Every successful Push appends an immutable snapshot of all layers to the
// history; Revert drops the newest snapshot (never the initial one). Push
// copies only the outer layer slice and the touched layer, so snapshots share
// untouched layers and Revert is a slice pop.
//
// Ownership: a published slot owns its graph. Branch and Edit always clone
// before changing structure, so a graph reachable from history is never
// structurally mutated. Layout ticks may still move its nodes.
//
// Concurrency: all methods are safe for concurrent use; Push, Revert, Branch
// and Edit are serialized.
package explore
