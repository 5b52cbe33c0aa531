// Command lvminor explores graph minors: it branches a graph by deleting or
// contracting edges, relaxes every result with a force layout, and keeps an
// undo history of the exploration tree.
package main

func main() {
	Execute()
}
