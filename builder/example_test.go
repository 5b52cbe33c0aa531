package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvminor/builder"
)

// ExampleReference shows the exploration seed graph.
func ExampleReference() {
	g, err := builder.Reference()
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Len(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Println(e.U.Position, e.V.Position)
	}
	// Output:
	// 9 5
	// (0, 0) (0, 5)
	// (0, 0) (5, 0)
	// (0, 0) (5, 5)
	// (0, 10) (5, 5)
	// (5, 5) (10, 5)
}
