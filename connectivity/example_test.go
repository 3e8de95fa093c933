package connectivity_test

import (
	"fmt"

	"github.com/strevik/grava/connectivity"
	"github.com/strevik/grava/core"
)

// ExampleAnalyze reports on two triangles joined by a cut vertex.
func ExampleAnalyze() {
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"a", "b"}, {"b", "m"}, {"a", "m"},
		{"m", "x"}, {"x", "y"}, {"y", "m"},
	} {
		_, _ = g.AddEdge(pair[0], pair[1], 0)
	}

	rep, _ := connectivity.Analyze(g, connectivity.WithoutEfficiency())
	fmt.Println("largest:", rep.Largest)
	fmt.Println("articulation points:", rep.ArticulationPoints)
	// Output:
	// largest: 5
	// articulation points: [m]
}
