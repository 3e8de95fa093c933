package core_test

import (
	"fmt"

	"github.com/strevik/grava/core"
)

// Build a small undirected graph, remove its hub, and watch the incident
// edges disappear with it.
func ExampleGraph_RemoveVertex() {
	g := core.NewGraph()
	g.AddEdge("Hub", "A", 0)
	g.AddEdge("Hub", "B", 0)
	g.AddEdge("A", "B", 0)

	fmt.Println("edges before:", g.EdgeCount())

	if err := g.RemoveVertex("Hub"); err != nil {
		fmt.Println("remove failed:", err)
		return
	}
	fmt.Println("edges after:", g.EdgeCount())
	fmt.Println("vertices:", g.Vertices())

	// Output:
	// edges before: 3
	// edges after: 1
	// vertices: [A B]
}

// Weighted graphs carry float64 weights; unweighted graphs report 1 for
// every existing edge.
func ExampleGraph_EdgeWeight() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 2.5)

	w, _ := g.EdgeWeight("A", "B")
	fmt.Println("weight:", w)

	// Output:
	// weight: 2.5
}
