// Package dijkstra_test provides runnable examples for the shortest-path engine.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/collabgraph/core"
	"github.com/katalvlaran/collabgraph/dijkstra"
)

// ExamplePathBetween builds a tiny co-authorship graph and prints the path
// from one author to another with cumulative distances.
func ExamplePathBetween() {
	// 1) Ada and Bob wrote paper 1; Bob and Cy wrote paper 2; Bob also wrote paper 3 alone.
	g := core.NewGraph()
	entries := []core.Entry{
		{Publication: core.Publication{StrID: "p1", IntID: 1}, Authors: []core.Author{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Bob"}}},
		{Publication: core.Publication{StrID: "p2", IntID: 2}, Authors: []core.Author{{ID: 2, Name: "Bob"}, {ID: 3, Name: "Cy"}}},
		{Publication: core.Publication{StrID: "p3", IntID: 3}, Authors: []core.Author{{ID: 2, Name: "Bob"}}},
	}
	for _, e := range entries {
		if err := g.AddEntry(e); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// 2) Fix the Jaccard weights: Ada–Bob = 1 − 1/3, Bob–Cy = 1 − 1/3.
	if err := g.AssignWeights(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Path from Ada to Cy.
	path, err := dijkstra.PathBetween(g, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range path {
		fmt.Printf("%s %.4f\n", s.Name, s.Distance)
	}
	// Output:
	// Ada 0.0000
	// Bob 0.6667
	// Cy 1.3333
}
