// File: dijkstra/example_test.go
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: stepping a search and marking the result
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine drives a search one Step at a time, as an animation loop
// would, then paints every tied shortest path.
// Scenario:
//
//   - the obstacle in the middle splits the grid into two equal routes
//   - both routes are marked, and neither needs a bifurcation cell
func ExampleEngine() {
	g, err := gridgraph.Parse(strings.NewReader("A**\n*X*\n**B\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	e := dijkstra.New()
	if err = e.Init(g); err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		done, err := e.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if done {
			break
		}
	}

	dst, _ := e.Destination()
	fmt.Printf("%s after %d steps, distance %.3f\n", e.State(), e.Steps(), dst.Distance)
	fmt.Println("marked:", e.MarkShortestPaths())
	fmt.Print(g)

	// Output:
	// reachable after 8 steps, distance 3.414
	// marked: 4
	// Ao.
	// oXo
	// .oB
}
