package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleMoves checks whether the end can be reached before any search
// runs, the way the grid editor does on every change.
func ExampleMoves() {
	g, _ := gridgraph.Parse(strings.NewReader("A*X\n*X*\n**B\n"))
	if n, ok := bfs.Moves(g); ok {
		fmt.Println("end reachable in", n, "moves")
	}

	_ = g.ToggleObstacle(gridgraph.Position{Row: 2, Col: 1})
	_ = g.ToggleObstacle(gridgraph.Position{Row: 1, Col: 0})
	if _, ok := bfs.Moves(g); !ok {
		fmt.Println("end walled off")
	}

	// Output:
	// end reachable in 3 moves
	// end walled off
}
