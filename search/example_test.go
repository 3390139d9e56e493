// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/gridpath/gridpath/grid"
	"github.com/gridpath/gridpath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: AStar and Dijkstra on a walled board
////////////////////////////////////////////////////////////////////////////////

// ExampleAStar runs both algorithms on a 5×5 board whose column 2 is walled
// except for the bottom cell, going from (0,0) to (0,4).
//
//	S . # . E
//	. . # . .
//	. . # . .
//	. . # . .
//	. . . . .
//
// Both report 11 cells between start and end; they differ in how much of the
// board they expand.
func ExampleAStar() {
	for _, alg := range []search.Algorithm{search.AlgAStar, search.AlgDijkstra} {
		g, _ := grid.New(5, 500)
		for r := 0; r < 4; r++ {
			_ = g.At(r, 2).SetBarrier()
		}
		start, end := g.At(0, 0), g.At(0, 4)
		_ = start.SetRole(grid.RoleStart)
		_ = end.SetRole(grid.RoleEnd)
		g.RefreshAllNeighbors()

		res, err := search.Run(alg, g, start, end, nil)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-8s found=%v length=%d expanded=%d\n", alg, res.Found, res.Length, res.Expanded)
		fmt.Println("path:", res.Path)
	}

	// Output:
	// astar    found=true length=11 expanded=20
	// path: [(0,0) (0,1) (1,1) (2,1) (3,1) (4,1) (4,2) (4,3) (3,3) (2,3) (1,3) (0,3) (0,4)]
	// dijkstra found=true length=11 expanded=20
	// path: [(0,0) (1,0) (2,0) (3,0) (4,0) (4,1) (4,2) (4,3) (3,3) (2,3) (1,3) (0,3) (0,4)]
}

// ExampleDijkstra_abort shows a caller-side abort: the observer stops the
// search after three expansions.
func ExampleDijkstra_abort() {
	g, _ := grid.New(8, 800)
	g.RefreshAllNeighbors()

	steps := 0
	_, err := search.Dijkstra(g, g.At(0, 0), g.At(7, 7), func() error {
		steps++
		if steps == 3 {
			return fmt.Errorf("user quit")
		}
		return nil
	})
	fmt.Println(err)

	// Output:
	// search: aborted by step observer: user quit
}
