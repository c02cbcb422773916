// Package gridpath finds shortest routes across 2-D boards with obstacles.
//
// A board is a rectangular grid of open and blocked cells. Movement is one
// cell at a time in the four cardinal directions, every move costs the same,
// and a route may only use open cells. Breadth-first search gives the minimum
// number of moves; the route is then rebuilt both as a list of coordinates
// and as the moves (Down, Right, Up, Left) that walk it.
//
// Packages:
//
//	grid/      Grid, Point, Cell and Move types, text parsing, reachability regions
//	bfs/       distance search with early exit, hooks and options; route reconstruction
//	puzzle/    Solve(board, source, destination) and parallel SolveBatch
//	examples/  runnable sample program
//
// Quick example:
//
//	g, _ := grid.Parse([]string{
//		"-----",
//		"--#--",
//		"-----",
//	}, '#')
//	sol, err := puzzle.Solve(g, grid.Pt(0, 2), grid.Pt(2, 2))
//	// sol.Path:       [(0,2) (0,1) (1,1) (2,1) (2,2)]
//	// sol.Directions: LDDR
//
// Ties between equally short routes are broken by a fixed neighbor order, so
// the same input always yields the same route.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
