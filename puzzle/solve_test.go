package puzzle_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/puzzle"
)

func referenceBoard(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.Parse([]string{
		"-----",
		"--#--",
		"-----",
		"#-##-",
		"-#---",
	}, '#')
	require.NoError(t, err)
	return g
}

// TestSolve_Reference covers the reference board scenarios end to end.
func TestSolve_Reference(t *testing.T) {
	g := referenceBoard(t)

	sol, err := puzzle.Solve(g, grid.Pt(0, 2), grid.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, sol.Steps())
	assert.Equal(t, "[(0,2) (0,1) (1,1) (2,1) (2,2)] LDDR", sol.String())

	sol, err = puzzle.Solve(g, grid.Pt(0, 0), grid.Pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, "RRRRDDDD", sol.Directions.String())
}

// TestSolve_Degenerate checks that source == destination yields ([source], []).
func TestSolve_Degenerate(t *testing.T) {
	g := referenceBoard(t)
	sol, err := puzzle.Solve(g, grid.Pt(3, 1), grid.Pt(3, 1))
	require.NoError(t, err)
	assert.Equal(t, bfs.Path{grid.Pt(3, 1)}, sol.Path)
	assert.Empty(t, sol.Directions)
	assert.Equal(t, 0, sol.Steps())
}

// TestSolve_NoRoute verifies that every failure is absent-with-error.
func TestSolve_NoRoute(t *testing.T) {
	g := referenceBoard(t)
	cases := []struct {
		name          string
		src, dst      grid.Point
		invalidSource bool
	}{
		{"BlockedSource", grid.Pt(1, 2), grid.Pt(0, 0), true},
		{"BlockedSourceAnyDestination", grid.Pt(3, 0), grid.Pt(4, 4), true},
		{"SourceOutOfBounds", grid.Pt(0, 7), grid.Pt(0, 0), true},
		{"WalledOffDestination", grid.Pt(0, 0), grid.Pt(4, 0), false},
		{"DestinationOutOfBounds", grid.Pt(0, 0), grid.Pt(-1, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := puzzle.Solve(g, tc.src, tc.dst)
			assert.Nil(t, sol)
			assert.ErrorIs(t, err, bfs.ErrUnreachable)
			assert.Equal(t, tc.invalidSource, errors.Is(err, bfs.ErrInvalidSource))
		})
	}
}

// TestSolve_WalledCenter walls a destination on all four sides.
func TestSolve_WalledCenter(t *testing.T) {
	g := grid.MustParse([]string{
		"-----",
		"--#--",
		"-#-#-",
		"--#--",
	}, '#')
	_, err := puzzle.Solve(g, grid.Pt(0, 0), grid.Pt(2, 2))
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

// TestSolve_OptionsPassThrough shows bfs options reach the search.
func TestSolve_OptionsPassThrough(t *testing.T) {
	g := referenceBoard(t)
	_, err := puzzle.Solve(g, grid.Pt(0, 0), grid.Pt(4, 4), bfs.WithMaxDepth(3))
	assert.ErrorIs(t, err, bfs.ErrUnreachable)

	_, err = puzzle.Solve(g, grid.Pt(0, 0), grid.Pt(4, 4), bfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	noLeftTurnIntoCenter := func(from, to grid.Point) bool {
		return !(from == grid.Pt(2, 1) && to == grid.Pt(2, 2))
	}
	sol, err := puzzle.Solve(g, grid.Pt(0, 2), grid.Pt(2, 2), bfs.WithFilterNeighbor(noLeftTurnIntoCenter))
	require.NoError(t, err)
	assert.Equal(t, "RDDL", sol.Directions.String())
}

// TestSolveBatch checks index alignment and per-puzzle errors.
func TestSolveBatch(t *testing.T) {
	g := referenceBoard(t)
	var puzzles []puzzle.Puzzle
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			puzzles = append(puzzles, puzzle.Puzzle{Grid: g, Source: grid.Pt(0, 0), Destination: grid.Pt(r, c)})
		}
	}

	for _, workers := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			results, err := puzzle.SolveBatch(context.Background(), puzzles, workers)
			require.NoError(t, err)
			require.Len(t, results, len(puzzles))

			for i, res := range results {
				p := puzzles[i]
				if g.Connected(p.Source, p.Destination) {
					require.NoError(t, res.Err, "%v", p.Destination)
					assert.Equal(t, p.Destination, res.Solution.Path[len(res.Solution.Path)-1])
				} else {
					assert.Nil(t, res.Solution)
					assert.ErrorIs(t, res.Err, bfs.ErrUnreachable, "%v", p.Destination)
				}
			}
			// (4,4) is eight moves from the corner
			assert.Equal(t, 8, results[len(results)-1].Solution.Steps())
		})
	}
}

// TestSolveBatch_Cancelled aborts the whole batch.
func TestSolveBatch_Cancelled(t *testing.T) {
	g := referenceBoard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := puzzle.SolveBatch(ctx, []puzzle.Puzzle{
		{Grid: g, Source: grid.Pt(0, 0), Destination: grid.Pt(4, 4)},
	}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

// TestSolveBatch_Empty returns an empty, non-nil result slice.
func TestSolveBatch_Empty(t *testing.T) {
	results, err := puzzle.SolveBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
