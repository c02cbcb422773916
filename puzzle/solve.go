package puzzle

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// Solution is a complete shortest route.
type Solution struct {
	Path       bfs.Path
	Directions bfs.Directions
}

// Steps returns the number of moves in the route.
func (s *Solution) Steps() int {
	return len(s.Directions)
}

// String formats the route as "path directions", e.g. "[(0,0) (0,1)] R".
func (s *Solution) String() string {
	return fmt.Sprintf("%v %v", s.Path, s.Directions)
}

// Solve finds a shortest route from src to dst on g.
// Options are passed through to bfs.Distances.
func Solve(g *grid.Grid, src, dst grid.Point, opts ...bfs.Option) (*Solution, error) {
	res, err := bfs.Distances(g, src, dst, opts...)
	if err != nil {
		return nil, err
	}
	path, dirs, err := res.PathTo()
	if err != nil {
		return nil, fmt.Errorf("puzzle: reconstruct %v→%v: %w", src, dst, err)
	}
	return &Solution{Path: path, Directions: dirs}, nil
}

// Puzzle bundles one board with its endpoints.
type Puzzle struct {
	Grid        *grid.Grid
	Source      grid.Point
	Destination grid.Point
}

// BatchResult is the outcome of one puzzle in a batch. Exactly one of
// Solution and Err is set.
type BatchResult struct {
	Solution *Solution
	Err      error
}

// SolveBatch solves every puzzle using at most workers goroutines
// (runtime.NumCPU() when workers <= 0). Results are index-aligned with
// puzzles. Per-puzzle failures land in BatchResult.Err; only cancellation of
// ctx aborts the batch, returning ctx.Err().
func SolveBatch(ctx context.Context, puzzles []Puzzle, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]BatchResult, len(puzzles))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range puzzles {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			p := puzzles[i]
			sol, err := Solve(p.Grid, p.Source, p.Destination, bfs.WithContext(egCtx))
			if err != nil && egCtx.Err() != nil {
				return egCtx.Err()
			}
			results[i] = BatchResult{Solution: sol, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
