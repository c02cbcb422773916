// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrUnreachable is returned when the destination is never enqueued.
	ErrUnreachable = errors.New("bfs: destination unreachable")

	// ErrInvalidSource is returned when the source is blocked or outside the grid.
	// It matches ErrUnreachable under errors.Is.
	ErrInvalidSource = fmt.Errorf("%w: source is blocked or out of bounds", ErrUnreachable)

	// ErrDestinationOutOfBounds is returned when the destination lies outside the grid.
	// It matches ErrUnreachable under errors.Is.
	ErrDestinationOutOfBounds = fmt.Errorf("%w: destination out of bounds", ErrUnreachable)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrInconsistentMap is returned by Reconstruct when the distance map has no
	// unbroken predecessor chain from destination back to source.
	ErrInconsistentMap = errors.New("bfs: inconsistent distance map")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued with its final distance.
	OnEnqueue func(p grid.Point, depth int)

	// OnDequeue is called when a cell is taken off the queue.
	OnDequeue func(p grid.Point, depth int)

	// OnVisit is called before a dequeued cell's neighbors are expanded.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(p grid.Point, depth int) error

	// FilterNeighbor can veto single steps by returning false.
	// Called for each candidate from→to that passed the validity check.
	FilterNeighbor func(from, to grid.Point) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every valid step allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(grid.Point, int) {},
		OnDequeue:      func(grid.Point, int) {},
		OnVisit:        func(grid.Point, int) error { return nil },
		FilterNeighbor: func(_, _ grid.Point) bool { return true },
		MaxDepth:       0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p grid.Point, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p grid.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips steps from→to when fn returns false. A skipped
// cell stays unvisited and may still be reached through another neighbor.
func WithFilterNeighbor(fn func(from, to grid.Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: never enqueue cells farther than d moves
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// DistanceMap maps every visited cell to its minimum move count from the source.
// Entries are final once written.
type DistanceMap map[grid.Point]int

// Path is an ordered run of cells from source to destination inclusive.
type Path []grid.Point

// Directions is the move sequence realizing a Path: applying Directions[i]
// to Path[i] yields Path[i+1].
type Directions []grid.Move

// String concatenates the one-letter move labels, e.g. "LDDR".
func (d Directions) String() string {
	var sb strings.Builder
	sb.Grow(len(d))
	for _, m := range d {
		sb.WriteString(m.Letter())
	}
	return sb.String()
}

// Result holds the outcome of a successful search:
//   - Dist: distance of every cell visited before the search stopped.
//   - Order: cells in the order they were dequeued for expansion.
//   - Source, Destination: the endpoints the search was run for.
type Result struct {
	Dist        DistanceMap
	Order       []grid.Point
	Source      grid.Point
	Destination grid.Point

	// allow is the FilterNeighbor the search ran with.
	allow func(from, to grid.Point) bool
}

// Distance returns the move count from Source to Destination.
func (r *Result) Distance() int {
	return r.Dist[r.Destination]
}

// PathTo reconstructs the route from Source to Destination. Steps rejected
// by the search's FilterNeighbor are never used.
func (r *Result) PathTo() (Path, Directions, error) {
	return reconstruct(r.Dist, r.Source, r.Destination, r.allow)
}
