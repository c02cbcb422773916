// Package bfs provides breadth-first search over a grid.Grid,
// returning minimum move counts and the route they imply.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     grid.Point
	depth int
}

// walker encapsulates mutable BFS state for a single Distances call.
type walker struct {
	grid  *grid.Grid
	opts  BFSOptions
	ctx   context.Context
	dst   grid.Point
	queue []queueItem
	head  int
	res   *Result
}

// Distances runs breadth-first search on g from src toward dst,
// applying any number of functional Options.
//
// A cell is valid when it is in bounds, open and not yet in the distance map;
// the source is checked with the same predicate. The search returns as soon
// as dst is enqueued, so Result.Dist holds only the cells seen up to then.
//
// Returns ErrGridNil, ErrOptionViolation, ErrInvalidSource,
// ErrDestinationOutOfBounds or ErrUnreachable on failure, plus ctx.Err() and
// wrapped OnVisit errors.
func Distances(g *grid.Grid, src, dst grid.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(dst) {
		return nil, fmt.Errorf("%w: %v", ErrDestinationOutOfBounds, dst)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		dst:   dst,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Dist:        make(DistanceMap),
			Source:      src,
			Destination: dst,
			allow:       o.FilterNeighbor,
		},
	}

	if !w.valid(src) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, src)
	}
	w.enqueue(src, 0)
	if src == dst {
		return w.res, nil
	}

	return w.loop()
}

// valid reports whether p is in bounds, open and not yet visited.
func (w *walker) valid(p grid.Point) bool {
	if !w.grid.IsOpen(p) {
		return false
	}
	_, seen := w.res.Dist[p]
	return !seen
}

// enqueue records p's final distance d, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(p grid.Point, d int) {
	w.res.Dist[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// dequeue pops the front item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.p, item.depth)
	return item
}

// loop processes the queue until the destination is found, the queue empties,
// a hook fails or the context is cancelled.
func (w *walker) loop() (*Result, error) {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return nil, err
		}
		if w.expand(item) {
			return w.res, nil
		}
	}
	return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, w.dst, w.res.Source)
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
	}
	return nil
}

// expand enqueues every valid, unfiltered neighbor of item in grid.Moves
// order and reports whether the destination was among them.
func (w *walker) expand(item queueItem) bool {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return false
	}
	for _, m := range grid.Moves {
		nb := item.p.Add(m)
		if !w.valid(nb) || !w.opts.FilterNeighbor(item.p, nb) {
			continue
		}
		w.enqueue(nb, next)
		if nb == w.dst {
			return true
		}
	}
	return false
}
