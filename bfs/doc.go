// Package bfs finds minimum-move routes across a grid.Grid with breadth-first
// search and rebuilds the route as coordinates plus cardinal moves.
//
// What
//
//   - Distances explores open cells outward from a source in increasing move
//     count, recording each cell's first-visit distance in a DistanceMap.
//     Neighbors are expanded in the fixed order grid.Moves (Down, Right, Up,
//     Left). The search stops as soon as the destination is enqueued.
//   - Reconstruct walks the DistanceMap backward from the destination, at each
//     step taking the first neighbor, checked in the order up, down, left,
//     right, whose distance is exactly one less. It returns the Path
//     (source→destination) and the Directions that realize it.
//   - Supports functional hooks (OnEnqueue, OnDequeue, OnVisit), per-step
//     filtering, a depth limit and context cancellation.
//
// Determinism
//
//	Several shortest routes may exist. Both the expansion order and the
//	backward predecessor order are fixed, so the reported route is always the
//	same for the same input.
//
// Complexity (R×C board)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C)   (queue, DistanceMap, visit order)
//
// Usage
//
//	res, err := bfs.Distances(g, src, dst)
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // no path: destination walled off, source blocked or out of bounds
//	}
//	path, dirs, err := res.PathTo()
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithFilterNeighbor(fn): skip steps for which fn(from, to) == false.
//   - WithMaxDepth(d):    never enqueue cells farther than d moves (d>0).
//   - WithOnEnqueue(fn):  hook when a cell receives its distance.
//   - WithOnDequeue(fn):  hook when a cell is taken off the queue.
//   - WithOnVisit(fn):    hook before expanding a cell; an error aborts.
//
// Errors
//
//   - ErrGridNil                 if the grid pointer is nil.
//   - ErrUnreachable             if the destination cannot be reached.
//   - ErrInvalidSource           source blocked or out of bounds (wraps ErrUnreachable).
//   - ErrDestinationOutOfBounds  destination outside the board (wraps ErrUnreachable).
//   - ErrOptionViolation         invalid Option (e.g. negative MaxDepth).
//   - ErrInconsistentMap         Reconstruct fed a map without a predecessor chain.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
