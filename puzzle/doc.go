// Package puzzle is the entry point for solving grid puzzles: given a board,
// a source and a destination, it returns the shortest route as cells and as
// cardinal moves, or reports that none exists.
//
// Solve composes bfs.Distances and bfs.Reconstruct. A missing route is an
// error satisfying errors.Is(err, bfs.ErrUnreachable); this covers a walled-off
// destination, a blocked or out-of-range source, and an out-of-range
// destination. errors.Is(err, bfs.ErrInvalidSource) tells a bad source apart.
//
// SolveBatch solves many independent puzzles in parallel. Each solve owns its
// own queue and distance map, so no locking is involved.
package puzzle
