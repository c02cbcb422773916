package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// predecessor is one backward probe: where to look relative to the current
// cell, and the forward move that leads from there back to the current cell.
type predecessor struct {
	dr, dc int
	move   grid.Move
}

// backOrder is the fixed predecessor probe order: up, down, left, right.
// The first probe whose distance is one less wins, which decides between
// equally short routes.
var backOrder = [4]predecessor{
	{-1, 0, grid.Down},
	{1, 0, grid.Up},
	{0, -1, grid.Right},
	{0, 1, grid.Left},
}

// Reconstruct rebuilds the route from src to dst out of a distance map
// produced by Distances.
//
// Starting at dst with d = dist[dst], it repeatedly picks the first neighbor
// in backOrder whose distance is d−1, until the zero-distance cell is
// reached, then reverses the collected cells and moves.
//
// Guarantees on success: path[0] == src, path[len-1] == dst,
// len(path) == dist[dst]+1, len(dirs) == dist[dst], and
// path[i].Add(dirs[i]) == path[i+1].
//
// Returns ErrInconsistentMap if dst is missing, its distance is negative or
// not smaller than len(dist), a step finds no predecessor, or the chain ends
// somewhere other than src.
func Reconstruct(dist DistanceMap, src, dst grid.Point) (Path, Directions, error) {
	return reconstruct(dist, src, dst, nil)
}

// reconstruct is Reconstruct restricted to steps allow accepts; nil allows all.
func reconstruct(dist DistanceMap, src, dst grid.Point, allow func(from, to grid.Point) bool) (Path, Directions, error) {
	remaining, ok := dist[dst]
	if !ok || remaining < 0 {
		return nil, nil, fmt.Errorf("%w: destination %v not in map", ErrInconsistentMap, dst)
	}
	// a chain of length d needs d+1 distinct entries
	if remaining >= len(dist) {
		return nil, nil, fmt.Errorf("%w: distance %d exceeds map size %d", ErrInconsistentMap, remaining, len(dist))
	}

	path := make(Path, 0, remaining+1)
	dirs := make(Directions, 0, remaining)
	path = append(path, dst)

	cur := dst
	for remaining--; remaining >= 0; remaining-- {
		found := false
		for _, pr := range backOrder {
			nb := grid.Pt(cur.Row+pr.dr, cur.Col+pr.dc)
			if d, ok := dist[nb]; ok && d == remaining && (allow == nil || allow(nb, cur)) {
				path = append(path, nb)
				dirs = append(dirs, pr.move)
				cur = nb
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: no predecessor of %v at distance %d", ErrInconsistentMap, cur, remaining)
		}
	}
	if cur != src {
		return nil, nil, fmt.Errorf("%w: chain ends at %v, not source %v", ErrInconsistentMap, cur, src)
	}

	slices.Reverse(path)
	slices.Reverse(dirs)
	return path, dirs, nil
}
