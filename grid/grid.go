package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular board. It is safe for concurrent readers.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	return FromFunc(cells, func(c Cell) bool { return c == Blocked })
}

// FromFunc constructs a Grid from any rectangular 2D slice, classifying each
// value with blocked. Values for which blocked returns false are open.
func FromFunc[T any](values [][]T, blocked func(T) bool) (*Grid, error) {
	if blocked == nil {
		return nil, ErrNilDiscriminator
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]Cell, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]Cell, w)
		for c, v := range values[r] {
			if blocked(v) {
				cells[r][c] = Blocked
			}
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Parse builds a Grid from text rows. Every occurrence of the blocked rune is
// an obstacle; any other rune is open. Rows are measured in runes.
func Parse(rows []string, blocked rune) (*Grid, error) {
	values := make([][]rune, len(rows))
	for i, row := range rows {
		values[i] = []rune(row)
	}
	return FromFunc(values, func(r rune) bool { return r == blocked })
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows []string, blocked rune) *Grid {
	g, err := Parse(rows, blocked)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within [0,R)×[0,C).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsOpen reports whether p is in bounds and not blocked.
func (g *Grid) IsOpen(p Point) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Open
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Point) (Cell, error) {
	if !g.InBounds(p) {
		return Blocked, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.cells[p.Row][p.Col], nil
}

// String draws the board, one line per row, '.' open and '#' blocked.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the board with path overlaid: 'S' marks the first point,
// 'D' the last, '*' every point in between. Out-of-bounds points are ignored.
func (g *Grid) Render(path []Point) string {
	canvas := make([][]byte, g.rows)
	for r := range canvas {
		canvas[r] = make([]byte, g.cols)
		for c, cell := range g.cells[r] {
			canvas[r][c] = cell.String()[0]
		}
	}
	for i, p := range path {
		if !g.InBounds(p) {
			continue
		}
		mark := byte('*')
		switch i {
		case 0:
			mark = 'S'
		case len(path) - 1:
			mark = 'D'
		}
		canvas[p.Row][p.Col] = mark
	}

	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, line := range canvas {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}
