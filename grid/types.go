package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNilDiscriminator indicates FromFunc received a nil blocked predicate.
	ErrNilDiscriminator = errors.New("grid: blocked predicate must not be nil")
	// ErrOutOfBounds indicates a coordinate outside [0,R)×[0,C).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Cell is the two-valued marker stored in every grid position.
type Cell uint8

const (
	// Open cells may be traversed and used as path endpoints.
	Open Cell = iota
	// Blocked cells are impassable.
	Blocked
)

// String renders the cell the way Grid.String draws it.
func (c Cell) String() string {
	if c == Blocked {
		return "#"
	}
	return "."
}

// Point is a zero-indexed (Row, Col) coordinate.
type Point struct {
	Row, Col int
}

// Pt is shorthand for Point{Row: r, Col: c}.
func Pt(r, c int) Point {
	return Point{Row: r, Col: c}
}

// Add returns the point one step away in direction m.
func (p Point) Add(m Move) Point {
	dr, dc := m.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a single cardinal step.
type Move uint8

const (
	// Down increases the row index.
	Down Move = iota
	// Right increases the column index.
	Right
	// Up decreases the row index.
	Up
	// Left decreases the column index.
	Left
)

// Moves is the fixed expansion order used by every traversal: Down, Right, Up, Left.
// Callers must not modify it.
var Moves = [4]Move{Down, Right, Up, Left}

var moveDeltas = [4][2]int{
	Down:  {1, 0},
	Right: {0, 1},
	Up:    {-1, 0},
	Left:  {0, -1},
}

var moveNames = [4]string{
	Down:  "Down",
	Right: "Right",
	Up:    "Up",
	Left:  "Left",
}

// Delta returns the (row, col) offset of m, or (0, 0) for an undefined Move.
func (m Move) Delta() (dr, dc int) {
	if m > Left {
		return 0, 0
	}
	d := moveDeltas[m]
	return d[0], d[1]
}

// Opposite returns the move that undoes m. Undefined moves are returned as is.
func (m Move) Opposite() Move {
	if m > Left {
		return m
	}
	return (m + 2) & 3
}

// Letter returns the one-letter label: "D", "R", "U" or "L", and "?" for an
// undefined Move.
func (m Move) Letter() string {
	if m > Left {
		return "?"
	}
	return moveNames[m][:1]
}

// String returns the full label, e.g. "Down".
func (m Move) String() string {
	if m > Left {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveNames[m]
}

// MoveBetween reports the move that takes a to b, if they are orthogonal neighbors.
func MoveBetween(a, b Point) (Move, bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for _, m := range Moves {
		if d := moveDeltas[m]; d[0] == dr && d[1] == dc {
			return m, true
		}
	}
	return 0, false
}
