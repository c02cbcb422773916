// Package grid models a rectangular 2-D board of open and blocked cells,
// the coordinate and move types used to walk it, and simple reachability
// analysis over its open cells.
//
// What:
//
//   - Grid wraps an immutable R×C board of Cell values (Open or Blocked).
//   - Point addresses a cell by zero-indexed (Row, Col).
//   - Move is one of the four cardinal steps, labeled strictly by the sign of
//     its delta: Down=(+1,0), Right=(0,+1), Up=(−1,0), Left=(0,−1).
//   - Moves lists them in the fixed order Down, Right, Up, Left that every
//     traversal in this module uses.
//   - ConnectedComponents / Connected answer "is B reachable from A" without
//     computing distances.
//
// Construction:
//
//   - New(cells):                 from a [][]Cell, deep-copied.
//   - FromFunc(values, blocked):  from any [][]T plus an explicit open/blocked
//     discriminator.
//   - Parse(rows, blocked):       from text rows; the blocked rune marks
//     obstacles, every other rune is open.
//
// Complexity:
//
//   - Construction:        O(R×C) time and memory.
//   - InBounds / IsOpen:   O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:        no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrNilDiscriminator: FromFunc called with a nil predicate.
//   - ErrOutOfBounds:      At called with a coordinate outside the board.
package grid
