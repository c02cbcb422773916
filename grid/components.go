package grid

// ConnectedComponents finds all contiguous regions of open cells under
// 4-directional connectivity. Components are returned in row-major order of
// their first cell; cells inside a component appear in BFS order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Point {
	seen := make([][]bool, g.rows)
	for r := range seen {
		seen[r] = make([]bool, g.cols)
	}
	var comps [][]Point

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Blocked || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue := []Point{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, m := range Moves {
					v := u.Add(m)
					if !g.IsOpen(v) || seen[v.Row][v.Col] {
						continue
					}
					seen[v.Row][v.Col] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether b can be reached from a through open cells.
// Both endpoints must be open; a point is connected to itself.
func (g *Grid) Connected(a, b Point) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	label := g.componentLabels()
	return label[a.Row][a.Col] == label[b.Row][b.Col]
}

// componentLabels assigns every open cell a 1-based component number; blocked
// cells stay 0.
func (g *Grid) componentLabels() [][]int {
	label := make([][]int, g.rows)
	for r := range label {
		label[r] = make([]int, g.cols)
	}
	for i, comp := range g.ConnectedComponents() {
		for _, p := range comp {
			label[p.Row][p.Col] = i + 1
		}
	}
	return label
}
