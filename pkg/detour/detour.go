package detour

import "github.com/matzehuels/wallcable/pkg/grid"

// Manhattan returns |Δcol| + |Δrow|.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// PathClear reports whether the Manhattan L route from start to end avoids
// every knockout. The route runs along start.Row to end.Col, then along
// end.Col to end.Row. The endpoints themselves are not checked.
func PathClear(start, end grid.Cell, g *grid.Grid) bool {
	blocked := func(c grid.Cell) bool {
		return c != start && c != end && g.Removed(c)
	}
	step := sign(end.Col - start.Col)
	for col := start.Col; col != end.Col; col += step {
		if blocked(grid.Cell{Col: col, Row: start.Row}) {
			return false
		}
	}
	step = sign(end.Row - start.Row)
	for row := start.Row; row != end.Row; row += step {
		if blocked(grid.Cell{Col: end.Col, Row: row}) {
			return false
		}
	}
	return true
}

// Distance returns the number of grid steps a cable needs from start to end
// while staying off knockouts.
func Distance(start, end grid.Cell, g *grid.Grid) int {
	direct := Manhattan(start, end)
	if start == end || PathClear(start, end, g) {
		return direct
	}
	if steps, ok := search(start, end, g); ok {
		return steps
	}
	return direct
}

// Extra returns how many steps the detour adds over the direct route.
func Extra(start, end grid.Cell, g *grid.Grid) int {
	return Distance(start, end, g) - Manhattan(start, end)
}

var neighbours = [4]grid.Cell{{Col: 0, Row: -1}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: -1, Row: 0}}

// search runs a breadth-first search bounded by the grid rectangle.
func search(start, end grid.Cell, g *grid.Grid) (int, bool) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return 0, false
	}
	depth := make([]int, g.Size())
	for i := range depth {
		depth[i] = -1
	}
	depth[g.Index(start)] = 0

	q := newQueue(g.Size())
	q.push(start)
	for q.len() > 0 {
		curr := q.pop()
		d := depth[g.Index(curr)]
		for _, n := range neighbours {
			next := grid.Cell{Col: curr.Col + n.Col, Row: curr.Row + n.Row}
			if !g.InBounds(next) || depth[g.Index(next)] >= 0 {
				continue
			}
			if next == end {
				return d + 1, true
			}
			if g.Removed(next) {
				continue
			}
			depth[g.Index(next)] = d + 1
			q.push(next)
		}
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
