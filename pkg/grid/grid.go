package grid

import (
	"fmt"
	"slices"
	"strconv"
)

// Cell addresses one panel position. Col grows to the right and Row grows
// downwards, both 0-based.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Label returns the installer-facing name of the cell: column letters followed
// by the 1-based row, e.g. {0,0} → "A1", {27,4} → "AB5".
func (c Cell) Label() string {
	return columnName(c.Col) + strconv.Itoa(c.Row+1)
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Adjacent reports whether c and o are 4-neighbours.
func (c Cell) Adjacent(o Cell) bool {
	dc, dr := abs(c.Col-o.Col), abs(c.Row-o.Row)
	return dc+dr == 1
}

func columnName(col int) string {
	if col < 0 {
		return "?"
	}
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}
	slices.Reverse(b)
	return string(b)
}

// Grid is an immutable panel wall.
type Grid struct {
	width   int
	height  int
	removed map[Cell]struct{}
}

// New creates a grid of width × height cells with the given cells knocked out.
// Negative dimensions are treated as zero and removed cells outside the
// rectangle are ignored.
func New(width, height int, removed ...Cell) *Grid {
	g := &Grid{
		width:   max(width, 0),
		height:  max(height, 0),
		removed: make(map[Cell]struct{}, len(removed)),
	}
	for _, c := range removed {
		if g.InBounds(c) {
			g.removed[c] = struct{}{}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Empty reports whether the grid has no cells at all.
func (g *Grid) Empty() bool { return g == nil || g.width == 0 || g.height == 0 }

// InBounds reports whether c lies inside the rectangle.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Removed reports whether c is a knockout.
func (g *Grid) Removed(c Cell) bool {
	_, ok := g.removed[c]
	return ok
}

// Active reports whether c holds a physical panel.
func (g *Grid) Active(c Cell) bool {
	return g.InBounds(c) && !g.Removed(c)
}

// Index flattens c to row*width+col.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// Size returns width*height.
func (g *Grid) Size() int { return g.width * g.height }

// ActiveCount returns the number of installed panels.
func (g *Grid) ActiveCount() int {
	return g.Size() - len(g.removed)
}

// RemovedCells returns the knockouts in column-major order.
func (g *Grid) RemovedCells() []Cell {
	cells := make([]Cell, 0, len(g.removed))
	for c := range g.removed {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareColumnMajor)
	return cells
}

// ActiveCells returns every installed panel in column-major order
// (columns left to right, rows top to bottom).
func (g *Grid) ActiveCells() []Cell {
	cells := make([]Cell, 0, g.ActiveCount())
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			if c := (Cell{col, row}); !g.Removed(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func compareColumnMajor(a, b Cell) int {
	if a.Col != b.Col {
		return a.Col - b.Col
	}
	return a.Row - b.Row
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
