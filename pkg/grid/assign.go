package grid

import (
	"maps"
	"slices"
	"strings"
)

// Mode selects the traversal used to number panels into data lines.
type Mode string

// Traversal modes.
const (
	// ModeAllTop gives every column its own line, cabled top to bottom.
	ModeAllTop Mode = "all-top"
	// ModeAllBottom gives every column its own line, cabled bottom to top.
	ModeAllBottom Mode = "all-bottom"
	// ModeSerpentineTop snakes through the columns starting downwards.
	ModeSerpentineTop Mode = "serpentine-top"
	// ModeSerpentineBottom snakes through the columns starting upwards.
	ModeSerpentineBottom Mode = "serpentine-bottom"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeSerpentineTop

// Modes lists the supported traversal modes.
var Modes = []Mode{ModeAllTop, ModeAllBottom, ModeSerpentineTop, ModeSerpentineBottom}

// ParseMode converts a user-supplied name into a Mode. The longer
// "serpentine-from-top" spelling is accepted as well.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Replace(s, "-from-", "-", 1)
	if s == "" {
		return DefaultMode, true
	}
	m := Mode(s)
	return m, slices.Contains(Modes, m)
}

func (m Mode) serpentine() bool {
	return m == ModeSerpentineTop || m == ModeSerpentineBottom
}

func (m Mode) startsDown() bool {
	return m == ModeAllTop || m == ModeSerpentineTop
}

// Overrides pins panels to 1-based data line numbers.
type Overrides map[Cell]int

// Normalize returns the 0-based overrides that apply to g. Entries on removed
// or out-of-range cells and values below 1 are dropped.
func (o Overrides) Normalize(g *Grid) map[Cell]int {
	out := make(map[Cell]int, len(o))
	for c, line := range o {
		if line >= 1 && g.Active(c) {
			out[c] = line - 1
		}
	}
	return out
}

// Lines maps a 0-based data line index to its cells in cabling order.
type Lines map[int][]Cell

// Indices returns the line indices in ascending order.
func (l Lines) Indices() []int {
	return slices.Sorted(maps.Keys(l))
}

// Count returns the total number of cells across all lines.
func (l Lines) Count() int {
	n := 0
	for _, cells := range l {
		n += len(cells)
	}
	return n
}

// Assign numbers every active panel of g into data lines.
//
// Override line numbers are reserved before the walk starts, so the automatic
// counter skips them even for lines the walk has not reached yet. Override
// cells keep their traversal position inside their own line, which preserves
// physical adjacency for bridge detection.
//
// In serpentine modes a line closes after panelsPerLine automatically
// assigned panels; values below 1 are treated as 1. In the all-top and
// all-bottom modes each column forms one line and panelsPerLine is not
// enforced. The counter advances after every column, so a column with no
// automatically assigned panel leaves its line number unused.
//
// An empty grid yields an empty Lines.
func Assign(g *Grid, overrides Overrides, panelsPerLine int, mode Mode) Lines {
	lines := Lines{}
	if g.Empty() {
		return lines
	}
	pinned := overrides.Normalize(g)
	reserved := make(map[int]bool, len(pinned))
	for _, line := range pinned {
		reserved[line] = true
	}

	a := &assigner{
		grid:     g,
		pinned:   pinned,
		reserved: reserved,
		lines:    lines,
		capacity: max(panelsPerLine, 1),
	}
	a.current = a.nextFree(0)

	if mode.serpentine() {
		a.serpentine(mode.startsDown())
	} else {
		a.columns(mode.startsDown())
	}
	return lines
}

type assigner struct {
	grid     *Grid
	pinned   map[Cell]int
	reserved map[int]bool
	lines    Lines
	capacity int
	current  int
	filled   int
}

// nextFree returns the first unreserved index >= from.
func (a *assigner) nextFree(from int) int {
	for a.reserved[from] {
		from++
	}
	return from
}

// place appends c to its pinned line and reports whether it was pinned.
func (a *assigner) place(c Cell) bool {
	if line, ok := a.pinned[c]; ok {
		a.lines[line] = append(a.lines[line], c)
		return true
	}
	return false
}

func (a *assigner) columns(down bool) {
	for col := 0; col < a.grid.width; col++ {
		a.walkColumn(col, down, func(c Cell) {
			if !a.place(c) {
				a.lines[a.current] = append(a.lines[a.current], c)
			}
		})
		a.current = a.nextFree(a.current + 1)
	}
}

func (a *assigner) serpentine(down bool) {
	for col := 0; col < a.grid.width; col++ {
		a.walkColumn(col, down, func(c Cell) {
			if a.place(c) {
				return
			}
			if a.filled == a.capacity {
				a.current = a.nextFree(a.current + 1)
				a.filled = 0
			}
			a.lines[a.current] = append(a.lines[a.current], c)
			a.filled++
		})
		down = !down
	}
}

// walkColumn visits the active cells of col in the given direction.
func (a *assigner) walkColumn(col int, down bool, visit func(Cell)) {
	h := a.grid.height
	for i := 0; i < h; i++ {
		row := i
		if !down {
			row = h - 1 - i
		}
		if c := (Cell{col, row}); !a.grid.Removed(c) {
			visit(c)
		}
	}
}
