package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssign_SerpentineFullColumns(t *testing.T) {
	g := New(4, 4)
	lines := Assign(g, nil, 4, ModeSerpentineTop)

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	want := Lines{
		0: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		1: {{1, 3}, {1, 2}, {1, 1}, {1, 0}},
		2: {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		3: {{3, 3}, {3, 2}, {3, 1}, {3, 0}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
	if c, _ := lines.Entry(0); c != (Cell{0, 0}) {
		t.Errorf("line 0 entry = %v, want (0,0)", c)
	}
	if c, _ := lines.Entry(1); c != (Cell{1, 3}) {
		t.Errorf("line 1 entry = %v, want (1,3)", c)
	}
}

func TestAssign_SerpentineFromBottom(t *testing.T) {
	g := New(2, 3)
	lines := Assign(g, nil, 3, ModeSerpentineBottom)
	want := Lines{
		0: {{0, 2}, {0, 1}, {0, 0}},
		1: {{1, 0}, {1, 1}, {1, 2}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_SerpentineMidColumnSplit(t *testing.T) {
	g := New(3, 4)
	lines := Assign(g, nil, 5, ModeSerpentineTop)
	want := Lines{
		// column 0 down, column 1 starts upwards and splits after one cell
		0: {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}},
		// the rest of column 1 continues upwards, then column 2 goes down
		1: {{1, 2}, {1, 1}, {1, 0}, {2, 0}, {2, 1}},
		2: {{2, 2}, {2, 3}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_AllTopWithKnockout(t *testing.T) {
	g := New(4, 4, Cell{2, 1})
	lines := Assign(g, nil, 4, ModeAllTop)

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if n := len(lines[2]); n != 3 {
		t.Errorf("column 2 line has %d cells, want 3", n)
	}
	if n := lines.Count(); n != 15 {
		t.Errorf("total cells = %d, want 15", n)
	}
	want := []Cell{{2, 0}, {2, 2}, {2, 3}}
	if diff := cmp.Diff(want, lines[2]); diff != "" {
		t.Errorf("line 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_AllBottomIgnoresCapacity(t *testing.T) {
	g := New(2, 5)
	lines := Assign(g, nil, 2, ModeAllBottom)
	want := Lines{
		0: {{0, 4}, {0, 3}, {0, 2}, {0, 1}, {0, 0}},
		1: {{1, 4}, {1, 3}, {1, 2}, {1, 1}, {1, 0}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_AllTopRemovedColumnUsesLineNumber(t *testing.T) {
	g := New(3, 2, Cell{1, 0}, Cell{1, 1})
	lines := Assign(g, nil, 10, ModeAllTop)
	if diff := cmp.Diff([]int{0, 2}, lines.Indices()); diff != "" {
		t.Errorf("Indices() mismatch (-want +got):\n%s", diff)
	}
	if c, _ := lines.Entry(2); c != (Cell{2, 0}) {
		t.Errorf("line 2 entry = %v, want (2,0)", c)
	}
	if _, ok := lines.Entry(1); ok {
		t.Error("line 1 should have no entry")
	}
}

func TestAssign_AllTopOverriddenColumnUsesLineNumber(t *testing.T) {
	g := New(3, 2)
	o := Overrides{{1, 0}: 5, {1, 1}: 5}
	lines := Assign(g, o, 10, ModeAllTop)
	want := Lines{
		0: {{0, 0}, {0, 1}},
		2: {{2, 0}, {2, 1}},
		4: {{1, 0}, {1, 1}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
	entry, exit := Endpoints(lines)
	if _, ok := entry[1]; ok {
		t.Error("unused line 1 has an entry")
	}
	if len(entry) != 3 || len(exit) != 3 {
		t.Errorf("endpoints = %d/%d, want 3/3", len(entry), len(exit))
	}
}

func TestAssign_AllBottomRemovedColumnUsesLineNumber(t *testing.T) {
	g := New(3, 2, Cell{0, 0}, Cell{0, 1})
	lines := Assign(g, nil, 10, ModeAllBottom)
	want := Lines{
		1: {{1, 1}, {1, 0}},
		2: {{2, 1}, {2, 0}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_SerpentineSplitAroundKnockout(t *testing.T) {
	// Column A is split after three panels; the removed A2 takes no
	// capacity and line 1 keeps heading down before turning up column B.
	g := New(2, 5, Cell{0, 1})
	lines := Assign(g, nil, 3, ModeSerpentineTop)
	want := Lines{
		0: {{0, 0}, {0, 2}, {0, 3}},
		1: {{0, 4}, {1, 4}, {1, 3}},
		2: {{1, 2}, {1, 1}, {1, 0}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_OverridesReserveLines(t *testing.T) {
	g := New(3, 2)
	// Pin the bottom-right panel to line 2 (index 1): the counter must skip
	// index 1 although the walk only reaches that panel at the very end.
	lines := Assign(g, Overrides{{2, 1}: 2}, 2, ModeSerpentineTop)
	want := Lines{
		0: {{0, 0}, {0, 1}},
		1: {{2, 1}},
		2: {{1, 1}, {1, 0}},
		3: {{2, 0}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_OverrideKeepsTraversalOrder(t *testing.T) {
	g := New(2, 3)
	o := Overrides{{0, 2}: 5, {1, 0}: 5}
	lines := Assign(g, o, 10, ModeSerpentineTop)
	// (0,2) is visited before (1,0) in a top-started serpentine walk.
	want := []Cell{{0, 2}, {1, 0}}
	if diff := cmp.Diff(want, lines[4]); diff != "" {
		t.Errorf("line 4 mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_OverridesDoNotConsumeCapacity(t *testing.T) {
	g := New(1, 4)
	lines := Assign(g, Overrides{{0, 1}: 3}, 3, ModeSerpentineTop)
	want := Lines{
		0: {{0, 0}, {0, 2}, {0, 3}},
		2: {{0, 1}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_InvalidOverridesIgnored(t *testing.T) {
	g := New(2, 2, Cell{1, 1})
	o := Overrides{{1, 1}: 1, {5, 5}: 1, {0, 0}: 0}
	lines := Assign(g, o, 10, ModeSerpentineTop)
	want := Lines{0: {{0, 0}, {0, 1}, {1, 0}}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_EmptyGrid(t *testing.T) {
	for _, g := range []*Grid{New(0, 4), New(4, 0), nil} {
		if lines := Assign(g, nil, 4, ModeSerpentineTop); len(lines) != 0 {
			t.Errorf("Assign(empty) = %v, want no lines", lines)
		}
	}
}

func TestAssign_ClampsCapacity(t *testing.T) {
	g := New(1, 3)
	lines := Assign(g, nil, 0, ModeSerpentineTop)
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3 single-panel lines", len(lines))
	}
}

func TestAssign_Partition(t *testing.T) {
	g := New(7, 5, Cell{0, 0}, Cell{3, 2}, Cell{3, 3}, Cell{6, 4})
	o := Overrides{{1, 1}: 4, {5, 0}: 1, {2, 4}: 9}

	for _, mode := range Modes {
		for _, capacity := range []int{1, 3, 5, 8, 40} {
			lines := Assign(g, o, capacity, mode)
			seen := map[Cell]int{}
			for _, cells := range lines {
				for _, c := range cells {
					seen[c]++
				}
			}
			for _, c := range g.ActiveCells() {
				if seen[c] != 1 {
					t.Errorf("%s/%d: %v appears %d times", mode, capacity, c, seen[c])
				}
			}
			if len(seen) != g.ActiveCount() {
				t.Errorf("%s/%d: %d distinct cells, want %d", mode, capacity, len(seen), g.ActiveCount())
			}
		}
	}
}

func TestAssign_Reservation(t *testing.T) {
	g := New(6, 6)
	o := Overrides{{5, 5}: 1, {4, 4}: 3, {0, 3}: 4}
	pinned := o.Normalize(g)

	for _, mode := range Modes {
		lines := Assign(g, o, 4, mode)
		for idx, cells := range lines {
			for _, c := range cells {
				if line, ok := pinned[c]; ok {
					if line != idx {
						t.Errorf("%s: pinned %v landed on line %d, want %d", mode, c, idx, line)
					}
					continue
				}
				for _, r := range pinned {
					if r == idx {
						t.Errorf("%s: auto-assigned %v to reserved line %d", mode, c, idx)
					}
				}
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"all-top", ModeAllTop, true},
		{"ALL-BOTTOM", ModeAllBottom, true},
		{"serpentine-from-top", ModeSerpentineTop, true},
		{"serpentine-bottom", ModeSerpentineBottom, true},
		{"", DefaultMode, true},
		{"zigzag", Mode("zigzag"), false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
