package grid

import "testing"

func TestEndpoints(t *testing.T) {
	lines := Lines{
		0: {{0, 0}, {0, 1}, {0, 2}},
		1: {{1, 2}},
		4: {},
	}
	entry, exit := Endpoints(lines)

	if len(entry) != 2 || len(exit) != 2 {
		t.Fatalf("got %d entries and %d exits, want 2 each", len(entry), len(exit))
	}
	if entry[0] != (Cell{0, 0}) || exit[0] != (Cell{0, 2}) {
		t.Errorf("line 0 = %v → %v, want (0,0) → (0,2)", entry[0], exit[0])
	}
	if entry[1] != exit[1] {
		t.Errorf("single-panel line should enter and exit at the same cell")
	}
	if _, ok := entry[4]; ok {
		t.Error("empty line must be omitted from entry map")
	}
	if _, ok := exit[4]; ok {
		t.Error("empty line must be omitted from exit map")
	}
}

func TestEndpointsMatchAssign(t *testing.T) {
	g := New(5, 4, Cell{2, 0})
	lines := Assign(g, Overrides{{4, 3}: 1}, 6, ModeSerpentineBottom)
	entry, exit := Endpoints(lines)
	for i, cells := range lines {
		if entry[i] != cells[0] || exit[i] != cells[len(cells)-1] {
			t.Errorf("line %d endpoints %v/%v disagree with ordering %v", i, entry[i], exit[i], cells)
		}
	}
}
