package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wallcable/pkg/project"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m WallListModel, keys ...string) (WallListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(WallListModel)
	}
	return m, cmd
}

func TestWallListModel_Navigate(t *testing.T) {
	walls := project.Example().Walls
	m := NewWallListModel(walls)

	m, _ = press(m, "down", "down", "j")
	if m.Cursor != len(walls)-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor, len(walls)-1)
	}
	m, _ = press(m, "up", "k", "k")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	m, cmd := press(m, "j", "enter")
	if m.Selected == nil || m.Selected.Name != "Stage Left" {
		t.Fatalf("selected = %v, want Stage Left", m.Selected)
	}
	if cmd == nil {
		t.Error("enter did not quit")
	}
}

func TestWallListModel_Quit(t *testing.T) {
	m, cmd := press(NewWallListModel(project.Example().Walls), "q")
	if m.Selected != nil {
		t.Error("quit selected a wall")
	}
	if cmd == nil {
		t.Error("q did not return a command")
	}
}

func TestWallListModel_Scroll(t *testing.T) {
	walls := make([]project.Wall, 20)
	for i := range walls {
		walls[i] = project.Wall{Name: "W", Width: 1, Height: 1}
	}
	m := NewWallListModel(walls)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = next.(WallListModel)
	if m.Height != 5 {
		t.Fatalf("height = %d, want 5", m.Height)
	}

	for range 7 {
		m, _ = press(m, "down")
	}
	if m.Offset != 3 {
		t.Errorf("offset = %d, want 3", m.Offset)
	}
}

func TestWallListModel_Empty(t *testing.T) {
	m, cmd := press(NewWallListModel(nil), "enter")
	if m.Selected != nil || cmd != nil {
		t.Error("enter on empty list should do nothing")
	}
}

func TestWallListModel_View(t *testing.T) {
	view := NewWallListModel(project.Example().Walls).View()
	for _, want := range []string{"Select Wall", "Center", "BP2", "16×9", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
