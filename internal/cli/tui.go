package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wallcable/pkg/project"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// WallListModel - Interactive wall selection
// =============================================================================

// WallListModel is the bubbletea model for interactive wall selection.
type WallListModel struct {
	Walls    []project.Wall
	Cursor   int
	Selected *project.Wall
	Height   int
	Offset   int
}

// NewWallListModel creates a new wall list model.
func NewWallListModel(walls []project.Wall) WallListModel {
	return WallListModel{
		Walls:  walls,
		Height: 15,
	}
}

func (m WallListModel) Init() tea.Cmd {
	return nil
}

func (m WallListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Walls)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Walls) == 0 {
				return m, nil
			}
			w := m.Walls[m.Cursor]
			m.Selected = &w
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m WallListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Wall"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Walls))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, wallRow(&m.Walls[i])...))
	}

	t := newTable("", "Wall", "Panel", "Size", "Mode", "Knockouts").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return StyleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Walls))))

	return b.String()
}

// wallRow is the table row of a wall: name, panel, size, mode, knockouts.
func wallRow(w *project.Wall) []string {
	mode := w.Mode
	if mode == "" {
		mode = "serpentine-top"
	}
	knockouts := "—"
	if n := len(w.Removed); n > 0 {
		knockouts = strconv.Itoa(n)
	}
	return []string{w.Name, w.Panel, fmt.Sprintf("%d×%d", w.Width, w.Height), mode, knockouts}
}
