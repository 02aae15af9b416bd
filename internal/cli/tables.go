package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wallcable/pkg/bom"
	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/grid"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...)
}

// lineLabel formats a 0-based line index for display.
func lineLabel(i int) string {
	if i == cabling.NoLine {
		return "—"
	}
	return strconv.Itoa(i + 1)
}

// cableTable renders the cables of r, one row each, in category order.
// An empty cats means every category.
func cableTable(r *cabling.Result, cats ...cabling.Category) string {
	if len(cats) == 0 {
		cats = cabling.Categories
	}
	var cables []cabling.Cable
	for _, cat := range cats {
		cables = append(cables, r.ByCategory(cat)...)
	}

	rows := make([][]string, len(cables))
	for i, c := range cables {
		note := ""
		switch {
		case c.Backup:
			note = "backup"
		case c.Circuits > 0:
			note = fmt.Sprintf("%d circuits", c.Circuits)
		}
		rows[i] = []string{
			string(c.Category),
			lineLabel(c.Line),
			c.From,
			c.To,
			fmt.Sprintf("%.1f", c.LengthFt),
			strconv.Itoa(c.StockFt),
			string(c.Type),
			note,
		}
	}

	t := newTable("Category", "Line", "From", "To", "Feet", "Stock", "Type", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return base.Foreground(categoryColors[cabling.Category(rows[row][0])])
			case 4, 5:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case 7:
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render()
}

// bomTable renders a gear list with a footage summary per cable type.
func bomTable(l *bom.List) string {
	rows := make([][]string, 0, len(l.Lines))
	for _, ln := range l.Lines {
		backup := ""
		if ln.Backup > 0 {
			backup = strconv.Itoa(ln.Backup)
		}
		rows = append(rows, []string{
			string(ln.Category),
			string(ln.Type),
			fmt.Sprintf("%d ft", ln.StockFt),
			strconv.Itoa(ln.Count),
			backup,
		})
	}

	t := newTable("Category", "Type", "Length", "Qty", "Backup").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return base.Foreground(categoryColors[cabling.Category(rows[row][0])])
			case 2, 3, 4:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return base
		})

	var b strings.Builder
	b.WriteString(t.Render())
	for _, typ := range []cabling.CableType{cabling.TypeSOCA, cabling.TypeCopper, cabling.TypeFiber} {
		if l.StockFeet[typ] == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s",
			StyleDim.Render(fmt.Sprintf("%-6s", typ)),
			StyleValue.Render(fmt.Sprintf("%d ft stock, %.1f ft run", l.StockFeet[typ], l.RawFeet[typ])))
	}
	return b.String()
}

// columnLetters returns the column part of a cell label ("AB" for "AB3").
func columnLetters(col int) string {
	return strings.TrimRight(grid.Cell{Col: col}.Label(), "0123456789")
}

// gridMap renders the wall as seen from the audience with the data line of
// every panel. Knockouts show as "x"; entry panels are bold.
func gridMap(g *grid.Grid, r *cabling.Result) string {
	line := make(map[grid.Cell]int, g.ActiveCount())
	entries := make(map[grid.Cell]bool, len(r.Entry))
	for i, cells := range r.Lines {
		for _, c := range cells {
			line[c] = i
		}
	}
	for _, c := range r.Entry {
		entries[c] = true
	}

	headers := make([]string, g.Width()+1)
	for col := range g.Width() {
		headers[col+1] = columnLetters(col)
	}

	rows := make([][]string, g.Height())
	for row := range g.Height() {
		rows[row] = make([]string, g.Width()+1)
		rows[row][0] = strconv.Itoa(row + 1)
		for col := range g.Width() {
			c := grid.Cell{Col: col, Row: row}
			switch i, ok := line[c]; {
			case g.Removed(c):
				rows[row][col+1] = "x"
			case ok:
				rows[row][col+1] = lineLabel(i)
			default:
				rows[row][col+1] = "?"
			}
		}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if row == table.HeaderRow || col == 0 {
				return base.Foreground(colorGray)
			}
			c := grid.Cell{Col: col - 1, Row: row}
			i, ok := line[c]
			if !ok {
				return base.Foreground(colorDim)
			}
			style := base.Foreground(lineColors[i%len(lineColors)])
			if entries[c] {
				style = style.Bold(true).Underline(true)
			}
			return style
		})
	return t.Render()
}
