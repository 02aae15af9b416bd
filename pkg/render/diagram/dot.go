package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// Options configures diagram generation.
type Options struct {
	// Title is shown above the diagram.
	Title string
	// Power adds the distro and its SOCA runs.
	Power bool
}

// Colors per cable category.
var colors = map[cabling.Category]string{
	cabling.CategoryPower:  "#d9480f",
	cabling.CategoryData:   "#1971c2",
	cabling.CategoryBridge: "#e8590c",
	cabling.CategoryTrunk:  "#5f3dc4",
	cabling.CategorySignal: "#2b8a3e",
}

// ToDOT converts a cable schedule to Graphviz DOT. A nil result yields an
// empty graph.
func ToDOT(r *cabling.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wall {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	if r == nil {
		buf.WriteString("}\n")
		return buf.String()
	}
	buf.WriteString("\n")

	writeEquipment(&buf, r, opts)
	for _, i := range r.Lines.Indices() {
		writeLine(&buf, i, r.Lines[i])
	}
	buf.WriteString("\n")

	for _, cat := range cabling.Categories {
		if cat == cabling.CategoryPower && !opts.Power {
			continue
		}
		for _, c := range r.ByCategory(cat) {
			writeCable(&buf, c)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEquipment(buf *bytes.Buffer, r *cabling.Result, opts Options) {
	node := func(id, shape, fill string) {
		fmt.Fprintf(buf, "  %q [shape=%s, fillcolor=%q];\n", id, shape, fill)
	}
	node(cabling.EndProcessor, "box3d", "#e7f5ff")
	if len(r.Signal) > 0 {
		node(cabling.EndServer, "box3d", "#ebfbee")
	}
	for _, t := range r.Trunk {
		node(t.From, "component", "#f3f0ff")
	}
	if opts.Power && len(r.Power) > 0 {
		node(cabling.EndDistro, "cylinder", "#fff4e6")
		for _, p := range r.Power {
			fmt.Fprintf(buf, "  %q [label=%q, shape=note, fillcolor=\"#fff9db\"];\n",
				powerID(p), fmt.Sprintf("%s\n%d circuits", p.To, p.Circuits))
		}
	}
}

func writeLine(buf *bytes.Buffer, i int, cells []grid.Cell) {
	fmt.Fprintf(buf, "  subgraph cluster_line_%d {\n", i+1)
	fmt.Fprintf(buf, "    label=\"Line %d (%d)\";\n", i+1, len(cells))
	buf.WriteString("    style=\"rounded,dashed\";\n    color=\"#adb5bd\";\n")
	for _, c := range cells {
		fmt.Fprintf(buf, "    %q;\n", c.Label())
	}
	for k := 1; k < len(cells); k++ {
		if cells[k-1].Adjacent(cells[k]) {
			fmt.Fprintf(buf, "    %q -> %q [color=\"#868e96\", arrowsize=0.5];\n", cells[k-1].Label(), cells[k].Label())
		}
	}
	buf.WriteString("  }\n")
}

func writeCable(buf *bytes.Buffer, c cabling.Cable) {
	from, to := c.From, c.To
	if c.Category == cabling.CategoryPower {
		from, to = cabling.EndDistro, powerID(c)
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmt.Sprintf("%.1f ft", c.LengthFt)),
		fmt.Sprintf("color=%q", colors[c.Category]),
		fmt.Sprintf("fontcolor=%q", colors[c.Category]),
	}
	if c.Type == cabling.TypeFiber {
		attrs = append(attrs, "penwidth=2.5")
	}
	switch {
	case c.Category == cabling.CategoryBridge:
		attrs = append(attrs, "style=dashed", "constraint=false")
	case c.Backup:
		attrs = append(attrs, "style=dotted")
	}
	fmt.Fprintf(buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

func powerID(c cabling.Cable) string {
	return "power " + c.To
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based size attributes so the
// SVG scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
