// Package diagram draws a wall's cable schedule as a Graphviz diagram.
//
// # Overview
//
// The diagram shows the equipment off the wall (processor, distribution
// boxes, power distro, media server) and one cluster per data line holding
// its panels in signal order. Home runs and trunks are labelled with their
// length; bridge jumpers are drawn dashed across the gaps they span.
//
// # Usage
//
// Build DOT source from a result, then render it in-process:
//
//	r := cabling.Compute(g, lc, cfg)
//	dot := diagram.ToDOT(r, diagram.Options{Title: "Center"})
//	svg, err := diagram.RenderSVG(ctx, dot)
//
// # Dependencies
//
// SVG rendering uses [github.com/goccy/go-graphviz], which runs Graphviz as
// WebAssembly. No system Graphviz install is needed.
package diagram
