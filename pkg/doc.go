// Package pkg provides the core libraries of wallcable, a cable planner for
// LED video walls.
//
// # Overview
//
// A video wall is a grid of panels. Each panel needs power and sits on a
// data line: a daisy chain of panels fed by one port of a video processor.
// wallcable numbers the panels into lines, finds how each chain gets
// around knockouts, measures every cable run and rounds it up to lengths
// that exist in the shop.
//
// The pkg directory is organized into three areas:
//
//  1. Engine: [grid], [detour], [cabling]
//  2. Outputs: [bom], [render/diagram]
//  3. Orchestration and infrastructure: [project], [pipeline], [cache],
//     [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow for one wall:
//
//	project file (TOML)
//	         ↓
//	    [project] package (panel catalog, walls, routing settings)
//	         ↓
//	    [grid] package (knockouts, line assignment, entry and exit panels)
//	         ↓
//	    [cabling] package (detours via [detour], lengths, stock rounding)
//	         ↓
//	    [bom] gear list, [render/diagram] SVG/DOT
//
// [pipeline] runs this for every wall of a project and caches results by
// a hash of their inputs, so editing one wall recomputes only that wall.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wallcable/pkg/cabling"
//	    "github.com/matzehuels/wallcable/pkg/grid"
//	)
//
//	g := grid.New(16, 9, grid.Cell{Col: 7, Row: 8})
//	cfg := cabling.DefaultRoutingConfig()
//	cfg.Panel = cabling.PanelSpec{WidthM: 0.5, HeightM: 0.5}
//	r := cabling.Compute(g, cabling.LineConfig{Mode: grid.ModeSerpentineTop}, cfg)
//	for _, c := range r.Cables() {
//	    fmt.Println(c)
//	}
//
// [grid]: github.com/matzehuels/wallcable/pkg/grid
// [detour]: github.com/matzehuels/wallcable/pkg/detour
// [cabling]: github.com/matzehuels/wallcable/pkg/cabling
// [bom]: github.com/matzehuels/wallcable/pkg/bom
// [render/diagram]: github.com/matzehuels/wallcable/pkg/render/diagram
// [project]: github.com/matzehuels/wallcable/pkg/project
// [pipeline]: github.com/matzehuels/wallcable/pkg/pipeline
// [cache]: github.com/matzehuels/wallcable/pkg/cache
// [errors]: github.com/matzehuels/wallcable/pkg/errors
// [observability]: github.com/matzehuels/wallcable/pkg/observability
// [buildinfo]: github.com/matzehuels/wallcable/pkg/buildinfo
package pkg
