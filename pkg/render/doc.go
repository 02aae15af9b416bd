// Package render groups the visual outputs of a cable schedule.
//
// # Overview
//
// Rendering is kept apart from the engine: [cabling.Compute] produces a
// plain result and the renderers here turn it into something people can
// hang on the wall of the production office.
//
//   - [diagram]: Graphviz cable diagram (DOT and SVG) with one cluster per
//     data line, home runs from the processor or distribution boxes,
//     bridge jumpers and trunks
//
// Terminal renderings (cable tables and the line map) live with the CLI in
// internal/cli since they depend on lipgloss styling.
//
// [cabling.Compute]: github.com/matzehuels/wallcable/pkg/cabling.Compute
// [diagram]: github.com/matzehuels/wallcable/pkg/render/diagram
package render
