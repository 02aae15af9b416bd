package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/render/diagram"
)

// RenderOptions controls the render stage for one wall.
type RenderOptions struct {
	Title   string
	Formats []string
	Power   bool
}

// Render draws a cable schedule in each requested format.
// DOT source is built once and shared by the dot and svg outputs.
func Render(ctx context.Context, r *cabling.Result, opts RenderOptions) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string
	dotSource := func() string {
		if dot == "" {
			dot = diagram.ToDOT(r, diagram.Options{Title: opts.Title, Power: opts.Power})
		}
		return dot
	}

	for _, format := range opts.Formats {
		if _, done := artifacts[format]; done {
			continue
		}
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dotSource())
		case FormatSVG:
			svg, err := diagram.RenderSVG(ctx, dotSource())
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = svg
		case FormatJSON:
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("encode json: %w", err)
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}
