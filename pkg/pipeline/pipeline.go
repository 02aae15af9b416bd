// Package pipeline runs the cabling engine over a whole project.
//
// This package implements the compute → bill of materials → render flow used
// by both the CLI and the API server. By centralizing it, both entry points
// share caching, logging and observability.
//
// # Stages
//
//  1. Compute: assign lines and build each wall's cable schedule
//  2. BOM: count stock cables per wall and for the project
//  3. Render: draw each wall as DOT, SVG or JSON
//
// Results and artifacts are cached by a hash of their inputs, so an
// unchanged wall is never recomputed.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, proj, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := res.Walls[0].Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wallcable/pkg/bom"
	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// Output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatDOT, FormatSVG, FormatJSON}

// Options configures a pipeline run.
type Options struct {
	// Walls selects walls by ID or name. Empty means every wall.
	Walls []string `json:"walls,omitempty"`

	// Formats to render per wall. Empty renders nothing.
	Formats []string `json:"formats,omitempty"`

	// Power includes power runs in diagrams.
	Power bool `json:"power,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Project string       `json:"project"`
	Walls   []WallResult `json:"walls"`
	BOM     *bom.List    `json:"bom"`
	Stats   Stats        `json:"stats"`
}

// WallResult is the output for one wall.
type WallResult struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Grid    *grid.Grid      `json:"-"`
	Cabling *cabling.Result `json:"cabling"`
	BOM     *bom.List       `json:"bom"`

	// InputHash identifies the compute inputs; it keys cached results.
	InputHash string `json:"input_hash"`

	Artifacts map[string][]byte `json:"-"`
	CacheInfo CacheInfo         `json:"cache"`
}

// Stats contains run statistics.
type Stats struct {
	Walls       int           `json:"walls"`
	Panels      int           `json:"panels"`
	Cables      int           `json:"cables"`
	ComputeTime time.Duration `json:"compute_time"`
	RenderTime  time.Duration `json:"render_time"`
}

// CacheInfo tracks cache hits for one wall.
type CacheInfo struct {
	ComputeHit bool `json:"compute_hit"`
	RenderHit  bool `json:"render_hit"`
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: dot, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the options and fills the logger.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Artifact returns the rendered bytes of a wall in format.
func (w *WallResult) Artifact(format string) ([]byte, error) {
	data, ok := w.Artifacts[format]
	if !ok {
		return nil, fmt.Errorf("wall %q has no %s artifact", w.Name, format)
	}
	return data, nil
}
