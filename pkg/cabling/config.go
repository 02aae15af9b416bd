package cabling

import (
	"slices"
	"strings"

	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// FeetPerMeter converts panel dimensions to feet.
const FeetPerMeter = 3.28084

// Default values applied by [DefaultRoutingConfig] and [RoutingConfig.SetDefaults].
const (
	DefaultWallToFloor       = 5.0
	DefaultDistroToWall      = 10.0
	DefaultProcessorToWall   = 15.0
	DefaultServerToProcessor = 0.0
	DefaultCablePick         = 0.0
	DefaultPanelsPerDataLine = 20
	DefaultPanelsPerCircuit  = 8
)

// DropPosition is where cables leave the wall for the floor.
type DropPosition string

// Drop positions, seen from the audience.
const (
	DropBehind     DropPosition = "behind"
	DropStageRight DropPosition = "stage-right"
	DropStageLeft  DropPosition = "stage-left"
)

// PowerEntry is the wall edge power feeds come in from.
type PowerEntry string

// Power entry edges.
const (
	PowerTop    PowerEntry = "top"
	PowerBottom PowerEntry = "bottom"
)

// Placement positions a distribution box on the wall.
type Placement string

// Distribution box placements.
const (
	PlaceTopCenter    Placement = "top-center"
	PlaceTopLeft      Placement = "top-left"
	PlaceTopRight     Placement = "top-right"
	PlaceCenter       Placement = "center"
	PlaceBottomCenter Placement = "bottom-center"
	PlaceBottomLeft   Placement = "bottom-left"
	PlaceBottomRight  Placement = "bottom-right"
)

var (
	dropPositions = []DropPosition{DropBehind, DropStageRight, DropStageLeft}
	powerEntries  = []PowerEntry{PowerTop, PowerBottom}
	placements    = []Placement{
		PlaceTopCenter, PlaceTopLeft, PlaceTopRight, PlaceCenter,
		PlaceBottomCenter, PlaceBottomLeft, PlaceBottomRight,
	}
)

// column returns the drop column for a wall of the given width.
func (d DropPosition) column(width int) int {
	switch d {
	case DropStageRight:
		return 0
	case DropStageLeft:
		return max(width-1, 0)
	}
	return width / 2
}

// Cell resolves the placement on g.
func (p Placement) Cell(g *grid.Grid) grid.Cell {
	w, h := g.Width(), g.Height()
	col, row := w/2, 0
	switch {
	case strings.HasSuffix(string(p), "-left"):
		col = 0
	case strings.HasSuffix(string(p), "-right"):
		col = max(w-1, 0)
	}
	switch {
	case strings.HasPrefix(string(p), "bottom"):
		row = max(h-1, 0)
	case p == PlaceCenter:
		row = h / 2
	}
	return grid.Cell{Col: col, Row: row}
}

// PanelSpec is the physical size of one panel.
type PanelSpec struct {
	Name    string  `json:"name,omitempty" toml:"name" yaml:"name"`
	WidthM  float64 `json:"width_m" toml:"width_m" yaml:"width_m"`
	HeightM float64 `json:"height_m" toml:"height_m" yaml:"height_m"`
}

// Resolved reports whether both dimensions are known.
func (p PanelSpec) Resolved() bool {
	return p.WidthM > 0 && p.HeightM > 0
}

// DistBox configures on-wall distribution boxes.
type DistBox struct {
	Enabled bool      `json:"enabled" toml:"enabled"`
	Main    Placement `json:"main,omitempty" toml:"main"`
	// Backup defaults to Main. It is only used with redundancy.
	Backup Placement `json:"backup,omitempty" toml:"backup"`
}

// RoutingConfig holds the physical parameters of a wall's cable plan.
// Distances are in feet.
type RoutingConfig struct {
	Panel PanelSpec `json:"panel" toml:"-"`

	WallToFloor       float64 `json:"wall_to_floor" toml:"wall_to_floor"`
	DistroToWall      float64 `json:"distro_to_wall" toml:"distro_to_wall"`
	ProcessorToWall   float64 `json:"processor_to_wall" toml:"processor_to_wall"`
	ServerToProcessor float64 `json:"server_to_processor" toml:"server_to_processor"`
	CablePick         float64 `json:"cable_pick" toml:"cable_pick"`

	DropPosition DropPosition `json:"drop_position" toml:"drop_position"`
	PowerEntry   PowerEntry   `json:"power_entry" toml:"power_entry"`
	DistBox      DistBox      `json:"dist_box" toml:"dist_box"`
	Redundancy   bool         `json:"redundancy" toml:"redundancy"`

	// PanelsPerDataLine and PanelsPerCircuit below 1 mean "use the default"
	// (DefaultPanelsPerDataLine, DefaultPanelsPerCircuit); see SetDefaults.
	PanelsPerDataLine int `json:"panels_per_data_line" toml:"panels_per_data_line"`
	PanelsPerCircuit  int `json:"panels_per_circuit" toml:"panels_per_circuit"`
}

// DefaultRoutingConfig returns a config with every documented default set.
// Decoders should start from this value so absent fields keep their
// defaults while explicit zeros survive.
func DefaultRoutingConfig() RoutingConfig {
	return RoutingConfig{
		WallToFloor:       DefaultWallToFloor,
		DistroToWall:      DefaultDistroToWall,
		ProcessorToWall:   DefaultProcessorToWall,
		ServerToProcessor: DefaultServerToProcessor,
		CablePick:         DefaultCablePick,
		DropPosition:      DropBehind,
		PowerEntry:        PowerTop,
		DistBox:           DistBox{Main: PlaceTopCenter},
		PanelsPerDataLine: DefaultPanelsPerDataLine,
		PanelsPerCircuit:  DefaultPanelsPerCircuit,
	}
}

// SetDefaults fills enum fields left empty and replaces capacities below 1
// with their defaults. Compute calls it on a copy of the caller's config.
// Distances are left alone since zero is a meaningful value for all of them.
func (c *RoutingConfig) SetDefaults() {
	if c.DropPosition == "" {
		c.DropPosition = DropBehind
	}
	if c.PowerEntry == "" {
		c.PowerEntry = PowerTop
	}
	if c.DistBox.Main == "" {
		c.DistBox.Main = PlaceTopCenter
	}
	if c.DistBox.Backup == "" {
		c.DistBox.Backup = c.DistBox.Main
	}
	if c.PanelsPerDataLine < 1 {
		c.PanelsPerDataLine = DefaultPanelsPerDataLine
	}
	if c.PanelsPerCircuit < 1 {
		c.PanelsPerCircuit = DefaultPanelsPerCircuit
	}
}

// Validate reports unknown enum values and negative distances. Compute does
// not call it; it is meant for user-facing input layers.
func (c RoutingConfig) Validate() error {
	var errs []error
	if c.DropPosition != "" && !slices.Contains(dropPositions, c.DropPosition) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidDropPosition,
			"unknown drop position %q (want behind, stage-right or stage-left)", c.DropPosition).At("drop_position"))
	}
	if c.PowerEntry != "" && !slices.Contains(powerEntries, c.PowerEntry) {
		errs = append(errs, errors.New(errors.ErrCodeInvalidPowerEntry,
			"unknown power entry %q (want top or bottom)", c.PowerEntry).At("power_entry"))
	}
	for _, box := range []struct {
		field string
		p     Placement
	}{{"dist_box.main", c.DistBox.Main}, {"dist_box.backup", c.DistBox.Backup}} {
		if box.p != "" && !slices.Contains(placements, box.p) {
			errs = append(errs, errors.New(errors.ErrCodeInvalidPlacement,
				"unknown distribution box placement %q", box.p).At(box.field))
		}
	}
	errs = append(errs,
		errors.ValidateLength("wall_to_floor", c.WallToFloor),
		errors.ValidateLength("distro_to_wall", c.DistroToWall),
		errors.ValidateLength("processor_to_wall", c.ProcessorToWall),
		errors.ValidateLength("server_to_processor", c.ServerToProcessor),
		errors.ValidateLength("cable_pick", c.CablePick),
	)
	return errors.Join(errs...)
}

// LineConfig controls how panels are numbered into data lines.
type LineConfig struct {
	Mode      grid.Mode      `json:"mode"`
	Overrides grid.Overrides `json:"-"`
}
