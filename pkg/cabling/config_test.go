package cabling

import (
	"testing"

	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
)

func TestDropColumn(t *testing.T) {
	tests := []struct {
		pos   DropPosition
		width int
		want  int
	}{
		{DropBehind, 2, 1},
		{DropBehind, 5, 2},
		{DropStageRight, 5, 0},
		{DropStageLeft, 5, 4},
		{DropStageLeft, 0, 0},
		{"", 8, 4},
	}
	for _, tt := range tests {
		if got := tt.pos.column(tt.width); got != tt.want {
			t.Errorf("%q.column(%d) = %d, want %d", tt.pos, tt.width, got, tt.want)
		}
	}
}

func TestPlacementCell(t *testing.T) {
	g := grid.New(5, 4)
	tests := []struct {
		p    Placement
		want grid.Cell
	}{
		{PlaceTopCenter, grid.Cell{Col: 2, Row: 0}},
		{PlaceTopLeft, grid.Cell{Col: 0, Row: 0}},
		{PlaceTopRight, grid.Cell{Col: 4, Row: 0}},
		{PlaceCenter, grid.Cell{Col: 2, Row: 2}},
		{PlaceBottomCenter, grid.Cell{Col: 2, Row: 3}},
		{PlaceBottomLeft, grid.Cell{Col: 0, Row: 3}},
		{PlaceBottomRight, grid.Cell{Col: 4, Row: 3}},
	}
	for _, tt := range tests {
		if got := tt.p.Cell(g); got != tt.want {
			t.Errorf("%q.Cell() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg RoutingConfig
	cfg.DistBox.Main = PlaceBottomLeft
	cfg.SetDefaults()

	if cfg.DropPosition != DropBehind || cfg.PowerEntry != PowerTop {
		t.Errorf("enum defaults = %q/%q", cfg.DropPosition, cfg.PowerEntry)
	}
	if cfg.DistBox.Backup != PlaceBottomLeft {
		t.Errorf("backup placement = %q, want main placement", cfg.DistBox.Backup)
	}
	if cfg.PanelsPerDataLine != DefaultPanelsPerDataLine || cfg.PanelsPerCircuit != DefaultPanelsPerCircuit {
		t.Errorf("capacities = %d/%d", cfg.PanelsPerDataLine, cfg.PanelsPerCircuit)
	}
	if cfg.WallToFloor != 0 {
		t.Errorf("SetDefaults must keep explicit zero distances, got %v", cfg.WallToFloor)
	}
}

func TestDefaultRoutingConfig(t *testing.T) {
	cfg := DefaultRoutingConfig()
	if cfg.WallToFloor != 5 || cfg.CablePick != 0 || cfg.DropPosition != DropBehind {
		t.Errorf("defaults = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*RoutingConfig)
		code  errors.Code
		field string
	}{
		{"drop", func(c *RoutingConfig) { c.DropPosition = "upstage" }, errors.ErrCodeInvalidDropPosition, "drop_position"},
		{"power", func(c *RoutingConfig) { c.PowerEntry = "side" }, errors.ErrCodeInvalidPowerEntry, "power_entry"},
		{"placement", func(c *RoutingConfig) { c.DistBox.Backup = "floor" }, errors.ErrCodeInvalidPlacement, "dist_box.backup"},
		{"negative", func(c *RoutingConfig) { c.CablePick = -1 }, errors.ErrCodeInvalidInput, "cable_pick"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRoutingConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() = %v, want code %s", err, tt.code)
			}
			if got := errors.Flatten(err)[0].Field; got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestPanelSpecResolved(t *testing.T) {
	if (PanelSpec{WidthM: 0.5}).Resolved() {
		t.Error("missing height should not resolve")
	}
	if !(PanelSpec{WidthM: 0.5, HeightM: 1}).Resolved() {
		t.Error("complete spec should resolve")
	}
}
