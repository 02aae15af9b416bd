package project

import "github.com/matzehuels/wallcable/pkg/cabling"

// Routing is the file form of [cabling.RoutingConfig]. Every field is
// optional; nil means "use the default".
type Routing struct {
	WallToFloor       *float64 `toml:"wall_to_floor,omitempty" yaml:"wall_to_floor,omitempty" json:"wall_to_floor,omitempty"`
	DistroToWall      *float64 `toml:"distro_to_wall,omitempty" yaml:"distro_to_wall,omitempty" json:"distro_to_wall,omitempty"`
	ProcessorToWall   *float64 `toml:"processor_to_wall,omitempty" yaml:"processor_to_wall,omitempty" json:"processor_to_wall,omitempty"`
	ServerToProcessor *float64 `toml:"server_to_processor,omitempty" yaml:"server_to_processor,omitempty" json:"server_to_processor,omitempty"`
	CablePick         *float64 `toml:"cable_pick,omitempty" yaml:"cable_pick,omitempty" json:"cable_pick,omitempty"`

	DropPosition string   `toml:"drop_position,omitempty" yaml:"drop_position,omitempty" json:"drop_position,omitempty"`
	PowerEntry   string   `toml:"power_entry,omitempty" yaml:"power_entry,omitempty" json:"power_entry,omitempty"`
	DistBox      *DistBox `toml:"dist_box,omitempty" yaml:"dist_box,omitempty" json:"dist_box,omitempty"`
	Redundancy   bool     `toml:"redundancy,omitempty" yaml:"redundancy,omitempty" json:"redundancy,omitempty"`

	PanelsPerDataLine int `toml:"panels_per_data_line,omitempty" yaml:"panels_per_data_line,omitempty" json:"panels_per_data_line,omitempty"`
	PanelsPerCircuit  int `toml:"panels_per_circuit,omitempty" yaml:"panels_per_circuit,omitempty" json:"panels_per_circuit,omitempty"`
}

// DistBox is the file form of [cabling.DistBox].
type DistBox struct {
	Enabled bool   `toml:"enabled" yaml:"enabled" json:"enabled"`
	Main    string `toml:"main,omitempty" yaml:"main,omitempty" json:"main,omitempty"`
	Backup  string `toml:"backup,omitempty" yaml:"backup,omitempty" json:"backup,omitempty"`
}

// Apply overlays the set fields of r onto base.
func (r Routing) Apply(base cabling.RoutingConfig) cabling.RoutingConfig {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.WallToFloor, r.WallToFloor)
	set(&base.DistroToWall, r.DistroToWall)
	set(&base.ProcessorToWall, r.ProcessorToWall)
	set(&base.ServerToProcessor, r.ServerToProcessor)
	set(&base.CablePick, r.CablePick)

	if r.DropPosition != "" {
		base.DropPosition = cabling.DropPosition(r.DropPosition)
	}
	if r.PowerEntry != "" {
		base.PowerEntry = cabling.PowerEntry(r.PowerEntry)
	}
	if r.DistBox != nil {
		base.DistBox.Enabled = r.DistBox.Enabled
		if r.DistBox.Main != "" {
			base.DistBox.Main = cabling.Placement(r.DistBox.Main)
		}
		if r.DistBox.Backup != "" {
			base.DistBox.Backup = cabling.Placement(r.DistBox.Backup)
		}
	}
	base.Redundancy = base.Redundancy || r.Redundancy
	if r.PanelsPerDataLine > 0 {
		base.PanelsPerDataLine = r.PanelsPerDataLine
	}
	if r.PanelsPerCircuit > 0 {
		base.PanelsPerCircuit = r.PanelsPerCircuit
	}
	return base
}
