// Package project loads show files: a panel catalog plus one or more walls,
// each with its grid, knockouts, line settings and routing parameters.
//
// Project files are TOML, or YAML and JSON with the same keys:
//
//	name = "Main Stage"
//
//	[[panels]]
//	name = "BP2"
//	width_m = 0.5
//	height_m = 0.5
//
//	[[walls]]
//	name = "Center"
//	panel = "BP2"
//	width = 16
//	height = 9
//	mode = "serpentine-top"
//	removed = [[7, 4], [8, 4]]
//	overrides = [{ col = 0, row = 0, line = 3 }]
//
//	[walls.routing]
//	cable_pick = 10
//	drop_position = "stage-left"
//
// Routing keys left out of a file keep the defaults of
// [cabling.DefaultRoutingConfig]; keys set to zero stay zero.
package project

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// wallNamespace seeds deterministic wall IDs.
var wallNamespace = uuid.MustParse("6f1c2a7e-2b0d-4c8e-9a53-5d1e0b7f4c21")

// Project is a show: a panel catalog and the walls built from it.
type Project struct {
	Name   string              `toml:"name" yaml:"name" json:"name"`
	Panels []cabling.PanelSpec `toml:"panels" yaml:"panels" json:"panels"`
	Walls  []Wall              `toml:"walls" yaml:"walls" json:"walls"`
}

// Wall is one video wall of a project.
type Wall struct {
	ID        string     `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Name      string     `toml:"name" yaml:"name" json:"name"`
	Panel     string     `toml:"panel" yaml:"panel" json:"panel"`
	Width     int        `toml:"width" yaml:"width" json:"width"`
	Height    int        `toml:"height" yaml:"height" json:"height"`
	Mode      string     `toml:"mode,omitempty" yaml:"mode,omitempty" json:"mode,omitempty"`
	Removed   [][]int    `toml:"removed,omitempty" yaml:"removed,omitempty" json:"removed,omitempty"`
	Overrides []Override `toml:"overrides,omitempty" yaml:"overrides,omitempty" json:"overrides,omitempty"`
	Routing   Routing    `toml:"routing" yaml:"routing" json:"routing"`
}

// Override pins panel (Col, Row) to the 1-based data line Line.
type Override struct {
	Col  int `toml:"col" yaml:"col" json:"col"`
	Row  int `toml:"row" yaml:"row" json:"row"`
	Line int `toml:"line" yaml:"line" json:"line"`
}

// Load reads and parses a project file. The format follows the file
// extension; see [FormatFor].
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "read %s", path)
	}
	p, err := ParseFormat(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "parse %s", path)
	}
	return p, nil
}

// Parse decodes a TOML project and assigns IDs to walls without one.
// It does not validate; call [Project.Validate] for that.
func Parse(data []byte) (*Project, error) {
	var p Project
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidProject, "unknown keys: %s", strings.Join(keys, ", "))
	}
	p.assignIDs()
	return &p, nil
}

// ParseJSON decodes a JSON project, as sent to the API server, and assigns
// IDs to walls without one. Unknown fields are rejected.
func ParseJSON(data []byte) (*Project, error) {
	var p Project
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	p.assignIDs()
	return &p, nil
}

// Encode writes p as TOML.
func (p *Project) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Bytes returns p as TOML.
func (p *Project) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Project) assignIDs() {
	for i := range p.Walls {
		if p.Walls[i].ID == "" {
			p.Walls[i].ID = WallID(p.Name, p.Walls[i].Name)
		}
	}
}

// WallID derives a stable ID from the project and wall names.
func WallID(project, wall string) string {
	return uuid.NewSHA1(wallNamespace, []byte(project+"\x00"+wall)).String()
}

// Panel looks up a panel type by name, case-insensitively.
func (p *Project) Panel(name string) (cabling.PanelSpec, bool) {
	for _, ps := range p.Panels {
		if strings.EqualFold(ps.Name, name) {
			return ps, true
		}
	}
	return cabling.PanelSpec{}, false
}

// Wall finds a wall by ID or name.
func (p *Project) Wall(ref string) (*Wall, bool) {
	for i := range p.Walls {
		w := &p.Walls[i]
		if w.ID == ref || strings.EqualFold(w.Name, ref) {
			return w, true
		}
	}
	return nil, false
}

// Grid builds the wall's panel grid. Malformed knockout pairs are skipped.
func (w *Wall) Grid() *grid.Grid {
	removed := make([]grid.Cell, 0, len(w.Removed))
	for _, rc := range w.Removed {
		if len(rc) == 2 {
			removed = append(removed, grid.Cell{Col: rc[0], Row: rc[1]})
		}
	}
	return grid.New(w.Width, w.Height, removed...)
}

// LineConfig returns the wall's line numbering settings.
func (w *Wall) LineConfig() cabling.LineConfig {
	mode, ok := grid.ParseMode(w.Mode)
	if !ok {
		mode = grid.DefaultMode
	}
	var o grid.Overrides
	if len(w.Overrides) > 0 {
		o = make(grid.Overrides, len(w.Overrides))
		for _, ov := range w.Overrides {
			o[grid.Cell{Col: ov.Col, Row: ov.Row}] = ov.Line
		}
	}
	return cabling.LineConfig{Mode: mode, Overrides: o}
}

// RoutingConfig resolves the wall's routing against the project's panel
// catalog. An unknown panel leaves the panel spec empty, which
// [cabling.Compute] treats as incomplete input.
func (p *Project) RoutingConfig(w *Wall) cabling.RoutingConfig {
	cfg := w.Routing.Apply(cabling.DefaultRoutingConfig())
	cfg.Panel, _ = p.Panel(w.Panel)
	return cfg
}
