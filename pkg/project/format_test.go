package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wallcable/pkg/errors"
)

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"show.toml":      FormatTOML,
		"show":           FormatTOML,
		"show.yaml":      FormatYAML,
		"dir/Show.YML":   FormatYAML,
		"show.json":      FormatJSON,
		"show.json.toml": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := Example()
	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			data, err := want.Marshal(f)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got, err := ParseFormat(data, f)
			if err != nil {
				t.Fatalf("ParseFormat() error: %v\n%s", err, data)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	const doc = `
name: Side Stage
panels:
  - name: BP2
    width_m: 0.5
    height_m: 0.5
walls:
  - name: Left
    panel: BP2
    width: 4
    height: 3
    mode: all-bottom
    removed: [[1, 1]]
    routing:
      cable_pick: 0
      drop_position: stage-right
`
	p, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	w := &p.Walls[0]
	if w.ID == "" || w.Routing.CablePick == nil || *w.Routing.CablePick != 0 {
		t.Errorf("wall = %+v", w)
	}
	if cfg := p.RoutingConfig(w); cfg.DropPosition != "stage-right" || cfg.WallToFloor != 5 {
		t.Errorf("routing = %+v", cfg)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key": "name: x\ncolour: red\n",
		"empty":       "",
		"bad syntax":  "name: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(doc))
			if !errors.Is(err, errors.ErrCodeInvalidProject) {
				t.Errorf("ParseYAML() = %v, want %s", err, errors.ErrCodeInvalidProject)
			}
		})
	}
}

func TestLoadByExtension(t *testing.T) {
	data, err := Example().Marshal(FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "show.yml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Name != "Example Show" || len(p.Walls) != 2 {
		t.Errorf("loaded %q with %d walls", p.Name, len(p.Walls))
	}
}
