package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/cache"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
	"github.com/matzehuels/wallcable/pkg/observability"
	"github.com/matzehuels/wallcable/pkg/project"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, quietLogger())
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"json", false},
		{"png", true},
		{"SVG", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}

	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestInputHash(t *testing.T) {
	base := func() Input {
		cfg := cabling.DefaultRoutingConfig()
		cfg.Panel = cabling.PanelSpec{WidthM: 0.5, HeightM: 0.5}
		return Input{
			Grid: grid.New(4, 3, grid.Cell{Col: 1, Row: 1}),
			Lines: cabling.LineConfig{
				Mode:      grid.ModeSerpentineTop,
				Overrides: grid.Overrides{{Col: 0, Row: 0}: 2, {Col: 3, Row: 2}: 1},
			},
			Routing: cfg,
		}
	}
	h := base().Hash()
	if len(h) != 64 {
		t.Fatalf("Hash length = %d", len(h))
	}

	same := []struct {
		name string
		edit func(*Input)
	}{
		{"unchanged", func(*Input) {}},
		{"mode alias", func(in *Input) { in.Lines.Mode = "serpentine-from-top" }},
		{"unknown mode", func(in *Input) { in.Lines.Mode = "zigzag" }},
		{"empty enums", func(in *Input) { in.Routing.DropPosition, in.Routing.PowerEntry = "", "" }},
	}
	for _, tt := range same {
		in := base()
		tt.edit(&in)
		if got := in.Hash(); got != h {
			t.Errorf("%s: hash changed", tt.name)
		}
	}

	differ := []struct {
		name string
		edit func(*Input)
	}{
		{"knockout", func(in *Input) { in.Grid = grid.New(4, 3) }},
		{"mode", func(in *Input) { in.Lines.Mode = grid.ModeAllBottom }},
		{"override", func(in *Input) { in.Lines.Overrides = nil }},
		{"pick", func(in *Input) { in.Routing.CablePick = 10 }},
		{"panel", func(in *Input) { in.Routing.Panel.WidthM = 0.6 }},
	}
	for _, tt := range differ {
		in := base()
		tt.edit(&in)
		if in.Hash() == h {
			t.Errorf("%s: hash should change", tt.name)
		}
	}

	if (Input{}).Hash() == "" {
		t.Error("nil grid should still hash")
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	p := project.Example()

	res, err := r.Execute(ctx, p, Options{Formats: []string{FormatDOT, FormatJSON}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Project != p.Name || len(res.Walls) != 2 {
		t.Fatalf("got %q with %d walls", res.Project, len(res.Walls))
	}

	for i, w := range res.Walls {
		if w.Cabling == nil {
			t.Fatalf("wall %q has no cabling", w.Name)
		}
		if w.ID != p.Walls[i].ID {
			t.Errorf("wall %d ID = %q, want %q", i, w.ID, p.Walls[i].ID)
		}
		if w.CacheInfo.ComputeHit || w.CacheInfo.RenderHit {
			t.Errorf("wall %q: first run should miss the cache", w.Name)
		}
		dot, err := w.Artifact(FormatDOT)
		if err != nil || !bytes.HasPrefix(dot, []byte("digraph wall {")) {
			t.Errorf("wall %q: bad dot artifact: %v", w.Name, err)
		}
		var decoded cabling.Result
		if err := json.Unmarshal(w.Artifacts[FormatJSON], &decoded); err != nil {
			t.Errorf("wall %q: json artifact: %v", w.Name, err)
		}
		if _, err := w.Artifact(FormatSVG); err == nil {
			t.Error("svg was not requested")
		}
	}

	center := res.Walls[0].Cabling
	if center.Totals.Panels != 16*9-2 {
		t.Errorf("center panels = %d", center.Totals.Panels)
	}
	if res.Stats.Panels != center.Totals.Panels+6*4 {
		t.Errorf("stats panels = %d", res.Stats.Panels)
	}
	if res.BOM.Count() != res.Stats.Cables {
		t.Errorf("BOM counts %d cables, stats %d", res.BOM.Count(), res.Stats.Cables)
	}
	if diff := cmp.Diff([]string{"Center", "Stage Left"}, res.BOM.Walls); diff != "" {
		t.Errorf("BOM walls (-want +got):\n%s", diff)
	}
}

func TestExecuteUsesCache(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	p := project.Example()
	opts := Options{Formats: []string{FormatDOT}}

	first, err := r.Execute(ctx, p, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(ctx, p, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range second.Walls {
		if !w.CacheInfo.ComputeHit || !w.CacheInfo.RenderHit {
			t.Errorf("wall %q: second run should hit the cache (%+v)", w.Name, w.CacheInfo)
		}
		if diff := cmp.Diff(first.Walls[i].Cabling, w.Cabling); diff != "" {
			t.Errorf("cached result differs (-first +second):\n%s", diff)
		}
		if !bytes.Equal(first.Walls[i].Artifacts[FormatDOT], w.Artifacts[FormatDOT]) {
			t.Error("cached artifact differs")
		}
	}

	refreshed, err := r.Execute(ctx, p, Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.Walls[0].CacheInfo.ComputeHit {
		t.Error("refresh should bypass the result cache")
	}

	p.Walls[0].Removed = nil
	changed, err := r.Execute(ctx, p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if changed.Walls[0].CacheInfo.ComputeHit {
		t.Error("an edited wall should miss the cache")
	}
	if !changed.Walls[1].CacheInfo.ComputeHit {
		t.Error("an untouched wall should still hit the cache")
	}
}

func TestExecuteSelectWalls(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	p := project.Example()

	res, err := r.Execute(ctx, p, Options{Walls: []string{"stage left", p.Walls[1].ID}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Walls) != 1 || res.Walls[0].Name != "Stage Left" {
		t.Errorf("selected %d walls", len(res.Walls))
	}

	_, err = r.Execute(ctx, p, Options{Walls: []string{"Balcony"}})
	if !errors.Is(err, errors.ErrCodeWallNotFound) {
		t.Errorf("unknown wall: err = %v", err)
	}
}

func TestExecuteRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, quietLogger())

	if _, err := r.Execute(ctx, project.Example(), Options{Formats: []string{"pdf"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: err = %v", err)
	}

	p := project.Example()
	p.Walls[0].Panel = "missing"
	if _, err := r.Execute(ctx, p, Options{}); !errors.Is(err, errors.ErrCodePanelNotFound) {
		t.Errorf("bad project: err = %v", err)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.Execute(cctx, project.Example(), Options{}); err != context.Canceled {
		t.Errorf("canceled context: err = %v", err)
	}
}

func TestComputeEmptyWall(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Compute(context.Background(), "empty", Input{Grid: grid.New(0, 0)})
	if err != nil || res != nil {
		t.Errorf("empty wall = %v, %v; want nil, nil", res, err)
	}
}

func TestRenderSVG(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), project.Example(), Options{
		Walls:   []string{"Stage Left"},
		Formats: []string{FormatSVG},
		Power:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	svg, err := res.Walls[0].Artifact(FormatSVG)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "Distro") {
		t.Error("svg should contain the power distro")
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	mu                sync.Mutex
	hits, misses, set map[string]int
}

func newCountingHooks() *countingHooks {
	return &countingHooks{hits: map[string]int{}, misses: map[string]int{}, set: map[string]int{}}
}

func (h *countingHooks) OnCacheHit(_ context.Context, k string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits[k]++
}

func (h *countingHooks) OnCacheMiss(_ context.Context, k string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses[k]++
}

func (h *countingHooks) OnCacheSet(_ context.Context, k string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set[k]++
}

func TestCacheHooks(t *testing.T) {
	hooks := newCountingHooks()
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	r := newTestRunner(t)
	opts := Options{Walls: []string{"Center"}, Formats: []string{FormatDOT}}
	for range 2 {
		if _, err := r.Execute(ctx, project.Example(), opts); err != nil {
			t.Fatal(err)
		}
	}

	want := map[string]int{"result": 1, "artifact": 1}
	if diff := cmp.Diff(want, hooks.misses); diff != "" {
		t.Errorf("misses (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, hooks.hits); diff != "" {
		t.Errorf("hits (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, hooks.set); diff != "" {
		t.Errorf("sets (-want +got):\n%s", diff)
	}
}
