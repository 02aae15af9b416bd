package project

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// Validate checks the project for mistakes a user can fix: missing names,
// unknown panels and modes, and cells outside their wall. Every mistake is
// reported, each with the path of its field (e.g. "walls[0].routing.cable_pick").
func (p *Project) Validate() error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(errors.ValidateName("project", p.Name))

	panels := make(map[string]bool, len(p.Panels))
	for i, ps := range p.Panels {
		at := fmt.Sprintf("panels[%d]", i)
		add(errors.At(errors.ValidateName("panel", ps.Name), at))
		key := strings.ToLower(ps.Name)
		if panels[key] {
			add(errors.New(errors.ErrCodeInvalidProject, "duplicate panel %q", ps.Name).At(at + ".name"))
		}
		panels[key] = true
		if !ps.Resolved() {
			add(errors.New(errors.ErrCodeInvalidProject, "panel %q needs positive width_m and height_m", ps.Name).At(at))
		}
	}

	walls := make(map[string]bool, len(p.Walls))
	for i := range p.Walls {
		w := &p.Walls[i]
		at := fmt.Sprintf("walls[%d]", i)
		key := strings.ToLower(w.Name)
		if walls[key] {
			add(errors.New(errors.ErrCodeInvalidProject, "duplicate wall %q", w.Name).At(at + ".name"))
		}
		walls[key] = true
		add(errors.At(p.validateWall(w), at))
	}

	return errors.Join(errs...)
}

func (p *Project) validateWall(w *Wall) error {
	var errs []error
	add := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(errors.ValidateName("wall", w.Name))
	add(errors.ValidateGridSize(w.Width, w.Height))
	if _, ok := p.Panel(w.Panel); !ok {
		add(errors.New(errors.ErrCodePanelNotFound, "wall %q uses unknown panel %q", w.Name, w.Panel).At("panel"))
	}
	if _, ok := grid.ParseMode(w.Mode); !ok {
		add(errors.New(errors.ErrCodeInvalidMode, "wall %q: unknown mode %q", w.Name, w.Mode).At("mode"))
	}
	for i, rc := range w.Removed {
		at := fmt.Sprintf("removed[%d]", i)
		if len(rc) != 2 {
			add(errors.New(errors.ErrCodeInvalidGrid, "wall %q: knockout %v must be [col, row]", w.Name, rc).At(at))
			continue
		}
		add(errors.At(errors.ValidateCell("knockout", rc[0], rc[1], w.Width, w.Height), at))
	}
	for i, ov := range w.Overrides {
		at := fmt.Sprintf("overrides[%d]", i)
		add(errors.At(errors.ValidateCell("override", ov.Col, ov.Row, w.Width, w.Height), at))
		if ov.Line < 1 {
			add(errors.New(errors.ErrCodeInvalidInput, "wall %q: override line must be 1 or more (got %d)", w.Name, ov.Line).At(at + ".line"))
		}
	}
	add(errors.At(p.RoutingConfig(w).Validate(), "routing"))

	return errors.Join(errs...)
}
