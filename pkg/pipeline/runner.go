package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wallcable/pkg/bom"
	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/cache"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/observability"
	"github.com/matzehuels/wallcable/pkg/project"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates p and runs every selected wall through compute, BOM and
// render.
func (r *Runner) Execute(ctx context.Context, p *project.Project, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	walls, err := selectWalls(p, opts.Walls)
	if err != nil {
		return nil, err
	}

	res := &Result{Project: p.Name, Walls: make([]WallResult, 0, len(walls))}
	lists := make([]*bom.List, 0, len(walls))

	for _, w := range walls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in := Input{Grid: w.Grid(), Lines: w.LineConfig(), Routing: p.RoutingConfig(w)}

		start := time.Now()
		cr, hash, hit, err := r.ComputeWithCacheInfo(ctx, w.Name, in, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
		res.Stats.ComputeTime += time.Since(start)

		wr := WallResult{
			ID:        w.ID,
			Name:      w.Name,
			Grid:      in.Grid,
			Cabling:   cr,
			BOM:       bom.FromResult(w.Name, cr),
			InputHash: hash,
			CacheInfo: CacheInfo{ComputeHit: hit},
		}
		if cr != nil {
			res.Stats.Panels += cr.Totals.Panels
			res.Stats.Cables += cr.Totals.Cables
		}

		if len(opts.Formats) > 0 {
			start = time.Now()
			ro := RenderOptions{Title: w.Name, Formats: opts.Formats, Power: opts.Power}
			wr.Artifacts, wr.CacheInfo.RenderHit, err = r.RenderWithCacheInfo(ctx, w.Name, cr, hash, ro)
			if err != nil {
				return nil, fmt.Errorf("wall %q: %w", w.Name, err)
			}
			res.Stats.RenderTime += time.Since(start)
		}

		r.Logger.Info("computed wall",
			"wall", w.Name,
			"cables", wr.BOM.Count(),
			"cached", hit)
		lists = append(lists, wr.BOM)
		res.Walls = append(res.Walls, wr)
	}

	res.BOM = bom.Combine(lists...)
	res.Stats.Walls = len(res.Walls)
	r.Logger.Info("project done",
		"walls", res.Stats.Walls,
		"panels", res.Stats.Panels,
		"cables", res.Stats.Cables,
		"duration", res.Stats.ComputeTime+res.Stats.RenderTime)
	return res, nil
}

// ComputeWithCacheInfo computes one wall, reading and writing the result
// cache. It returns the result, the input hash and whether the cache hit.
// A nil result means the wall has nothing to compute yet.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, wall string, in Input, refresh bool) (*cabling.Result, string, bool, error) {
	hash := in.Hash()
	key := r.Keyer.ResultKey(hash)
	hooks := observability.Pipeline()

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached *cabling.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return cached, hash, true, nil
			}
			r.Logger.Debug("discarding unreadable cache entry", "key", key)
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", key, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	panels := 0
	if in.Grid != nil {
		panels = in.Grid.ActiveCount()
	}
	hooks.OnComputeStart(ctx, wall, panels)
	start := time.Now()
	res := cabling.Compute(in.Grid, in.Lines, in.Routing)
	lines, cables := 0, 0
	if res != nil {
		lines, cables = res.Totals.DataLines, res.Totals.Cables
	}
	hooks.OnComputeComplete(ctx, wall, lines, cables, time.Since(start), nil)

	data, err := json.Marshal(res)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "result", len(data))
	}
	r.Logger.Debug("computed cabling", "wall", wall, "lines", lines, "cables", cables)
	return res, hash, false, nil
}

// Compute is a convenience wrapper around ComputeWithCacheInfo.
func (r *Runner) Compute(ctx context.Context, wall string, in Input) (*cabling.Result, error) {
	res, _, _, err := r.ComputeWithCacheInfo(ctx, wall, in, false)
	return res, err
}

// RenderWithCacheInfo renders a result with artifact caching. hash is the
// input hash returned by ComputeWithCacheInfo. It reports a hit only when
// every format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, wall string, res *cabling.Result, hash string, opts RenderOptions) (map[string][]byte, bool, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	keyOpts := func(format string) cache.ArtifactKeyOpts {
		if opts.Power {
			format += "+power"
		}
		return cache.ArtifactKeyOpts{Format: format, Title: opts.Title}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, keyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	for _, format := range missing {
		hooks.OnRenderStart(ctx, wall, format)
	}
	start := time.Now()
	rendered, err := Render(ctx, res, RenderOptions{Title: opts.Title, Formats: missing, Power: opts.Power})
	for _, format := range missing {
		hooks.OnRenderComplete(ctx, wall, format, len(rendered[format]), time.Since(start), err)
	}
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(hash, keyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	r.Logger.Debug("rendered wall", "wall", wall, "formats", missing, "duration", time.Since(start))
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// selectWalls resolves refs (IDs or names) to walls in project order.
func selectWalls(p *project.Project, refs []string) ([]*project.Wall, error) {
	if len(refs) == 0 {
		walls := make([]*project.Wall, len(p.Walls))
		for i := range p.Walls {
			walls[i] = &p.Walls[i]
		}
		return walls, nil
	}

	picked := make(map[*project.Wall]bool, len(refs))
	for _, ref := range refs {
		w, ok := p.Wall(ref)
		if !ok {
			return nil, errors.New(errors.ErrCodeWallNotFound, "no wall %q in project %q", ref, p.Name)
		}
		picked[w] = true
	}
	walls := make([]*project.Wall, 0, len(picked))
	for i := range p.Walls {
		if picked[&p.Walls[i]] {
			walls = append(walls, &p.Walls[i])
		}
	}
	return walls, nil
}
