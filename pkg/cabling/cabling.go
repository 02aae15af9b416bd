package cabling

import (
	"github.com/matzehuels/wallcable/pkg/grid"
)

// Result is the cable schedule of one wall.
type Result struct {
	Lines grid.Lines        `json:"lines"`
	Entry map[int]grid.Cell `json:"entry"`
	Exit  map[int]grid.Cell `json:"exit"`

	Power  []Cable `json:"power"`
	Data   []Cable `json:"data"`
	Bridge []Cable `json:"bridge"`
	Trunk  []Cable `json:"trunk"`
	Signal []Cable `json:"signal"`

	// Overloaded lists lines holding more panels than PanelsPerDataLine.
	// Column modes and overrides can produce them; serpentine walks cannot.
	Overloaded []int `json:"overloaded,omitempty"`

	Totals Totals `json:"totals"`
}

// Totals summarizes a Result.
type Totals struct {
	Panels     int                   `json:"panels"`
	DataLines  int                   `json:"data_lines"`
	Circuits   int                   `json:"circuits"`
	Cables     int                   `json:"cables"`
	ByCategory map[Category]int      `json:"by_category"`
	ByType     map[CableType]int     `json:"by_type"`
	FeetByType map[CableType]float64 `json:"feet_by_type"`
}

// Cables returns every cable in category order.
func (r *Result) Cables() []Cable {
	all := make([]Cable, 0, len(r.Power)+len(r.Data)+len(r.Bridge)+len(r.Trunk)+len(r.Signal))
	for _, cat := range Categories {
		all = append(all, r.ByCategory(cat)...)
	}
	return all
}

// ByCategory returns the cables of one category.
func (r *Result) ByCategory(cat Category) []Cable {
	switch cat {
	case CategoryPower:
		return r.Power
	case CategoryData:
		return r.Data
	case CategoryBridge:
		return r.Bridge
	case CategoryTrunk:
		return r.Trunk
	case CategorySignal:
		return r.Signal
	}
	return nil
}

// Compute builds the cable schedule for wall g.
//
// It returns nil when g has no cells or cfg.Panel lacks dimensions. Compute
// never reads package state and never mutates its arguments.
func Compute(g *grid.Grid, lc LineConfig, cfg RoutingConfig) *Result {
	if g.Empty() || !cfg.Panel.Resolved() {
		return nil
	}
	cfg.SetDefaults()
	mode, ok := grid.ParseMode(string(lc.Mode))
	if !ok {
		mode = grid.DefaultMode
	}

	lines := grid.Assign(g, lc.Overrides, cfg.PanelsPerDataLine, mode)
	entry, exit := grid.Endpoints(lines)
	order := lines.Indices()

	k := newCalculator(g, cfg)
	r := &Result{
		Lines: lines,
		Entry: entry,
		Exit:  exit,
	}

	var circuits int
	r.Power, circuits = k.powerCables()

	if cfg.DistBox.Enabled {
		main := cfg.DistBox.Main.Cell(g)
		r.Data = k.fanCables(main, EndDistBox, entry, order, false)
		r.Trunk = []Cable{k.trunkCable(main, EndDistBox, false)}
		if cfg.Redundancy {
			backup := cfg.DistBox.Backup.Cell(g)
			r.Data = append(r.Data, k.fanCables(backup, EndBackupDist, exit, order, true)...)
			r.Trunk = append(r.Trunk, k.trunkCable(backup, EndBackupDist, true))
		}
	} else {
		r.Data = k.dataCables(entry, order, false)
		if cfg.Redundancy {
			r.Data = append(r.Data, k.dataCables(exit, order, true)...)
		}
	}

	r.Bridge = k.bridgeCables(lines, order)
	if c, ok := k.signalCable(); ok {
		r.Signal = []Cable{c}
	}

	for _, i := range order {
		if len(lines[i]) > cfg.PanelsPerDataLine {
			r.Overloaded = append(r.Overloaded, i)
		}
	}

	r.Totals = r.summarize(g.ActiveCount(), circuits)
	return r
}

func (r *Result) summarize(panels, circuits int) Totals {
	t := Totals{
		Panels:     panels,
		DataLines:  len(r.Entry),
		Circuits:   circuits,
		ByCategory: make(map[Category]int),
		ByType:     make(map[CableType]int),
		FeetByType: make(map[CableType]float64),
	}
	for _, c := range r.Cables() {
		t.Cables++
		t.ByCategory[c.Category]++
		t.ByType[c.Type]++
		t.FeetByType[c.Type] = round1(t.FeetByType[c.Type] + c.LengthFt)
	}
	return t
}
