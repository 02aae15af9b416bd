package cabling

import (
	"math"

	"github.com/matzehuels/wallcable/pkg/detour"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// circuitsPerSOCA is how many power circuits one SOCA run carries.
const circuitsPerSOCA = 6

// calculator measures cable runs on one wall. pw and ph are the panel pitch
// in feet.
type calculator struct {
	grid    *grid.Grid
	cfg     RoutingConfig
	pw, ph  float64
	wallH   float64
	dropCol int
}

func newCalculator(g *grid.Grid, cfg RoutingConfig) *calculator {
	pw := cfg.Panel.WidthM * FeetPerMeter
	ph := cfg.Panel.HeightM * FeetPerMeter
	return &calculator{
		grid:    g,
		cfg:     cfg,
		pw:      pw,
		ph:      ph,
		wallH:   float64(g.Height()) * ph,
		dropCol: cfg.DropPosition.column(g.Width()),
	}
}

// avgPitch converts grid steps into feet for detour penalties.
func (k *calculator) avgPitch() float64 {
	return (k.pw + k.ph) / 2
}

// nearTop reports whether row is in the upper half of the wall.
func (k *calculator) nearTop(row int) bool {
	return 2*row < k.grid.Height()
}

// toEdge returns the edge row nearest to row and the vertical run from the
// panel centre to that edge.
func (k *calculator) toEdge(row int) (edgeRow int, ft float64, top bool) {
	if k.nearTop(row) {
		return 0, (float64(row) + 0.5) * k.ph, true
	}
	h := k.grid.Height()
	return h - 1, (float64(h-row) - 0.5) * k.ph, false
}

// toFloor is the run from a wall edge down to floor level. Leaving from the
// top goes over the rigging once (the pick) and down the whole wall.
func (k *calculator) toFloor(top bool) float64 {
	if top {
		return k.wallH + k.cfg.CablePick + k.cfg.WallToFloor
	}
	return k.cfg.WallToFloor
}

// detourPenalty is the footage added for routing around knockouts.
func (k *calculator) detourPenalty(from, to grid.Cell) float64 {
	return float64(detour.Extra(from, to, k.grid)) * k.avgPitch()
}

// dataRun measures a processor → panel run without a distribution box.
func (k *calculator) dataRun(c grid.Cell) float64 {
	edgeRow, vertical, top := k.toEdge(c.Row)
	horizontal := float64(abs(c.Col-k.dropCol)) * k.pw
	ft := vertical + horizontal + k.toFloor(top) + k.cfg.ProcessorToWall
	return ft + k.detourPenalty(grid.Cell{Col: k.dropCol, Row: edgeRow}, c)
}

// fanRun measures a distribution box → panel run.
func (k *calculator) fanRun(box, c grid.Cell) float64 {
	ft := float64(abs(box.Col-c.Col))*k.pw + float64(abs(box.Row-c.Row))*k.ph
	return ft + k.detourPenalty(box, c)
}

// trunkRun measures a distribution box → processor run.
func (k *calculator) trunkRun(box grid.Cell) float64 {
	_, vertical, top := k.toEdge(box.Row)
	horizontal := float64(abs(box.Col-k.dropCol)) * k.pw
	return vertical + horizontal + k.toFloor(top) + k.cfg.ProcessorToWall
}

// bridgeRun measures a jumper between two non-adjacent panels of a line.
func (k *calculator) bridgeRun(a, b grid.Cell) float64 {
	return float64(abs(a.Col-b.Col))*k.pw + float64(abs(a.Row-b.Row))*k.ph + k.cfg.CablePick
}

// powerRun measures a distro → wall SOCA run landing at the centre of the
// columns its panels span.
func (k *calculator) powerRun(minCol, maxCol int) float64 {
	landing := float64(minCol+maxCol+1) / 2 * k.pw
	drop := (float64(k.dropCol) + 0.5) * k.pw
	return math.Abs(landing-drop) + k.toFloor(k.cfg.PowerEntry != PowerBottom) + k.cfg.DistroToWall
}

// powerCables groups panels into circuits and circuits into SOCA runs.
// Panels are taken column by column, top to bottom.
func (k *calculator) powerCables() ([]Cable, int) {
	cells := k.grid.ActiveCells()
	perCircuit := max(k.cfg.PanelsPerCircuit, 1)
	perRun := perCircuit * circuitsPerSOCA

	var cables []Cable
	circuits := 0
	for start := 0; start < len(cells); start += perRun {
		group := cells[start:min(start+perRun, len(cells))]
		minCol, maxCol := group[0].Col, group[len(group)-1].Col
		n := (len(group) + perCircuit - 1) / perCircuit
		circuits += n

		c := newCable(CategoryPower, TypeSOCA, k.powerRun(minCol, maxCol), NoLine,
			EndDistro, group[0].Label()+"–"+group[len(group)-1].Label())
		c.Circuits = n
		cables = append(cables, c)
	}
	return cables, circuits
}

// dataCables emits one processor → panel run per line, from entry points or,
// for the backup set, from exit points.
func (k *calculator) dataCables(points map[int]grid.Cell, order []int, backup bool) []Cable {
	cables := make([]Cable, 0, len(points))
	for _, i := range order {
		c, ok := points[i]
		if !ok {
			continue
		}
		ft := k.dataRun(c)
		cable := newCable(CategoryData, signalType(round1(ft)), ft, i, EndProcessor, c.Label())
		cable.Backup = backup
		cables = append(cables, cable)
	}
	return cables
}

// fanCables emits distribution box → panel runs.
func (k *calculator) fanCables(box grid.Cell, name string, points map[int]grid.Cell, order []int, backup bool) []Cable {
	cables := make([]Cable, 0, len(points))
	for _, i := range order {
		c, ok := points[i]
		if !ok {
			continue
		}
		ft := k.fanRun(box, c)
		cable := newCable(CategoryData, signalType(round1(ft)), ft, i, name, c.Label())
		cable.Backup = backup
		cables = append(cables, cable)
	}
	return cables
}

// trunkCable emits the distribution box → processor run.
func (k *calculator) trunkCable(box grid.Cell, name string, backup bool) Cable {
	ft := k.trunkRun(box)
	c := newCable(CategoryTrunk, signalType(round1(ft)), ft, NoLine, name, EndProcessor)
	c.Backup = backup
	return c
}

// bridgeCables walks each line and emits a jumper wherever two consecutive
// panels are not neighbours.
func (k *calculator) bridgeCables(lines grid.Lines, order []int) []Cable {
	var cables []Cable
	for _, i := range order {
		cells := lines[i]
		for j := 1; j < len(cells); j++ {
			a, b := cells[j-1], cells[j]
			if a.Adjacent(b) {
				continue
			}
			ft := k.bridgeRun(a, b)
			cables = append(cables, newCable(CategoryBridge, signalType(round1(ft)), ft, i, a.Label(), b.Label()))
		}
	}
	return cables
}

// signalCable emits the media server → processor run, if any.
func (k *calculator) signalCable() (Cable, bool) {
	ft := k.cfg.ServerToProcessor
	if ft <= 0 {
		return Cable{}, false
	}
	return newCable(CategorySignal, signalType(round1(ft)), ft, NoLine, EndServer, EndProcessor), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
