// Package bom turns cable schedules into a gear list: how many cables of
// each type and stock length to pull from inventory.
//
// A [List] is built per wall with [FromResult]; multi-wall shows merge their
// lists with [Combine]. Lines are keyed by category, cable type and stock
// length, and always come out in the same order.
package bom

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/wallcable/pkg/cabling"
)

// Line is one gear-list row.
type Line struct {
	Category cabling.Category  `json:"category"`
	Type     cabling.CableType `json:"type"`
	StockFt  int               `json:"stock_ft"`
	Count    int               `json:"count"`
	Backup   int               `json:"backup,omitempty"`
}

// List is a gear list for one or more walls.
type List struct {
	Walls []string `json:"walls"`
	Lines []Line   `json:"lines"`

	// StockFeet sums the stock lengths per cable type, i.e. what goes on
	// the truck. RawFeet sums the measured runs.
	StockFeet map[cabling.CableType]int     `json:"stock_feet"`
	RawFeet   map[cabling.CableType]float64 `json:"raw_feet"`
}

type key struct {
	cat     cabling.Category
	typ     cabling.CableType
	stockFt int
}

// FromResult builds the gear list of one wall. A nil result gives an empty
// list that still names the wall.
func FromResult(wall string, r *cabling.Result) *List {
	var cables []cabling.Cable
	if r != nil {
		cables = r.Cables()
	}
	l := build(cables)
	l.Walls = []string{wall}
	return l
}

// Combine merges several gear lists. Inputs are not modified.
func Combine(lists ...*List) *List {
	counts := make(map[key]Line)
	out := &List{
		StockFeet: make(map[cabling.CableType]int),
		RawFeet:   make(map[cabling.CableType]float64),
	}
	for _, l := range lists {
		if l == nil {
			continue
		}
		out.Walls = append(out.Walls, l.Walls...)
		for _, ln := range l.Lines {
			k := key{ln.Category, ln.Type, ln.StockFt}
			acc := counts[k]
			acc.Category, acc.Type, acc.StockFt = ln.Category, ln.Type, ln.StockFt
			acc.Count += ln.Count
			acc.Backup += ln.Backup
			counts[k] = acc
		}
		for t, ft := range l.StockFeet {
			out.StockFeet[t] += ft
		}
		for t, ft := range l.RawFeet {
			out.RawFeet[t] = round1(out.RawFeet[t] + ft)
		}
	}
	out.Lines = sorted(counts)
	return out
}

// Count returns the number of cables on the list.
func (l *List) Count() int {
	n := 0
	for _, ln := range l.Lines {
		n += ln.Count
	}
	return n
}

func build(cables []cabling.Cable) *List {
	counts := make(map[key]Line)
	l := &List{
		StockFeet: make(map[cabling.CableType]int),
		RawFeet:   make(map[cabling.CableType]float64),
	}
	for _, c := range cables {
		k := key{c.Category, c.Type, c.StockFt}
		acc := counts[k]
		acc.Category, acc.Type, acc.StockFt = c.Category, c.Type, c.StockFt
		acc.Count++
		if c.Backup {
			acc.Backup++
		}
		counts[k] = acc
		l.StockFeet[c.Type] += c.StockFt
		l.RawFeet[c.Type] = round1(l.RawFeet[c.Type] + c.LengthFt)
	}
	l.Lines = sorted(counts)
	return l
}

func sorted(counts map[key]Line) []Line {
	lines := make([]Line, 0, len(counts))
	for _, ln := range counts {
		lines = append(lines, ln)
	}
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Or(
			cmp.Compare(slices.Index(cabling.Categories, a.Category), slices.Index(cabling.Categories, b.Category)),
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.StockFt, b.StockFt),
		)
	})
	return lines
}

func round1(ft float64) float64 {
	return math.Round(ft*10) / 10
}
