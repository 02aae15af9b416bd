package cabling

import "fmt"

// Category groups cables by what they connect.
type Category string

// Cable categories.
const (
	CategoryPower  Category = "power"
	CategoryData   Category = "data"
	CategoryBridge Category = "bridge"
	CategoryTrunk  Category = "trunk"
	CategorySignal Category = "signal"
)

// Categories lists every category in report order.
var Categories = []Category{CategoryPower, CategoryData, CategoryBridge, CategoryTrunk, CategorySignal}

// CableType is the physical cable stock.
type CableType string

// Cable types.
const (
	TypeSOCA   CableType = "soca"
	TypeCopper CableType = "cat6a"
	TypeFiber  CableType = "fiber"
)

// FiberThresholdFt is the longest run still served by copper.
const FiberThresholdFt = 200.0

// signalType picks copper or fiber for a data-carrying run.
func signalType(ft float64) CableType {
	if ft > FiberThresholdFt {
		return TypeFiber
	}
	return TypeCopper
}

// Endpoint names used in From/To for off-wall equipment.
const (
	EndProcessor  = "Processor"
	EndServer     = "Server"
	EndDistro     = "Distro"
	EndDistBox    = "Dist box"
	EndBackupDist = "Backup dist box"
)

// NoLine marks cables that do not belong to a single data line.
const NoLine = -1

// Cable is one run in the schedule.
type Cable struct {
	Category Category  `json:"category"`
	Type     CableType `json:"type"`
	LengthFt float64   `json:"length_ft"`
	StockFt  int       `json:"stock_ft"`
	Line     int       `json:"line"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Backup   bool      `json:"backup,omitempty"`
	// Circuits is the number of power circuits a SOCA run carries.
	Circuits int `json:"circuits,omitempty"`
}

// String implements fmt.Stringer.
func (c Cable) String() string {
	s := fmt.Sprintf("%s %s %s→%s %.1fft (%dft)", c.Category, c.Type, c.From, c.To, c.LengthFt, c.StockFt)
	if c.Backup {
		s += " backup"
	}
	return s
}

func newCable(cat Category, typ CableType, raw float64, line int, from, to string) Cable {
	ft := round1(raw)
	return Cable{
		Category: cat,
		Type:     typ,
		LengthFt: ft,
		StockFt:  RoundUp(ft),
		Line:     line,
		From:     from,
		To:       to,
	}
}
