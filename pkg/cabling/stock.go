package cabling

import "math"

// StockLengths are the manufactured cable lengths in feet, ascending.
var StockLengths = []int{25, 50, 75, 100, 150, 200, 250, 300}

// stockStepAbove is the increment used past the longest stock length.
const stockStepAbove = 50

// RoundUp returns the shortest stock length that covers ft. Past the
// longest stock length it rounds up to the next multiple of 50 ft.
// RoundUp is monotonic and idempotent.
func RoundUp(ft float64) int {
	for _, l := range StockLengths {
		if ft <= float64(l) {
			return l
		}
	}
	return int(math.Ceil(ft/stockStepAbove)) * stockStepAbove
}

// round1 rounds to one decimal place.
func round1(ft float64) float64 {
	return math.Round(ft*10) / 10
}
