// Package grid models an LED video wall as a rectangle of panel cells and
// numbers its panels into data lines.
//
// # Overview
//
// A wall is a [Grid] of width × height cells. Some cells may be knocked out
// (no physical panel installed); they stay inside the rectangle but carry no
// panel, consume no data-line capacity and act as obstacles for cable routing.
//
// A data line is the serial chain of panels driven from one processor output
// port. [Assign] walks the grid in one of four [Mode]s and returns [Lines]: for
// every 0-based line index, the ordered cells in physical cabling order. The
// first and last cells of each line are its entry and exit points, see
// [Endpoints].
//
// # Overrides
//
// Individual panels can be pinned to a line with [Overrides]. Override values
// are 1-based, matching what installers write on panel labels; [Assign]
// normalizes them to 0-based indices and reserves them up front so the
// automatic counter never hands out a pinned line number, even before the
// traversal reaches the pinned panel.
//
// # Serpentine Traversal
//
// Serpentine modes walk columns left to right, alternating down and up. A line
// fills until it holds panelsPerLine automatically assigned panels; when that
// happens in the middle of a column, the next line picks up the rest of the
// column in the same direction, keeping the physical path continuous:
//
//	col:  0   1   2
//	      ↓   ↑   ↓
//	      0   1   1
//	      0   1   2
//	      0   1   2
//	      0   1   2     (panelsPerLine = 5)
//
// # Concurrency
//
// A [Grid] is immutable after construction and safe for concurrent reads.
// [Assign] and [Endpoints] allocate fresh results on every call.
package grid
