// Package detour measures how far a cable has to travel across a panel wall
// when knocked-out panels are in the way.
//
// Distances are counted in grid steps between 4-connected cells. [Distance]
// first tries the direct Manhattan L route (along the start row, then down or
// up the end column); when a knockout sits on that route it falls back to a
// breadth-first search that treats knockouts as walls. The destination cell
// is always enterable, so a cable may terminate at a knocked-out slot.
//
// If the wall cuts the start off from the destination entirely, [Distance]
// returns the plain Manhattan distance instead of failing. Callers converting
// steps into footage should read that value as an estimate.
package detour
