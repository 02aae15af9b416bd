// Package cabling turns a numbered panel wall into a cable schedule.
//
// [Compute] is the single entry point. Given a [grid.Grid], the line
// assignment settings and a [RoutingConfig], it assigns data lines, resolves
// each line's entry and exit panel, measures every power, data, bridge and
// trunk run in feet and maps the raw lengths onto stock cable lengths with
// [RoundUp]. The result is a fresh [Result] value; nothing is cached and no
// package state is touched, so identical inputs always produce identical
// results.
//
// # Units
//
// Panel sizes come in metres (the way manufacturers publish them) and are
// converted with [FeetPerMeter]. Every other distance is in feet. Raw lengths
// are rounded to one decimal; stock lengths are whole feet.
//
// # Routing Model
//
// The wall is a 2D grid hung above a floor. All data and power runs leave
// the wall at a single drop column chosen by [DropPosition] and then travel
// down to floor level. Runs leaving from the top edge go up, over the rigging
// (adding the cable pick) and down the full wall height; runs leaving from
// the bottom edge drop straight to the floor.
//
// Knocked-out panels are obstacles. Runs from the drop point or a
// distribution box to a panel add a detour penalty of extra grid steps
// (see package detour) times the average panel pitch. Jumpers between two
// consecutive panels of a line that are not neighbours are measured directly
// between panel centres plus one pick. The two rules approximate the same
// problem differently and are kept apart on purpose.
//
// # Incomplete Input
//
// Compute returns nil when the wall has no cells or the panel dimensions are
// unknown. Callers should treat nil as "nothing to compute yet".
package cabling
