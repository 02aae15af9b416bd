package errors

import (
	"strings"
	"unicode"
)

// MaxGridSide bounds the number of panels along one side of a wall. Real
// walls are tens to low hundreds of panels wide; anything larger is a typo.
const MaxGridSide = 1000

// ValidateName validates a project, wall or panel name. Problems are
// reported on the "name" field.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind).At("name")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "%s name too long (max 128 characters)", kind).At("name")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind).At("name")
		}
	}

	return nil
}

// ValidateGridSize checks wall dimensions. Zero is allowed: an empty wall
// is "nothing to compute yet", not a fault.
func ValidateGridSize(width, height int) error {
	var errs []error
	for _, side := range []struct {
		field string
		n     int
	}{{"width", width}, {"height", height}} {
		switch {
		case side.n < 0:
			errs = append(errs, New(ErrCodeInvalidGrid, "cannot be negative (got %d)", side.n).At(side.field))
		case side.n > MaxGridSide:
			errs = append(errs, New(ErrCodeInvalidGrid, "%d exceeds %d panels", side.n, MaxGridSide).At(side.field))
		}
	}
	return Join(errs...)
}

// ValidateCell checks that a (col, row) pair lies inside a width × height
// wall. The caller places the problem with [At].
func ValidateCell(what string, col, row, width, height int) error {
	if col < 0 || col >= width || row < 0 || row >= height {
		return New(ErrCodeInvalidGrid, "%s (%d,%d) is outside the %dx%d grid", what, col, row, width, height)
	}
	return nil
}

// ValidateLength checks a distance in feet, reported on field.
func ValidateLength(field string, ft float64) error {
	if ft < 0 {
		return New(ErrCodeInvalidInput, "cannot be negative (got %.1f ft)", ft).At(field)
	}
	return nil
}
