package chart

import (
	"strings"

	"oc-server/models"
)

// MoveDirection is the indicator attached to a move-suggested booking.
type MoveDirection int

const (
	// DirectionNone means the direction could not be determined; the
	// cell renders without a marker.
	DirectionNone MoveDirection = iota
	DirectionUp
	DirectionDown
)

// Direction marker glyphs prepended to a move-suggested cell's text.
const (
	UP_MARKER   = "▲"
	DOWN_MARKER = "▼"
)

// NormalizeUnitName trims a unit name and collapses internal whitespace
// runs to single spaces, so backend-formatted names and chart unit codes
// compare equal.
func NormalizeUnitName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// UnitIndex is the positional linearization of every unit across all
// categories, in listed order. It is built once per payload and shared by
// all move-direction lookups, since a suggestion may point at a unit in
// another category. Lookup keys are normalized; the first occurrence of a
// code wins.
type UnitIndex struct {
	codes     []string
	positions map[string]int
}

// NewUnitIndex linearizes the full category/unit ordering of a payload.
func NewUnitIndex(categories []models.Category) *UnitIndex {
	var codes []string
	positions := make(map[string]int)
	for _, category := range categories {
		for _, unit := range category.Units {
			code := NormalizeUnitName(unit.UnitCode)
			if _, exists := positions[code]; !exists {
				positions[code] = len(codes)
			}
			codes = append(codes, code)
		}
	}
	return &UnitIndex{
		codes:     codes,
		positions: positions,
	}
}

// PositionOf returns the linear position of a (raw) unit name, or false
// when no unit matches it.
func (idx *UnitIndex) PositionOf(name string) (int, bool) {
	pos, ok := idx.positions[NormalizeUnitName(name)]
	return pos, ok
}

// Len returns the number of linearized unit slots.
func (idx *UnitIndex) Len() int {
	return len(idx.codes)
}

// ResolveMoveDirection maps a suggestion's current and target unit names
// to an up/down indicator. A target above the current unit (smaller
// position) is "up"; anything else, equal positions included, is "down".
// An unmatched name on either side degrades to no marker rather than
// blocking the render.
func ResolveMoveDirection(index *UnitIndex, currentUnit, targetUnit string) MoveDirection {
	currentPos, ok := index.PositionOf(currentUnit)
	if !ok {
		return DirectionNone
	}
	targetPos, ok := index.PositionOf(targetUnit)
	if !ok {
		return DirectionNone
	}
	if targetPos < currentPos {
		return DirectionUp
	}
	return DirectionDown
}

// Marker returns the glyph for a direction, empty for DirectionNone.
func (d MoveDirection) Marker() string {
	switch d {
	case DirectionUp:
		return UP_MARKER
	case DirectionDown:
		return DOWN_MARKER
	default:
		return ""
	}
}
