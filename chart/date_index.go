package chart

// DateIndex gives stable positional lookup over the chart's visible day
// window. It preserves the input order as-is; the backend guarantees the
// range is ascending with no duplicates, so no sorting is done here.
type DateIndex struct {
	days      []string
	positions map[string]int
}

// NewDateIndex builds an index over the given day sequence. If a day
// appears twice the first position wins.
func NewDateIndex(days []string) *DateIndex {
	positions := make(map[string]int, len(days))
	for i, day := range days {
		if _, exists := positions[day]; !exists {
			positions[day] = i
		}
	}
	return &DateIndex{
		days:      days,
		positions: positions,
	}
}

// PositionOf returns the position of a day inside the window, or false
// when the day is not part of it.
func (idx *DateIndex) PositionOf(day string) (int, bool) {
	pos, ok := idx.positions[day]
	return pos, ok
}

// DayAt returns the day at the given position, or false when the
// position is out of range.
func (idx *DateIndex) DayAt(position int) (string, bool) {
	if position < 0 || position >= len(idx.days) {
		return "", false
	}
	return idx.days[position], true
}

// Len returns the number of days in the window.
func (idx *DateIndex) Len() int {
	return len(idx.days)
}

// Days returns the underlying day sequence. Callers must not mutate it.
func (idx *DateIndex) Days() []string {
	return idx.days
}
