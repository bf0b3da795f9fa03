package chart

import "time"

// ISO_DAY_LAYOUT is the calendar-day format used across the chart payload.
const ISO_DAY_LAYOUT = "2006-01-02"

// ExpandInterval returns every calendar day from startDate through endDate
// inclusive, stepping by year/month/day components rather than by epoch
// offsets, so the emitted labels never shift across timezone boundaries.
// A single-day range yields exactly one element. An inverted or unparsable
// range yields nil: malformed bookings degrade to an empty contribution
// instead of failing the render.
func ExpandInterval(startDate, endDate string) []string {
	start, err := time.Parse(ISO_DAY_LAYOUT, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(ISO_DAY_LAYOUT, endDate)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}

	var days []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur.Format(ISO_DAY_LAYOUT))
	}
	return days
}

// NextDay returns the calendar day after the given ISO day string, using
// the same component-wise stepping as ExpandInterval. Returns false for
// an unparsable input.
func NextDay(day string) (string, bool) {
	t, err := time.Parse(ISO_DAY_LAYOUT, day)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, 1).Format(ISO_DAY_LAYOUT), true
}
