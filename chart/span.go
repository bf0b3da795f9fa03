package chart

import "oc-server/models"

// Span is a maximal run of contiguous window days sharing one reservation
// identity (or empty), rendered as one merged cell. Spans live for a
// single render pass.
type Span struct {
	StartDay string
	Colspan  int
	Booking  *models.Booking // nil for an empty span
}

// MergeSpans walks the date index once and groups consecutive days whose
// bookings share the same reservation_no into single spans. Adjacency is
// positional (next entry in the window), not calendar arithmetic, so the
// merger works for whatever window the backend hands over. The returned
// spans partition the window: no overlap, no gaps, colspans summing to
// the window length. The processed set is local to this call.
func MergeSpans(index *DateIndex, lookup map[string]*models.Booking) []Span {
	processed := make([]bool, index.Len())
	var spans []Span

	for pos := 0; pos < index.Len(); pos++ {
		if processed[pos] {
			continue
		}
		day, _ := index.DayAt(pos)
		processed[pos] = true

		booking, occupied := lookup[day]
		if !occupied {
			spans = append(spans, Span{StartDay: day, Colspan: 1})
			continue
		}

		span := Span{StartDay: day, Colspan: 1, Booking: booking}
		for next := pos + 1; next < index.Len(); next++ {
			nextDay, _ := index.DayAt(next)
			nextBooking, ok := lookup[nextDay]
			// Merge equality is reservation_no only; secondary
			// fields are not compared.
			if !ok || nextBooking.ReservationNo != booking.ReservationNo {
				break
			}
			span.Colspan++
			processed[next] = true
		}
		spans = append(spans, span)
	}

	return spans
}
