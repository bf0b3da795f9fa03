package chart

import "oc-server/models"

// BuildBookingLookup folds a unit's bookings into a day -> booking map.
// A booking occupies every night from start_date through end_date
// inclusive; the exclusive boundary is end_date + 1, so the day after the
// final occupied night stays free for a same-day arrival (checkout-day
// release). When two bookings claim the same day, the one later in input
// order wins silently.
func BuildBookingLookup(bookings []models.Booking) map[string]*models.Booking {
	lookup := make(map[string]*models.Booking)
	for i := range bookings {
		booking := &bookings[i]
		for _, day := range ExpandInterval(booking.StartDate, booking.EndDate) {
			lookup[day] = booking
		}
	}
	return lookup
}
