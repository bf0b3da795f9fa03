package chart

import (
	"testing"

	"oc-server/models"
)

func mergeForBookings(dateRange []string, bookings []models.Booking) []Span {
	index := NewDateIndex(dateRange)
	return MergeSpans(index, BuildBookingLookup(bookings))
}

func TestMergeSpans_BaseScenario(t *testing.T) {
	// Arrange
	dateRange := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-02"},
	}

	// Act
	spans := mergeForBookings(dateRange, bookings)

	// Assert
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0].StartDay != "2024-01-01" || spans[0].Colspan != 2 {
		t.Errorf("Expected first span 2024-01-01 x2, got %s x%d", spans[0].StartDay, spans[0].Colspan)
	}
	if spans[0].Booking == nil || spans[0].Booking.ReservationNo != "R1" {
		t.Errorf("Expected first span to carry R1")
	}
	if spans[1].StartDay != "2024-01-03" || spans[1].Colspan != 1 || spans[1].Booking != nil {
		t.Errorf("Expected trailing empty span on 2024-01-03")
	}
}

func TestMergeSpans_PartitionProperty(t *testing.T) {
	dateRange := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-02", EndDate: "2024-01-03"},
		{ReservationNo: "R2", StartDate: "2024-01-04", EndDate: "2024-01-04"},
		{ReservationNo: "R3", StartDate: "2024-01-06", EndDate: "2024-01-09"},
	}

	spans := mergeForBookings(dateRange, bookings)

	// Colspans always sum to the window length, in window order, no overlap.
	total := 0
	prevEnd := -1
	index := NewDateIndex(dateRange)
	for _, span := range spans {
		pos, ok := index.PositionOf(span.StartDay)
		if !ok {
			t.Fatalf("Span start %s not in window", span.StartDay)
		}
		if pos != prevEnd+1 {
			t.Errorf("Expected span at position %d to start right after the previous one, got %d", prevEnd+1, pos)
		}
		prevEnd = pos + span.Colspan - 1
		total += span.Colspan
	}
	if total != len(dateRange) {
		t.Errorf("Expected colspans to sum to %d, got %d", len(dateRange), total)
	}
}

func TestMergeSpans_IdentityChangeBreaksSpan(t *testing.T) {
	dateRange := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-02"},
		{ReservationNo: "R2", StartDate: "2024-01-03", EndDate: "2024-01-04"},
	}

	spans := mergeForBookings(dateRange, bookings)

	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0].Booking.ReservationNo != "R1" || spans[0].Colspan != 2 {
		t.Errorf("Expected R1 x2, got %s x%d", spans[0].Booking.ReservationNo, spans[0].Colspan)
	}
	if spans[1].Booking.ReservationNo != "R2" || spans[1].Colspan != 2 {
		t.Errorf("Expected R2 x2, got %s x%d", spans[1].Booking.ReservationNo, spans[1].Colspan)
	}
}

func TestMergeSpans_SameIdentityAlwaysMerges(t *testing.T) {
	// Merge equality is reservation_no only; diverging secondary fields
	// never split a span.
	index := NewDateIndex([]string{"2024-01-01", "2024-01-02"})
	first := &models.Booking{ReservationNo: "R1", GuestName: "A"}
	second := &models.Booking{ReservationNo: "R1", GuestName: "B"}
	lookup := map[string]*models.Booking{
		"2024-01-01": first,
		"2024-01-02": second,
	}

	spans := MergeSpans(index, lookup)

	if len(spans) != 1 || spans[0].Colspan != 2 {
		t.Fatalf("Expected a single merged span, got %+v", spans)
	}
}

func TestMergeSpans_GapBreaksSpan(t *testing.T) {
	index := NewDateIndex([]string{"2024-01-01", "2024-01-02", "2024-01-03"})
	booking := &models.Booking{ReservationNo: "R1"}
	lookup := map[string]*models.Booking{
		"2024-01-01": booking,
		"2024-01-03": booking,
	}

	spans := MergeSpans(index, lookup)

	if len(spans) != 3 {
		t.Fatalf("Expected 3 spans around the gap, got %d", len(spans))
	}
	if spans[1].Booking != nil {
		t.Errorf("Expected middle span to be empty")
	}
}

func TestMergeSpans_SingleDayBooking(t *testing.T) {
	dateRange := []string{"2024-01-01", "2024-01-02"}
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-01"},
	}

	spans := mergeForBookings(dateRange, bookings)

	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if spans[0].Colspan != 1 || spans[0].Booking == nil {
		t.Errorf("Expected single-day occupied span first")
	}
	if spans[1].Booking != nil {
		t.Errorf("Expected the following day to be free")
	}
}

func TestMergeSpans_EmptyUnit(t *testing.T) {
	dateRange := []string{"2024-01-01", "2024-01-02", "2024-01-03"}

	spans := mergeForBookings(dateRange, nil)

	if len(spans) != 3 {
		t.Fatalf("Expected one empty span per day, got %d", len(spans))
	}
	for i, span := range spans {
		if span.Booking != nil || span.Colspan != 1 {
			t.Errorf("Expected span %d to be an empty single day", i)
		}
	}
}
