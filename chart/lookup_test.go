package chart

import (
	"testing"

	"oc-server/models"
)

func TestBuildBookingLookup_InclusiveRange(t *testing.T) {
	// Arrange
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-02"},
	}

	// Act
	lookup := BuildBookingLookup(bookings)

	// Assert: both nights occupied, checkout day free
	if len(lookup) != 2 {
		t.Fatalf("Expected 2 occupied days, got %d", len(lookup))
	}
	for _, day := range []string{"2024-01-01", "2024-01-02"} {
		b, ok := lookup[day]
		if !ok || b.ReservationNo != "R1" {
			t.Errorf("Expected R1 on %s", day)
		}
	}
	if _, ok := lookup["2024-01-03"]; ok {
		t.Errorf("Expected 2024-01-03 to be free (checkout-day release)")
	}
}

func TestBuildBookingLookup_CheckoutDayRelease(t *testing.T) {
	// A guest leaving after the night of the 2nd and one arriving on the
	// 3rd do not conflict.
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-02"},
		{ReservationNo: "R2", StartDate: "2024-01-03", EndDate: "2024-01-04"},
	}

	lookup := BuildBookingLookup(bookings)

	if b := lookup["2024-01-02"]; b == nil || b.ReservationNo != "R1" {
		t.Errorf("Expected R1 on 2024-01-02")
	}
	if b := lookup["2024-01-03"]; b == nil || b.ReservationNo != "R2" {
		t.Errorf("Expected R2 on 2024-01-03")
	}
}

func TestBuildBookingLookup_OverlapLastWriteWins(t *testing.T) {
	// Overlaps are not surfaced as errors; input order decides.
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-01", EndDate: "2024-01-03"},
		{ReservationNo: "R2", StartDate: "2024-01-02", EndDate: "2024-01-02"},
	}

	lookup := BuildBookingLookup(bookings)

	if b := lookup["2024-01-02"]; b == nil || b.ReservationNo != "R2" {
		t.Errorf("Expected later booking R2 to win 2024-01-02")
	}
	if b := lookup["2024-01-01"]; b == nil || b.ReservationNo != "R1" {
		t.Errorf("Expected R1 to keep 2024-01-01")
	}
	if b := lookup["2024-01-03"]; b == nil || b.ReservationNo != "R1" {
		t.Errorf("Expected R1 to keep 2024-01-03")
	}
}

func TestBuildBookingLookup_InvertedRangeDropped(t *testing.T) {
	bookings := []models.Booking{
		{ReservationNo: "R1", StartDate: "2024-01-05", EndDate: "2024-01-01"},
	}

	lookup := BuildBookingLookup(bookings)

	if len(lookup) != 0 {
		t.Errorf("Expected malformed booking to contribute nothing, got %d days", len(lookup))
	}
}
