package models

import "fmt"

// Booking statuses known to the renderer. Any other value is displayed
// as "Unknown" when the booking carries no guest name.
const (
	STATUS_CONFIRMED   = "Confirmed"
	STATUS_MAINTENANCE = "Maintenance"
	STATUS_PENCIL      = "Pencil"
)

// Booking is one per-unit booking record from the analysis backend.
// StartDate and EndDate are inclusive ISO day strings: both the check-in
// night and the final occupied night.
type Booking struct {
	ReservationNo string `json:"reservation_no"`
	GuestName     string `json:"guest_name"`
	Status        string `json:"status"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ColorClass    string `json:"color_class"`
	IsFixed       bool   `json:"is_fixed"`

	// Move-suggestion fields. CurrentUnit and TargetUnit are only
	// present when IsMoveSuggestion is set.
	IsMoveSuggestion bool   `json:"is_move_suggestion"`
	CurrentUnit      string `json:"current_unit,omitempty"`
	TargetUnit       string `json:"target_unit,omitempty"`
}

func (b *Booking) ToString() string {
	return fmt.Sprintf("Booking(reservation_no=%s, guest=%s, status=%s, range=%s..%s)",
		b.ReservationNo, b.GuestName, b.Status, b.StartDate, b.EndDate)
}
