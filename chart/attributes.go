package chart

import "oc-server/models"

// Display text fallbacks when a booking has no guest name.
const (
	OUT_OF_ORDER_TEXT = "Out Of Order"
	PENCIL_TEXT       = "Pencil"
	UNKNOWN_TEXT      = "Unknown"
)

// FIXED_MARKER is prepended to the text of fixed bookings.
const FIXED_MARKER = "📌"

// ResolveCellAttributes derives the display attributes for one span.
// The direction marker is computed once here, from the span's underlying
// booking, never per day. When a booking is both fixed and a move
// suggestion the fixed glyph comes first, then the direction marker, then
// the text.
func ResolveCellAttributes(span Span, unitIndex *UnitIndex) models.Cell {
	cell := models.Cell{
		StartDay: span.StartDay,
		Colspan:  span.Colspan,
	}

	if span.Booking == nil {
		cell.Empty = true
		return cell
	}

	booking := span.Booking
	cell.ReservationNo = booking.ReservationNo
	cell.Status = booking.Status
	cell.ColorClass = booking.ColorClass

	if span.Colspan == 1 {
		cell.Shape = models.CELL_SHAPE_SINGLE_DAY
	} else {
		cell.Shape = models.CELL_SHAPE_RANGED
	}

	text := booking.GuestName
	if text == "" {
		switch booking.Status {
		case models.STATUS_MAINTENANCE:
			text = OUT_OF_ORDER_TEXT
		case models.STATUS_PENCIL:
			text = PENCIL_TEXT
		default:
			text = UNKNOWN_TEXT
		}
	}

	cell.Align = models.CELL_ALIGN_CENTER
	if booking.IsMoveSuggestion {
		direction := ResolveMoveDirection(unitIndex, booking.CurrentUnit, booking.TargetUnit)
		if marker := direction.Marker(); marker != "" {
			text = marker + " " + text
		}
		cell.Align = models.CELL_ALIGN_LEFT
	}
	if booking.IsFixed {
		text = FIXED_MARKER + " " + text
		cell.Align = models.CELL_ALIGN_LEFT
	}

	cell.DisplayText = text
	return cell
}
