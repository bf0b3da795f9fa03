package models

// ChartResponse is the top-level JSON returned by the analysis backend's
// chart endpoint. success=false or a missing data block is a "no data"
// state for the renderer, not an error.
type ChartResponse struct {
	Success bool       `json:"success"`
	Data    *ChartData `json:"data,omitempty"`
}

// ChartData holds the visible date window and the category/unit tree.
// DateRange is strictly ascending with no duplicates; category and unit
// order is significant (it drives move-direction comparisons).
type ChartData struct {
	DateRange  []string   `json:"date_range"`
	Categories []Category `json:"categories"`
}

// Category groups units under one display label.
type Category struct {
	Name  string `json:"name"`
	Units []Unit `json:"units"`
}

// Unit is a single rentable unit and its (unordered) bookings.
type Unit struct {
	UnitCode string    `json:"unit_code"`
	Bookings []Booking `json:"bookings"`
}
