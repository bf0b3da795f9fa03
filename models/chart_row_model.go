package models

// Cell display constants.
const (
	CELL_SHAPE_SINGLE_DAY = "single-day"
	CELL_SHAPE_RANGED     = "ranged"

	CELL_ALIGN_LEFT   = "left"
	CELL_ALIGN_CENTER = "center"
)

// Cell is one merged calendar cell covering Colspan contiguous days of
// the date range, ready for the presentation layer.
type Cell struct {
	StartDay      string `json:"start_day"`
	Colspan       int    `json:"colspan"`
	Empty         bool   `json:"empty"`
	ReservationNo string `json:"reservation_no,omitempty"`
	Status        string `json:"status,omitempty"`
	ColorClass    string `json:"color_class,omitempty"`
	Shape         string `json:"shape,omitempty"`
	DisplayText   string `json:"display_text,omitempty"`
	Align         string `json:"align,omitempty"`
}

// UnitRow is one unit's row of cells. Cells partition the date range:
// their colspans always sum to the window length.
type UnitRow struct {
	UnitCode string `json:"unit_code"`
	Cells    []Cell `json:"cells"`
}

// CategoryRows groups the unit rows rendered under one category label.
type CategoryRows struct {
	Name string    `json:"name"`
	Rows []UnitRow `json:"rows"`
}

// ChartRowModel is the assembled render model for one chart payload.
// NoData marks the terminal empty state (missing data block, success=false
// or a payload without date_range/categories).
type ChartRowModel struct {
	NoData     bool           `json:"no_data,omitempty"`
	DateRange  []string       `json:"date_range,omitempty"`
	Categories []CategoryRows `json:"categories,omitempty"`
}
