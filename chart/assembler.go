package chart

import "oc-server/models"

// AssembleChart turns a fetched chart payload into the row model the
// presentation layer consumes. The date index and the global unit
// linearization are built once per payload, then each unit gets its
// booking lookup, span merge and attribute resolution in turn. The pass
// is pure: the payload is never mutated and equal payloads assemble to
// deeply equal row models.
func AssembleChart(response *models.ChartResponse) *models.ChartRowModel {
	if response == nil || !response.Success || response.Data == nil {
		return &models.ChartRowModel{NoData: true}
	}
	data := response.Data
	if data.DateRange == nil || data.Categories == nil {
		return &models.ChartRowModel{NoData: true}
	}

	// 1) Build the shared indexes
	dateIndex := NewDateIndex(data.DateRange)
	unitIndex := NewUnitIndex(data.Categories)

	// 2) Assemble rows category by category
	rowModel := &models.ChartRowModel{
		DateRange:  data.DateRange,
		Categories: make([]models.CategoryRows, 0, len(data.Categories)),
	}
	for _, category := range data.Categories {
		categoryRows := models.CategoryRows{
			Name: category.Name,
			Rows: make([]models.UnitRow, 0, len(category.Units)),
		}
		for _, unit := range category.Units {
			categoryRows.Rows = append(categoryRows.Rows, assembleUnitRow(unit, dateIndex, unitIndex))
		}
		rowModel.Categories = append(rowModel.Categories, categoryRows)
	}
	return rowModel
}

func assembleUnitRow(unit models.Unit, dateIndex *DateIndex, unitIndex *UnitIndex) models.UnitRow {
	lookup := BuildBookingLookup(unit.Bookings)
	spans := MergeSpans(dateIndex, lookup)

	cells := make([]models.Cell, 0, len(spans))
	for _, span := range spans {
		cells = append(cells, ResolveCellAttributes(span, unitIndex))
	}
	return models.UnitRow{
		UnitCode: unit.UnitCode,
		Cells:    cells,
	}
}
