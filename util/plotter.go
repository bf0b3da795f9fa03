package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"oc-server/models"
)

// PlotOccupancy generates an HTML file rendering occupied nights per unit
// for an assembled chart, one bar per unit across all categories.
func PlotOccupancy(rowModel *models.ChartRowModel) {
	if rowModel == nil || rowModel.NoData {
		fmt.Println("No chart data to plot")
		return
	}

	// Count occupied nights per unit from the merged cells.
	var unitCodes []string
	var occupancy []opts.BarData
	for _, category := range rowModel.Categories {
		for _, row := range category.Rows {
			nights := 0
			for _, cell := range row.Cells {
				if !cell.Empty {
					nights += cell.Colspan
				}
			}
			unitCodes = append(unitCodes, row.UnitCode)
			occupancy = append(occupancy, opts.BarData{Value: nights})
		}
	}

	// Create a new Bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Unit Occupancy",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Occupied nights per unit",
			Subtitle: fmt.Sprintf("Window of %d days", len(rowModel.DateRange)),
		}),
	)

	// Add the occupancy series over the unit axis.
	bar.SetXAxis(unitCodes).
		AddSeries("Occupied nights", occupancy,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{c}",
			}),
		)

	// Create an HTML file to render the chart.
	f, err := os.Create("unit_occupancy.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Unit occupancy chart generated: unit_occupancy.html")
}
