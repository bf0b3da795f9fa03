package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"oc-server/models"
)

// ReadChartResponseFromJSON loads a ChartResponse from JSON on disk.
func ReadChartResponseFromJSON(filePath string) (*models.ChartResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ChartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ChartResponse: %w", err)
	}
	return &resp, nil
}

// ReadAnalysisJobResponseFromJSON loads an AnalysisJobResponse from JSON on disk.
func ReadAnalysisJobResponseFromJSON(filePath string) (*models.AnalysisJobResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.AnalysisJobResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AnalysisJobResponse: %w", err)
	}
	return &resp, nil
}

// ReadAnalysisProgressResponseFromJSON loads an AnalysisProgressResponse from JSON on disk.
func ReadAnalysisProgressResponseFromJSON(filePath string) (*models.AnalysisProgressResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.AnalysisProgressResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AnalysisProgressResponse: %w", err)
	}
	return &resp, nil
}

// ReadPropertyIds loads a slice of property IDs from JSON on disk.
func ReadPropertyIds(filePath string) ([]string, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property IDs: %w", err)
	}
	return ids, nil
}

// PrintChartResponsePartially prints key fields of ChartResponse.
func PrintChartResponsePartially(resp *models.ChartResponse) {
	fmt.Printf("Success: %v\n", resp.Success)
	if resp.Data == nil {
		fmt.Println("No data block")
		return
	}
	fmt.Printf("Window: %d days\n", len(resp.Data.DateRange))
	if len(resp.Data.DateRange) > 0 {
		fmt.Printf("First day: %s\n", resp.Data.DateRange[0])
	}
	fmt.Printf("Categories: %d\n", len(resp.Data.Categories))
	for _, c := range resp.Data.Categories {
		fmt.Printf("Category %q: %d units\n", c.Name, len(c.Units))
	}
}

// PrintAnalysisProgressResponsePartially prints key fields of AnalysisProgressResponse.
func PrintAnalysisProgressResponsePartially(resp *models.AnalysisProgressResponse) {
	fmt.Printf("Progress Job ID: %s\n", resp.JobID)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Scanned: %d units, %d bookings\n", resp.CountUnitsScanned, resp.CountBookings)
	if resp.JobFinished {
		fmt.Printf("Analysis completed: %d moves suggested\n", resp.CountMovesSuggested)
	}
}
