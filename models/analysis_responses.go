package models

// AnalysisJobResponse is returned when a defragmentation analysis is
// kicked off for a property. The job runs asynchronously on the backend;
// progress is polled via the job ID.
type AnalysisJobResponse struct {
	JobID      string `json:"job_id"`
	PropertyID string `json:"property_id"`
	Status     string `json:"status"`
}

// AnalysisProgressResponse is the polled state of a running analysis job.
type AnalysisProgressResponse struct {
	JobID               string `json:"job_id"`
	PropertyID          string `json:"property_id"`
	Status              string `json:"status"`
	JobFinished         bool   `json:"job_finished"`
	CountUnitsScanned   int    `json:"count_units_scanned"`
	CountBookings       int    `json:"count_bookings"`
	CountMovesSuggested int    `json:"count_moves_suggested"`
}
