package defrag

import (
	"oc-server/models"
)

// DefragAPI defines the interface for interacting with the defrag analysis backend
type DefragAPI interface {
	RequestChart(propertyID string, startDate string, days int) (*models.ChartResponse, error)
	StartAnalysis(propertyID string) (*models.AnalysisJobResponse, error)
	GetAnalysisProgress(jobID string) (*models.AnalysisProgressResponse, error)
	SetCredentials(apiKeyPublic string, apiKeyPrivate string)
}
