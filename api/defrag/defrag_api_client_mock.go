package defrag

import (
	"fmt"

	"oc-server/config"
	"oc-server/models"
	"oc-server/util"
)

// DefragApiClientMock serves canned responses from the resources folder so
// the server can run without the analysis backend.
type DefragApiClientMock struct {
}

// NewDefragApiClientMock creates a new instance of DefragApiClientMock
func NewDefragApiClientMock() *DefragApiClientMock {
	return &DefragApiClientMock{}
}

// RequestChart returns the fixture chart payload regardless of the window asked for
func (c *DefragApiClientMock) RequestChart(propertyID string, startDate string, days int) (*models.ChartResponse, error) {
	response, err := util.ReadChartResponseFromJSON(config.GetResourcePath(config.CHART_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read chart response from json")
		return nil, err
	}
	return response, nil
}

// StartAnalysis returns the fixture analysis job handle
func (c *DefragApiClientMock) StartAnalysis(propertyID string) (*models.AnalysisJobResponse, error) {
	response, err := util.ReadAnalysisJobResponseFromJSON(config.GetResourcePath(config.ANALYSIS_JOB_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read analysis job response from json")
		return nil, err
	}
	return response, nil
}

// GetAnalysisProgress returns the fixture progress snapshot (always finished)
func (c *DefragApiClientMock) GetAnalysisProgress(jobID string) (*models.AnalysisProgressResponse, error) {
	response, err := util.ReadAnalysisProgressResponseFromJSON(config.GetResourcePath(config.ANALYSIS_PROGRESS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read analysis progress response from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op for the mock
func (c *DefragApiClientMock) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {
}
