package defrag

import (
	"net/url"
	"strconv"

	"oc-server/api"
	"oc-server/models"
)

// DefragApiClient embeds the common HTTPClient
type DefragApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKeyPublic  string
	apiKeyPrivate string
}

// NewDefragApiClient creates a new instance of DefragApiClient
func NewDefragApiClient(httpClient *api.HTTPClient) *DefragApiClient {
	return &DefragApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key pair sent with every request.
func (c *DefragApiClient) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {
	c.apiKeyPublic = apiKeyPublic
	c.apiKeyPrivate = apiKeyPrivate
}

func (c *DefragApiClient) authHeaders() map[string]string {
	return map[string]string{
		"X-Api-Key-Public":  c.apiKeyPublic,
		"X-Api-Key-Private": c.apiKeyPrivate,
	}
}

// RequestChart retrieves the occupancy chart payload for a property's date window
func (c *DefragApiClient) RequestChart(propertyID string, startDate string, days int) (*models.ChartResponse, error) {
	query := url.Values{}
	query.Set("start", startDate)
	query.Set("days", strconv.Itoa(days))

	var response models.ChartResponse
	err := c.Request("GET", "/properties/"+propertyID+"/chart", c.authHeaders(), query, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// StartAnalysis kicks off a defragmentation analysis job for a property
func (c *DefragApiClient) StartAnalysis(propertyID string) (*models.AnalysisJobResponse, error) {
	var response models.AnalysisJobResponse
	err := c.Request("POST", "/properties/"+propertyID+"/analysis", c.authHeaders(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAnalysisProgress polls the state of a running analysis job
func (c *DefragApiClient) GetAnalysisProgress(jobID string) (*models.AnalysisProgressResponse, error) {
	var response models.AnalysisProgressResponse
	err := c.Request("GET", "/analysis/"+jobID+"/progress", c.authHeaders(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
