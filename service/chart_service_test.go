package services

import (
	"context"
	"errors"
	"testing"

	"oc-server/dao/redis"
	"oc-server/db"
	"oc-server/models"
)

// stubDefragAPI counts backend calls and serves a fixed payload.
type stubDefragAPI struct {
	chartCalls int
	response   *models.ChartResponse
	err        error
}

func (s *stubDefragAPI) RequestChart(propertyID string, startDate string, days int) (*models.ChartResponse, error) {
	s.chartCalls++
	return s.response, s.err
}

func (s *stubDefragAPI) StartAnalysis(propertyID string) (*models.AnalysisJobResponse, error) {
	return &models.AnalysisJobResponse{JobID: "job-1", PropertyID: propertyID, Status: "running"}, nil
}

func (s *stubDefragAPI) GetAnalysisProgress(jobID string) (*models.AnalysisProgressResponse, error) {
	return &models.AnalysisProgressResponse{JobID: jobID, JobFinished: true}, nil
}

func (s *stubDefragAPI) SetCredentials(apiKeyPublic string, apiKeyPrivate string) {}

func stubPayload() *models.ChartResponse {
	return &models.ChartResponse{
		Success: true,
		Data: &models.ChartData{
			DateRange: []string{"2024-03-01", "2024-03-02"},
			Categories: []models.Category{
				{Name: "Standard", Units: []models.Unit{{UnitCode: "101"}}},
			},
		},
	}
}

func TestChartService_FetchesAndCachesOnMiss(t *testing.T) {
	// Setup
	chartDao := redis.NewRedisChartDAO(db.NewMockRedisClient(context.Background()))
	api := &stubDefragAPI{response: stubPayload()}
	service := NewChartService(chartDao, api)

	// Act
	rowModel, err := service.GetOccupancyChart("p-1", "2024-03-01", 7, false)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rowModel.NoData {
		t.Fatalf("Expected a rendered model")
	}
	if api.chartCalls != 1 {
		t.Errorf("Expected 1 backend call, got %d", api.chartCalls)
	}

	// Payload must now be cached
	if _, err := chartDao.GetChartData("p-1", "2024-03-01", 7); err != nil {
		t.Errorf("Expected chart payload to be cached: %v", err)
	}
}

func TestChartService_ServesFromCache(t *testing.T) {
	// Setup
	chartDao := redis.NewRedisChartDAO(db.NewMockRedisClient(context.Background()))
	api := &stubDefragAPI{response: stubPayload()}
	service := NewChartService(chartDao, api)

	_ = chartDao.UpsertChartData("p-1", "2024-03-01", 7, stubPayload().Data)

	// Act
	rowModel, err := service.GetOccupancyChart("p-1", "2024-03-01", 7, false)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rowModel.NoData {
		t.Fatalf("Expected a rendered model")
	}
	if api.chartCalls != 0 {
		t.Errorf("Expected cache hit to skip the backend, got %d calls", api.chartCalls)
	}
}

func TestChartService_RefreshBypassesCache(t *testing.T) {
	// Setup
	chartDao := redis.NewRedisChartDAO(db.NewMockRedisClient(context.Background()))
	api := &stubDefragAPI{response: stubPayload()}
	service := NewChartService(chartDao, api)

	_ = chartDao.UpsertChartData("p-1", "2024-03-01", 7, stubPayload().Data)

	// Act
	_, err := service.GetOccupancyChart("p-1", "2024-03-01", 7, true)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if api.chartCalls != 1 {
		t.Errorf("Expected refresh to hit the backend, got %d calls", api.chartCalls)
	}
}

func TestChartService_BackendFailureSurfaced(t *testing.T) {
	// Setup
	chartDao := redis.NewRedisChartDAO(db.NewMockRedisClient(context.Background()))
	api := &stubDefragAPI{err: errors.New("backend down")}
	service := NewChartService(chartDao, api)

	// Act
	_, err := service.GetOccupancyChart("p-1", "2024-03-01", 7, false)

	// Assert
	if err == nil {
		t.Fatalf("Expected the fetch failure to be surfaced")
	}
}

func TestChartService_NoDataPayloadRenders(t *testing.T) {
	// Setup
	chartDao := redis.NewRedisChartDAO(db.NewMockRedisClient(context.Background()))
	api := &stubDefragAPI{response: &models.ChartResponse{Success: false}}
	service := NewChartService(chartDao, api)

	// Act
	rowModel, err := service.GetOccupancyChart("p-1", "2024-03-01", 7, false)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !rowModel.NoData {
		t.Errorf("Expected a no-data model")
	}
}
