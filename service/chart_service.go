package services

import (
	"log"

	"oc-server/api/defrag"
	"oc-server/chart"
	"oc-server/config"
	"oc-server/dao/redis"
	"oc-server/models"
	"oc-server/util"
)

// ChartService serves assembled occupancy charts, backed by the Redis
// payload cache with the analysis backend as the source of truth.
type ChartService struct {
	chartDao  *redis.RedisChartDAO
	defragApi defrag.DefragAPI
}

// NewChartService constructs a new ChartService with its dependencies.
func NewChartService(
	chartDao *redis.RedisChartDAO,
	defragApi defrag.DefragAPI) *ChartService {

	return &ChartService{
		chartDao:  chartDao,
		defragApi: defragApi,
	}
}

// GetOccupancyChart returns the assembled row model for a property's
// window. Cache reads and writes are best-effort: a cache failure falls
// back to a backend fetch, and a failed cache write never fails the
// request. Only a backend fetch failure is surfaced.
func (cs *ChartService) GetOccupancyChart(propertyID, startDate string, days int, refresh bool) (*models.ChartRowModel, error) {
	if !refresh {
		if data, err := cs.chartDao.GetChartData(propertyID, startDate, days); err == nil {
			return chart.AssembleChart(&models.ChartResponse{Success: true, Data: data}), nil
		}
	}

	response, err := cs.defragApi.RequestChart(propertyID, startDate, days)
	if err != nil {
		return nil, err
	}

	if response.Success && response.Data != nil {
		if err := cs.chartDao.UpsertChartData(propertyID, startDate, days, response.Data); err != nil {
			log.Printf("[ChartService] Failed to cache chart for %s: %v", propertyID, err)
		}
	}

	return chart.AssembleChart(response), nil
}

// GetTrackedPropertyIds loads the static list of properties the refresher
// keeps warm.
func (cs *ChartService) GetTrackedPropertyIds() ([]string, error) {
	return util.ReadPropertyIds(config.GetResourcePath(config.PROPERTY_IDS_RESOURCE))
}
