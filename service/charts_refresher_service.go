package services

import (
	"log"
	"time"

	"oc-server/api/defrag"
	"oc-server/chart"
	"oc-server/config"
	"oc-server/dao/redis"
)

// jobHandle ties together a kicked-off analysis with its property.
type jobHandle struct {
	JobID, PropertyID string
}

// defaultProperties is the constant list of properties whose charts are
// kept warm. Populate manually as needed.
var defaultProperties = []string{
	"p-coastview",
	"p-harborside",
}

// ChartsRefresherService periodically re-runs the defrag analysis and
// re-caches each tracked property's chart payload.
type ChartsRefresherService struct {
	chartDao  *redis.RedisChartDAO
	defragAPI defrag.DefragAPI
}

// NewChartsRefresherService constructs a new Refresher with dependencies.
func NewChartsRefresherService(
	chartDao *redis.RedisChartDAO,
	defragAPI defrag.DefragAPI,
) *ChartsRefresherService {
	return &ChartsRefresherService{
		chartDao:  chartDao,
		defragAPI: defragAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *ChartsRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *ChartsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ChartsRefresherService] Running periodic charts refresher job.")
		if err := cr.RefreshChartsData(true); err != nil {
			log.Printf("[ChartsRefresherService] RefreshChartsData returned error: %v", err)
		} else {
			log.Println("[ChartsRefresherService] RefreshChartsData completed successfully.")
		}
	}
}

// RefreshChartsData orchestrates the three steps: kick-off, poll, re-fetch+cache.
func (cr *ChartsRefresherService) RefreshChartsData(waitBeforePolling bool) error {
	// 1) Kick off analysis jobs
	handles := cr.collectJobHandles()
	if len(handles) == 0 {
		log.Println("[ChartsRefresherService] No successful analyses to poll; exiting.")
		return nil
	}

	// 2) Should wait before polling ?
	if waitBeforePolling {
		cr.waitBeforePolling(1)
	}

	// 3) Poll progress, then re-fetch and cache finished properties
	finished := cr.processJobHandles(handles)
	cr.fetchAndCacheCharts(finished)

	return nil
}

// collectJobHandles kicks off an analysis for each tracked property and
// returns the job handles.
func (cr *ChartsRefresherService) collectJobHandles() []jobHandle {
	var handles []jobHandle
	log.Printf("[ChartsRefresherService] Starting analyses for %d properties", len(defaultProperties))

	for _, propertyID := range defaultProperties {
		log.Printf("[ChartsRefresherService] Starting analysis for property=%s", propertyID)
		resp, err := cr.defragAPI.StartAnalysis(propertyID)
		if err != nil {
			log.Printf("[ChartsRefresherService] Failed to start analysis for %s: %v", propertyID, err)
			continue
		}
		log.Printf("[ChartsRefresherService] Analysis started: job_id=%s property=%s",
			resp.JobID, propertyID)
		handles = append(handles, jobHandle{JobID: resp.JobID, PropertyID: propertyID})
	}
	return handles
}

// waitBeforePolling sleeps for the configured polling interval.
func (cr *ChartsRefresherService) waitBeforePolling(attemptNumber int) {
	wait := time.Duration(config.DEFRAG_ANALYSIS_POLLING_WAIT_SECONDS) * time.Duration(attemptNumber) * time.Second
	log.Printf("[ChartsRefresherService] Waiting %v before polling progress...", wait)
	time.Sleep(wait)
}

// processJobHandles polls each analysis job until it finishes (bounded
// retries) and returns the properties whose jobs completed.
func (cr *ChartsRefresherService) processJobHandles(handles []jobHandle) []string {
	var finished []string

	log.Printf("[ChartsRefresherService] Polling progress for %d jobs", len(handles))
	for _, h := range handles {
		log.Printf("[ChartsRefresherService] Polling job_id=%s property=%s", h.JobID, h.PropertyID)

		const maxRetries = 5
		done := false
		for i := 0; i < maxRetries; i++ {
			progResp, err := cr.defragAPI.GetAnalysisProgress(h.JobID)
			if err != nil {
				log.Printf("[ChartsRefresherService] Failed polling job %s (attempt %d): %v", h.JobID, i+1, err)
				break // unrecoverable error, skip retries
			}

			if progResp.JobFinished {
				log.Printf(
					"[ChartsRefresherService] Progress: job=%s units=%d bookings=%d moves=%d",
					h.JobID, progResp.CountUnitsScanned, progResp.CountBookings, progResp.CountMovesSuggested,
				)
				done = true
				break
			}

			log.Printf("[ChartsRefresherService] Job %s not finished yet (attempt %d/%d), waiting to retry...", h.JobID, i+1, maxRetries)
			cr.waitBeforePolling(i + 1)
		}

		if !done {
			log.Printf("[ChartsRefresherService] Job %s did not finish, skipping.", h.JobID)
			continue
		}
		finished = append(finished, h.PropertyID)
	}

	return finished
}

// fetchAndCacheCharts pulls the fresh chart payload for each property and
// replaces the cached window.
func (cr *ChartsRefresherService) fetchAndCacheCharts(propertyIDs []string) {
	startDate := time.Now().Format(chart.ISO_DAY_LAYOUT)
	days := config.DEFAULT_CHART_WINDOW_DAYS

	log.Printf("[ChartsRefresherService] Fetching charts for %d properties", len(propertyIDs))
	for _, propertyID := range propertyIDs {
		log.Printf("[ChartsRefresherService] Fetching chart for property=%s", propertyID)
		resp, err := cr.defragAPI.RequestChart(propertyID, startDate, days)
		if err != nil {
			log.Printf("[ChartsRefresherService] RequestChart failed for %s: %v", propertyID, err)
			continue
		}

		// a payload without data means the backend has nothing for this
		// window: drop the stale cache entry instead of overwriting it
		if !resp.Success || resp.Data == nil {
			log.Printf("[ChartsRefresherService] No chart data for %s, removing cache", propertyID)
			if err := cr.chartDao.DeleteChartData(propertyID, startDate, days); err != nil {
				log.Printf("[ChartsRefresherService] Delete failed for %s: %v", propertyID, err)
			}
			continue
		}

		if err := cr.chartDao.UpsertChartData(propertyID, startDate, days, resp.Data); err != nil {
			log.Printf("[ChartsRefresherService] Upsert failed for %s: %v", propertyID, err)
		} else {
			log.Printf("[ChartsRefresherService] Successfully cached chart for %s", propertyID)
		}
	}
}
