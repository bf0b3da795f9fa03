package main

import (
	"fmt"
	"log"
	"time"

	"oc-server/api/defrag"
	"oc-server/chart"
	"oc-server/config"
	"oc-server/dao/redis"
	"oc-server/db"
	"oc-server/di"
	"oc-server/util"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testMockedDefragAPIClient(defragApiClient defrag.DefragAPI) {
	log.Println("Running: testMockedDefragAPIClient")
	response, err := defragApiClient.RequestChart("p-coastview", "2024-03-01", config.DEFAULT_CHART_WINDOW_DAYS)
	if err != nil {
		log.Println("Error while running testMockedDefragAPIClient: ", err)
		return
	}

	util.PrintChartResponsePartially(response)

	util.PlotOccupancy(chart.AssembleChart(response))
}

// testChartDao reads the fixture payload and optionally caches it in Redis.
func testChartDao(chartDao *redis.RedisChartDAO, cacheChart bool) {
	log.Println("Testing chart dao with ChartResponse")

	// Load chart response from JSON fixture
	chartResp, err := util.ReadChartResponseFromJSON(config.GetResourcePath(config.CHART_RESPONSE_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to read chart response: %v", err)
		return
	}
	if chartResp.Data == nil {
		log.Println("Fixture has no data block")
		return
	}

	start := chartResp.Data.DateRange[0]
	days := len(chartResp.Data.DateRange)
	if cacheChart {
		if err := chartDao.UpsertChartData("p-coastview", start, days, chartResp.Data); err != nil {
			log.Printf("[MAIN] Failed to cache chart: %v", err)
		}
	}

	cached, err := chartDao.GetChartData("p-coastview", start, days)
	if err != nil {
		log.Printf("[MAIN] No cached chart: %v", err)
		return
	}
	log.Printf("Cached chart has %d categories over %d days\n", len(cached.Categories), len(cached.DateRange))
}

func main() {
	container := di.NewContainer("prod")

	// testRedisClient(container.RedisClient)
	// testMockedDefragAPIClient(container.DefragAPI)
	// testChartDao(container.RedisChartDao, false)

	fmt.Println("refreshing!")
	container.ChartsRefresherService.RefreshChartsData(true)
	fmt.Println("starting periodic job!")
	container.ChartsRefresherService.StartPeriodicJob(config.CHARTS_REFRESHER_SERVICE_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.OccupancyHttpServer.Start()
	fmt.Println("server started!")
}
