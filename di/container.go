package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"oc-server/api"
	"oc-server/api/defrag"
	"oc-server/config"
	"oc-server/dao/redis"
	"oc-server/db"
	"oc-server/server"
	"oc-server/server/handlers"
	services "oc-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisChartDao          *redis.RedisChartDAO
	ChartService           *services.ChartService
	DefragAPI              defrag.DefragAPI
	ChartHandler           *handlers.ChartHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	OccupancyHttpServer    *server.OccupancyHttpServer
	ChartsRefresherService *services.ChartsRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Chart DAO
	redisChartDao := redis.NewRedisChartDAO(redisClient)

	// Initialize DefragAPI - fixtures outside prod
	var defragApiClient defrag.DefragAPI
	if env != "prod" {
		defragApiClient = defrag.NewDefragApiClientMock()
		log.Printf("Using mock defrag api")
	} else {
		log.Printf("Using prod defrag api")
		httpClient := api.NewHTTPClient(config.DEFRAG_ENDPOINT_BASE_V1)

		defragApiClient = defrag.NewDefragApiClient(httpClient)
		defragApiClient.SetCredentials(config.DEFRAG_PUBLIC_KEY, config.DEFRAG_PRIVATE_KEY)
	}

	// Initialize service layer with DAO and backend client dependencies
	chartService := services.NewChartService(redisChartDao, defragApiClient)

	// Initialize chart handler
	chartHandler := handlers.NewChartHandler(chartService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(chartHandler, muxRouter)

	// initialize occupancy chart server
	occupancyHttpServer := server.NewOccupancyHttpServer(router, muxRouter)

	chartsRefresherService := services.NewChartsRefresherService(redisChartDao, defragApiClient)

	return &Container{
		RedisClient:            redisClient,
		RedisChartDao:          redisChartDao,
		ChartService:           chartService,
		DefragAPI:              defragApiClient,
		ChartHandler:           chartHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		OccupancyHttpServer:    occupancyHttpServer,
		ChartsRefresherService: chartsRefresherService,
	}
}
