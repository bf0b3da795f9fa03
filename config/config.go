package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Charts Refresher config
const CHARTS_REFRESHER_SERVICE_SCHEDULE_MINUTES = 30
const DEFRAG_ANALYSIS_POLLING_WAIT_SECONDS = 15

// Chart window defaults
const DEFAULT_CHART_WINDOW_DAYS = 14

// Defrag Analysis API
const DEFRAG_ENDPOINT_BASE_V1 = "https://defrag-analysis.app/api/v1"
const DEFRAG_PRIVATE_KEY = "pri_2c1be7c30e824f91a55b6d3f88e0a417"
const DEFRAG_PUBLIC_KEY = "pub_9d41c2a6f27847bc8e305b6cf1de5582"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CHART_RESPONSE_RESOURCE = "chart_response.json"
const ANALYSIS_JOB_RESPONSE_RESOURCE = "analysis_job_response.json"
const ANALYSIS_PROGRESS_RESPONSE_RESOURCE = "analysis_progress_response.json"
const PROPERTY_IDS_RESOURCE = "static_property_ids.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
