package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"oc-server/config"
	services "oc-server/service"
)

const (
	START_QUERY_ARG   = "start"
	DAYS_QUERY_ARG    = "days"
	REFRESH_QUERY_ARG = "refresh"
)

type ChartHandler struct {
	chartService *services.ChartService
}

func NewChartHandler(chartService *services.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// GetOccupancyChart handles GET /v1/properties/{property_id}/chart
func (h *ChartHandler) GetOccupancyChart(w http.ResponseWriter, r *http.Request) {
	// 1) Parse path and query args
	propertyID := mux.Vars(r)["property_id"]
	if propertyID == "" {
		http.Error(w, "Missing property_id", http.StatusBadRequest)
		return
	}
	startDate, days, refresh, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Assemble (cache-or-fetch)
	rowModel, err := h.chartService.GetOccupancyChart(propertyID, startDate, days, refresh)
	if err != nil {
		log.Println("Error assembling occupancy chart:", err)
		http.Error(w, "Chart backend unavailable", http.StatusBadGateway)
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rowModel); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *ChartHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	startDate string, days int, refresh bool, ok bool,
) {
	startDate = vals.Get(START_QUERY_ARG)
	if startDate == "" {
		http.Error(w, "Invalid argument "+START_QUERY_ARG, http.StatusBadRequest)
		return
	}

	days = config.DEFAULT_CHART_WINDOW_DAYS
	if d := vals.Get(DAYS_QUERY_ARG); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid argument "+DAYS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		days = parsed
	}

	refresh = false
	if v := vals.Get(REFRESH_QUERY_ARG); v != "" {
		refresh, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

// Ping handles GET /ping
func (h *ChartHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
