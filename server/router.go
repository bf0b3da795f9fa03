package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ChartHandler is the handler surface the router wires up.
type ChartHandler interface {
	GetOccupancyChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	chartHandler ChartHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	chartHandler ChartHandler,
	router *mux.Router) *Router {
	return &Router{
		chartHandler: chartHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?start={YYYY-MM-DD}&days={int}&refresh={bool}
	r.router.HandleFunc("/v1/properties/{property_id}/chart", r.chartHandler.GetOccupancyChart).Methods("GET")

	r.router.HandleFunc("/ping", r.chartHandler.Ping).Methods("GET")
}
