package routes

import (
	"github.com/gorilla/mux"

	"net/http"
)

const (
	MetricsPath          = "/metrics"
	PostMetricsRouteName = "PostMetrics"
	GetMetricsRouteName  = "GetMetrics"
)

type PerfmonRoute struct {
	metricsRoutes *mux.Router
}

// PerfmonRoutes returns a fresh router each time so that middleware added by
// one server does not leak into another.
func PerfmonRoutes() *mux.Router {
	return newRouters().metricsRoutes
}

func newRouters() *PerfmonRoute {
	instance := &PerfmonRoute{
		metricsRoutes: mux.NewRouter(),
	}

	instance.metricsRoutes.Path(MetricsPath).Methods(http.MethodPost).Name(PostMetricsRouteName)
	instance.metricsRoutes.Path(MetricsPath).Methods(http.MethodGet).Name(GetMetricsRouteName)

	return instance
}
