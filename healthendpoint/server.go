package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
)

const (
	ReadinessPath  = "/health/readiness"
	LivenessPath   = "/health/liveness"
	PrometheusPath = "/health/prometheus"
)

func NewServerWithBasicAuth(conf helpers.HealthConfig, checker HealthChecker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, checker, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), conf.ServerConfig, healthRouter)
}

// NewHealthRouter serves readiness without credentials and everything else
// behind basic auth when it is configured.
func NewHealthRouter(conf helpers.HealthConfig, checker HealthChecker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle(ReadinessPath, readiness(checker)).Methods(http.MethodGet)
	}

	protected := router.PathPrefix("/health").Subrouter()
	if conf.BasicAuth.Enabled() {
		basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
		if err != nil {
			return nil, err
		}
		protected.Use(basicAuthentication.Middleware)
	}
	protected.HandleFunc("/liveness", liveness).Methods(http.MethodGet)
	protected.Handle("/prometheus", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return router, nil
}
