package server

import (
	"net/http"

	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/ratelimiter"
	"code.cloudfoundry.org/app-perfmon/routes"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

// Limiters holds one limiter per route family so that a client that floods
// ingestion can still query.
type Limiters struct {
	Ingest ratelimiter.Limiter
	Query  ratelimiter.Limiter
}

func NewServer(logger lager.Logger, conf helpers.ServerConfig, service PerfmonService, authenticator *auth.Authenticator, httpStatusCollector healthendpoint.HTTPStatusCollector, limiters Limiters) (ifrit.Runner, error) {
	router := NewRouter(logger, service, authenticator, httpStatusCollector, limiters)
	return helpers.NewHTTPServer(logger, conf, router)
}

func NewRouter(logger lager.Logger, service PerfmonService, authenticator *auth.Authenticator, httpStatusCollector healthendpoint.HTTPStatusCollector, limiters Limiters) *mux.Router {
	mh := NewMetricsHandler(service, logger.Session("metrics-handler"))

	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	authMiddleware := auth.NewMiddleware(authenticator, logger)
	ingestLimiter := ratelimiter.NewRateLimiterMiddleware(limiters.Ingest, logger.Session("ingest-ratelimiter-middleware"))
	queryLimiter := ratelimiter.NewRateLimiterMiddleware(limiters.Query, logger.Session("query-ratelimiter-middleware"))

	r := routes.PerfmonRoutes()
	r.Use(otelmux.Middleware("perfmon"))
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Use(authMiddleware.Authenticate)
	r.Get(routes.PostMetricsRouteName).Handler(ingestLimiter.CheckRateLimit(http.HandlerFunc(mh.PostMetrics)))
	r.Get(routes.GetMetricsRouteName).Handler(queryLimiter.CheckRateLimit(http.HandlerFunc(mh.GetMetrics)))
	return r
}
