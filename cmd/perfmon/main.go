package main

import (
	"context"
	"os"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/config"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/monitor"
	"code.cloudfoundry.org/app-perfmon/notifier"
	"code.cloudfoundry.org/app-perfmon/operator"
	"code.cloudfoundry.org/app-perfmon/ratelimiter"
	"code.cloudfoundry.org/app-perfmon/recommendation"
	"code.cloudfoundry.org/app-perfmon/recommendation/generative"
	"code.cloudfoundry.org/app-perfmon/server"
	"code.cloudfoundry.org/app-perfmon/startup"
	"code.cloudfoundry.org/app-perfmon/validator"
	"github.com/prometheus/client_golang/prometheus"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

const (
	metricsNamespace = "perfmon"
	metricsSubsystem = "server"
)

func main() {
	conf, logger, shutdown := startup.Bootstrap("perfmon", config.LoadConfig)
	defer shutdown()

	clock := clock.NewClock()

	// Persistence
	perfmonDB := startup.CreatePerfmonDB(conf.Db, conf.SampleHistory, logger)
	defer func() { _ = perfmonDB.Closer() }()

	// Components
	metricsCache := collection.NewMetricsCache(conf.Cache.Capacity, conf.Cache.TTL)
	dispatcher := notifier.NewDispatcher(perfmonDB.DB, notifier.NewChannels(conf.Notifier, logger.Session("notifier")), conf.Notifier.Timeout, logger)
	authenticator := auth.NewAuthenticator(conf.Auth, clock, logger.Session("auth"))

	var completer generative.Completer
	if conf.Generative.Enabled() {
		completer = generative.NewClientFromConfig(conf.Generative, logger)
	}
	engine, err := recommendation.NewEngine(perfmonDB.DB, completer, conf.Thresholds, conf.Recommendation, clock, logger)
	startup.ExitOnError(err, logger, "failed to create recommendation engine")

	sampleValidator, err := validator.NewSampleValidator()
	startup.ExitOnError(err, logger, "failed to load sample schema")

	storageProbe, err := createStorageProbe(conf.Storage, logger)
	startup.ExitOnError(err, logger, "failed to create storage client", lager.Data{"bucket": conf.Storage.Bucket})

	aggregator := healthendpoint.NewAggregator(healthendpoint.Probes{
		Database:       perfmonDB.DB,
		ApiHealth:      perfmonDB.DB,
		Storage:        storageProbe,
		Authentication: createAuthProbe(conf, authenticator, logger),
		Cache:          metricsCache,
	}, conf.HealthCheck, clock, logger)

	service := monitor.NewService(
		monitor.Stores{Samples: perfmonDB.DB, Alerts: perfmonDB.DB, Recommendations: perfmonDB.DB},
		monitor.Components{
			Validator:   sampleValidator,
			Cache:       metricsCache,
			Evaluator:   alerting.NewEvaluator(clock),
			Dispatcher:  dispatcher,
			Recommender: engine,
			Health:      aggregator,
		},
		monitor.Config{Thresholds: conf.Thresholds, FreshnessWindow: conf.Recommendation.FreshnessWindow},
		clock, logger)

	limiters, sweeper, closeLimiters := createLimiters(conf.RateLimit, clock, logger)
	defer closeLimiters()

	// Metrics
	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(metricsNamespace, metricsSubsystem)
	collectors := []prometheus.Collector{httpStatusCollector, metricsCache, dispatcher}
	if perfmonDB.Status != nil {
		collectors = append(collectors, healthendpoint.NewDatabaseStatusCollector(metricsNamespace, metricsSubsystem, "perfmonDB", perfmonDB.Status))
	}
	promRegistry := prometheus.NewRegistry()
	err = healthendpoint.RegisterCollectors(promRegistry, metricsNamespace, collectors, true, logger)
	startup.ExitOnError(err, logger, "failed to register collectors")

	// Start services
	servers := []startup.ServerBuilder{
		startup.Server("perfmon_server", func() (ifrit.Runner, error) {
			return server.NewServer(logger.Session("perfmon_server"), conf.Server, service, authenticator, httpStatusCollector, limiters)
		}),
		startup.Server("health_server", func() (ifrit.Runner, error) {
			return healthendpoint.NewServerWithBasicAuth(conf.Health, aggregator, logger, promRegistry)
		}),
		startup.Server("retention_pruner", func() (ifrit.Runner, error) {
			pruner := operator.NewRetentionPruner(perfmonDB.DB, conf.Retention.SampleCutoff, conf.Retention.AlertCutoff, clock, logger)
			return operator.NewRunner(pruner, conf.Retention.RefreshInterval, clock, logger.Session("retention_pruner")), nil
		}),
		startup.OptionalServer("ratelimit_sweeper", sweeper != nil, func() (ifrit.Runner, error) { return sweeper, nil }),
	}
	startup.StartService(logger, servers...)
}

// createLimiters builds separate ingest and query limiters. Shared redis
// counters need no sweeper; in-memory windows are swept by the returned runner.
func createLimiters(conf config.RateLimitConfig, clock clock.Clock, logger lager.Logger) (server.Limiters, ifrit.Runner, func()) {
	if conf.UsingRedis() {
		ingestStore, client, err := ratelimiter.NewRedisStore(conf.Redis, conf.Ingest.Requests, conf.Ingest.Window, logger.Session("ingest-ratelimiter"))
		startup.ExitOnError(err, logger, "failed to connect redis", lager.Data{"address": conf.Redis.Address})
		queryStore := ratelimiter.NewRedisStoreWithClient(client, conf.Query.Requests, conf.Query.Window, logger.Session("query-ratelimiter"))
		return server.Limiters{
			Ingest: ratelimiter.Namespaced{Limiter: ratelimiter.NewRateLimiter(ingestStore), Prefix: "ingest"},
			Query:  ratelimiter.Namespaced{Limiter: ratelimiter.NewRateLimiter(queryStore), Prefix: "query"},
		}, nil, func() { _ = client.Close() }
	}

	ingestStore := ratelimiter.NewInMemoryStore(conf.Ingest.Requests, conf.Ingest.Window, conf.ExpireCheckInterval, clock, logger.Session("ingest-ratelimiter"))
	queryStore := ratelimiter.NewInMemoryStore(conf.Query.Requests, conf.Query.Window, conf.ExpireCheckInterval, clock, logger.Session("query-ratelimiter"))
	sweeper := grouper.NewParallel(os.Interrupt, grouper.Members{
		{Name: "ingest", Runner: ingestStore},
		{Name: "query", Runner: queryStore},
	})
	return server.Limiters{
		Ingest: ratelimiter.NewRateLimiter(ingestStore),
		Query:  ratelimiter.NewRateLimiter(queryStore),
	}, sweeper, func() {}
}

func createStorageProbe(conf config.StorageConfig, logger lager.Logger) (healthendpoint.ProbeFunc, error) {
	if conf.Bucket == "" {
		logger.Info("storage-probe-disabled")
		return healthendpoint.BucketProbe(nil, ""), nil
	}
	client, err := startup.CreateS3Client(context.Background(), conf.Region, conf.Endpoint)
	if err != nil {
		return nil, err
	}
	return healthendpoint.BucketProbe(client, conf.Bucket), nil
}

func createAuthProbe(conf *config.Config, authenticator *auth.Authenticator, logger lager.Logger) healthendpoint.ProbeFunc {
	if conf.Auth.SessionCheckURL == "" {
		return authenticator.SelfCheck
	}
	client := helpers.CreateHTTPClient(helpers.ClientConfig{Timeout: conf.HealthCheck.ProbeTimeout}, logger.Session("session-check-client"))
	return healthendpoint.SessionURLProbe(client, conf.Auth.SessionCheckURL)
}
