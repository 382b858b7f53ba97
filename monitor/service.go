package monitor

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/notifier"
	"code.cloudfoundry.org/app-perfmon/recommendation"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/patrickmn/go-cache"
)

const (
	freshRecommendationsKey = "recommendations"
	recommendationSamples   = 100
)

type (
	SampleValidator interface {
		Validate(raw []byte) (*models.Sample, error)
	}

	AlertDispatcher interface {
		Dispatch(ctx context.Context, alerts []*models.Alert) (*notifier.Result, error)
	}

	Recommender interface {
		Recommend(ctx context.Context, recent []*models.Sample, fresh []*models.OptimizationRecommendation) ([]*models.OptimizationRecommendation, error)
	}
)

type Stores struct {
	Samples         db.SampleDB
	Alerts          db.AlertDB
	Recommendations db.RecommendationDB
}

type Config struct {
	Thresholds      alerting.Thresholds
	FreshnessWindow time.Duration
}

// Service runs ingestion and queries on behalf of the HTTP layer. Callers have
// already been authenticated and rate limited.
type Service struct {
	stores      Stores
	validator   SampleValidator
	cache       *collection.MetricsCache
	evaluator   *alerting.Evaluator
	dispatcher  AlertDispatcher
	recommender Recommender
	health      healthendpoint.HealthChecker
	fresh       *cache.Cache
	conf        Config
	clock       clock.Clock
	logger      lager.Logger
}

type Components struct {
	Validator   SampleValidator
	Cache       *collection.MetricsCache
	Evaluator   *alerting.Evaluator
	Dispatcher  AlertDispatcher
	Recommender Recommender
	Health      healthendpoint.HealthChecker
}

func NewService(stores Stores, components Components, conf Config, clk clock.Clock, logger lager.Logger) *Service {
	if conf.FreshnessWindow <= 0 {
		conf.FreshnessWindow = recommendation.DefaultFreshnessWindow
	}
	return &Service{
		stores:      stores,
		validator:   components.Validator,
		cache:       components.Cache,
		evaluator:   components.Evaluator,
		dispatcher:  components.Dispatcher,
		recommender: components.Recommender,
		health:      components.Health,
		fresh:       cache.New(conf.FreshnessWindow, conf.FreshnessWindow/4),
		conf:        conf,
		clock:       clk,
		logger:      logger.Session("monitor"),
	}
}

// Submit validates, stores and evaluates one sample. Only validation and
// storage failures reach the caller; notification problems are logged by the
// dispatcher.
func (s *Service) Submit(ctx context.Context, raw []byte) (*models.IngestResponse, error) {
	sample, err := s.validator.Validate(raw)
	if err != nil {
		return nil, err
	}
	logger := s.logger.Session("submit", lager.Data{"sessionId": sample.Metadata.SessionID, "environment": sample.Metadata.Environment})

	key := collection.SampleCacheKey(sample)
	previous, _ := s.cache.Get(key)

	if err := s.stores.Samples.SaveSample(ctx, sample); err != nil {
		logger.Error("failed-to-save-sample", err, lager.Data{"sample": sample})
		return nil, &models.StorageError{Op: "save sample", Err: err}
	}

	alerts := s.evaluator.EvaluateWithPrevious(sample, previous, s.conf.Thresholds)
	if len(alerts) > 0 {
		result, err := s.dispatcher.Dispatch(ctx, alerts)
		if err != nil {
			logger.Error("failed-to-dispatch-alerts", err, lager.Data{"alerts": alerts})
			return nil, err
		}
		logger.Info("alerts-raised", lager.Data{"count": len(alerts), "urgent": result.Urgent})
	}

	s.cache.Put(key, sample)
	return &models.IngestResponse{Success: true, Alerts: len(alerts)}, nil
}

func (s *Service) Query(ctx context.Context, q Query) (*models.QueryResponse, error) {
	now := s.clock.Now()
	start := now.Add(-q.Period.Window())

	var (
		data interface{}
		err  error
	)
	switch q.Type {
	case models.QueryTypeMetrics:
		data, err = s.stores.Samples.RetrieveSamples(ctx, start, now, q.Limit, db.DESC)
		err = storageError("retrieve samples", err)
	case models.QueryTypeAlerts:
		data, err = s.stores.Alerts.RetrieveAlerts(ctx, start, now, q.Limit)
		err = storageError("retrieve alerts", err)
	case models.QueryTypeRecommendations:
		data, err = s.recommendations(ctx, now, q.Limit)
	case models.QueryTypeSummary:
		data, err = s.summary(ctx, start, now)
	case models.QueryTypeHealth:
		data = s.health.Check(ctx)
	}
	if err != nil {
		s.logger.Error("failed-to-query", err, lager.Data{"type": q.Type, "period": q.Period})
		return nil, err
	}
	return &models.QueryResponse{Type: q.Type, Period: q.Period, Data: data}, nil
}

func (s *Service) summary(ctx context.Context, start, end time.Time) (models.Summary, error) {
	samples, err := s.stores.Samples.RetrieveSamples(ctx, start, end, 0, db.DESC)
	if err != nil {
		return models.Summary{}, storageError("retrieve samples", err)
	}
	alerts, err := s.stores.Alerts.RetrieveAlerts(ctx, start, end, 0)
	if err != nil {
		return models.Summary{}, storageError("retrieve alerts", err)
	}
	return Summarize(start, end, samples, alerts), nil
}

// recommendations serves the set generated within the freshness window, or
// generates a new one from the latest samples.
func (s *Service) recommendations(ctx context.Context, now time.Time, limit int) ([]*models.OptimizationRecommendation, error) {
	if cached, ok := s.fresh.Get(freshRecommendationsKey); ok {
		return truncate(cached.([]*models.OptimizationRecommendation), limit), nil
	}

	since := now.Add(-s.conf.FreshnessWindow)
	fresh, err := s.stores.Recommendations.RetrieveRecommendations(ctx, since, limit)
	if err != nil {
		return nil, storageError("retrieve recommendations", err)
	}
	var recent []*models.Sample
	if len(fresh) == 0 {
		recent, err = s.stores.Samples.RetrieveSamples(ctx, since, now, recommendationSamples, db.DESC)
		if err != nil {
			return nil, storageError("retrieve samples", err)
		}
	}

	recs, err := s.recommender.Recommend(ctx, recent, fresh)
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 {
		s.fresh.SetDefault(freshRecommendationsKey, recs)
	}
	return truncate(recs, limit), nil
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storageErr *models.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &models.StorageError{Op: op, Err: err}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
