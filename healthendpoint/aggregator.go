package healthendpoint

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultProbeTimeout    = 5 * time.Second
	DefaultApiHealthWindow = 50
)

type (
	ApiHealthReader interface {
		RetrieveRecentApiHealth(ctx context.Context, n int) ([]*models.ApiHealthRecord, error)
	}

	HitRater interface {
		HitRate() float64
	}

	// ProbeFunc reports a component as healthy by returning nil.
	ProbeFunc func(ctx context.Context) error

	HealthChecker interface {
		Check(ctx context.Context) models.HealthCheckResult
	}
)

type Probes struct {
	Database       Pinger
	ApiHealth      ApiHealthReader
	Storage        ProbeFunc
	Authentication ProbeFunc
	Cache          HitRater
}

type AggregatorConfig struct {
	ProbeTimeout    time.Duration `yaml:"probe_timeout" json:"probe_timeout"`
	ApiHealthWindow int           `yaml:"api_health_window" json:"api_health_window"`
	DeployedAt      time.Time     `yaml:"deployed_at" json:"deployed_at"`
}

type Aggregator struct {
	probes     Probes
	timeout    time.Duration
	window     int
	deployedAt time.Time
	clock      clock.Clock
	logger     lager.Logger
}

var _ HealthChecker = &Aggregator{}

func NewAggregator(probes Probes, conf AggregatorConfig, clk clock.Clock, logger lager.Logger) *Aggregator {
	timeout := conf.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	window := conf.ApiHealthWindow
	if window <= 0 {
		window = DefaultApiHealthWindow
	}
	deployedAt := conf.DeployedAt
	if deployedAt.IsZero() {
		deployedAt = clk.Now()
	}
	return &Aggregator{
		probes:     probes,
		timeout:    timeout,
		window:     window,
		deployedAt: deployedAt,
		clock:      clk,
		logger:     logger.Session("health-aggregator"),
	}
}

// Check runs every probe concurrently and reduces them to the worst status.
// It never fails; probe problems are reported on the affected component.
func (a *Aggregator) Check(ctx context.Context) (result models.HealthCheckResult) {
	now := a.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("health check aborted: %v", r)
			a.logger.Error("health-check-failed", err)
			result = failedResult(now, a.uptime(now), err)
		}
	}()

	components := models.HealthComponents{}
	var (
		wg       sync.WaitGroup
		panicked atomic.Value
	)
	spawn := func(check func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicked.Store(fmt.Sprint(r))
				}
			}()
			check()
		}()
	}
	spawn(func() { components.Database = a.checkDatabase(ctx) })
	spawn(func() { components.API = a.checkApi(ctx) })
	spawn(func() { components.Storage = a.checkFunc(ctx, "storage", a.probes.Storage) })
	spawn(func() { components.Authentication = a.checkFunc(ctx, "authentication", a.probes.Authentication) })
	spawn(func() { components.Cache = a.checkCache() })
	wg.Wait()
	if p := panicked.Load(); p != nil {
		panic(p)
	}

	status := models.WorstOf(components.Statuses()...)
	if status != models.HealthStatusHealthy {
		a.logger.Info("system-not-healthy", lager.Data{"status": status, "components": components})
	}
	return models.HealthCheckResult{
		Status:     status,
		Timestamp:  now,
		Uptime:     a.uptime(now),
		Message:    StatusMessage(status),
		Components: components,
	}
}

func (a *Aggregator) uptime(now time.Time) float64 {
	return now.Sub(a.deployedAt).Seconds()
}

func (a *Aggregator) checkDatabase(ctx context.Context) models.ComponentHealth {
	if a.probes.Database == nil {
		return unhealthy(&models.HealthProbeError{Component: "database", Err: fmt.Errorf("not configured")})
	}
	start := a.clock.Now()
	_, err := runProbe(ctx, a.timeout, "database", func(context.Context) (struct{}, error) {
		return struct{}{}, a.probes.Database.Ping()
	})
	if err != nil {
		a.logger.Error("database-probe-failed", err)
		return unhealthy(err)
	}
	elapsed := float64(a.clock.Since(start).Microseconds()) / 1000
	return models.ComponentHealth{Status: models.HealthStatusHealthy, ResponseTime: &elapsed}
}

func (a *Aggregator) checkApi(ctx context.Context) models.ApiComponentHealth {
	if a.probes.ApiHealth == nil {
		return models.ApiComponentHealth{Status: models.HealthStatusHealthy, Endpoints: []models.EndpointHealth{}}
	}
	records, err := runProbe(ctx, a.timeout, "api", func(ctx context.Context) ([]*models.ApiHealthRecord, error) {
		return a.probes.ApiHealth.RetrieveRecentApiHealth(ctx, a.window)
	})
	if err != nil {
		a.logger.Error("api-probe-failed", err)
		return models.ApiComponentHealth{Status: models.HealthStatusUnhealthy, Endpoints: []models.EndpointHealth{}, Error: err.Error()}
	}
	endpoints := LatestPerEndpoint(records)
	statuses := make([]models.HealthStatus, 0, len(endpoints))
	for _, e := range endpoints {
		statuses = append(statuses, e.Status)
	}
	return models.ApiComponentHealth{Status: models.WorstOf(statuses...), Endpoints: endpoints}
}

func (a *Aggregator) checkFunc(ctx context.Context, component string, probe ProbeFunc) models.ComponentHealth {
	if probe == nil {
		return models.ComponentHealth{Status: models.HealthStatusHealthy}
	}
	_, err := runProbe(ctx, a.timeout, component, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, probe(ctx)
	})
	if err != nil {
		a.logger.Error("probe-failed", err, lager.Data{"component": component})
		return unhealthy(err)
	}
	return models.ComponentHealth{Status: models.HealthStatusHealthy}
}

func (a *Aggregator) checkCache() models.CacheComponentHealth {
	hitRate := 1.0
	if a.probes.Cache != nil {
		hitRate = a.probes.Cache.HitRate()
	}
	return models.CacheComponentHealth{Status: models.HealthStatusHealthy, HitRate: hitRate}
}

// LatestPerEndpoint keeps the most recent record of each endpoint, in order of
// first appearance.
func LatestPerEndpoint(records []*models.ApiHealthRecord) []models.EndpointHealth {
	latest := map[string]*models.ApiHealthRecord{}
	order := []string{}
	for _, r := range records {
		if r == nil {
			continue
		}
		current, seen := latest[r.Endpoint]
		if !seen {
			order = append(order, r.Endpoint)
		}
		if !seen || r.CheckedAt.After(current.CheckedAt) {
			latest[r.Endpoint] = r
		}
	}
	endpoints := make([]models.EndpointHealth, 0, len(order))
	for _, name := range order {
		r := latest[name]
		endpoints = append(endpoints, models.EndpointHealth{
			Endpoint:     r.Endpoint,
			Status:       r.Status,
			ResponseTime: r.ResponseTime,
			ErrorRate:    r.ErrorRate,
		})
	}
	return endpoints
}

func StatusMessage(status models.HealthStatus) string {
	switch status {
	case models.HealthStatusHealthy:
		return "All systems operational"
	case models.HealthStatusDegraded:
		return "Some systems are degraded"
	default:
		return "System is unhealthy"
	}
}

func unhealthy(err error) models.ComponentHealth {
	return models.ComponentHealth{Status: models.HealthStatusUnhealthy, Error: err.Error()}
}

func failedResult(now time.Time, uptime float64, err error) models.HealthCheckResult {
	down := models.ComponentHealth{Status: models.HealthStatusUnhealthy}
	return models.HealthCheckResult{
		Status:    models.HealthStatusUnhealthy,
		Timestamp: now,
		Uptime:    uptime,
		Message:   StatusMessage(models.HealthStatusUnhealthy),
		Components: models.HealthComponents{
			Database:       down,
			API:            models.ApiComponentHealth{Status: models.HealthStatusUnhealthy, Endpoints: []models.EndpointHealth{}},
			Storage:        down,
			Cache:          models.CacheComponentHealth{Status: models.HealthStatusUnhealthy},
			Authentication: down,
		},
		Error: err.Error(),
	}
}

// runProbe bounds probe by timeout and turns a panic into an error.
func runProbe[T any](ctx context.Context, timeout time.Duration, component string, probe func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("probe panicked: %v", r)}
			}
		}()
		value, err := probe(ctx)
		done <- outcome{value: value, err: err}
	}()

	var zero T
	select {
	case o := <-done:
		if o.err != nil {
			return zero, &models.HealthProbeError{Component: component, Err: o.err}
		}
		return o.value, nil
	case <-ctx.Done():
		return zero, &models.HealthProbeError{Component: component, Err: ctx.Err()}
	}
}
