package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/configutil"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/db/memdb"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/notifier"
	"code.cloudfoundry.org/app-perfmon/ratelimiter"
	"code.cloudfoundry.org/app-perfmon/recommendation"
	"code.cloudfoundry.org/app-perfmon/recommendation/generative"
)

var ErrConfiguration = helpers.ErrConfiguration

const (
	PerfmonConfigService = "perfmon-config"

	DefaultServerPort          = 8080
	DefaultHealthPort          = 8081
	DefaultExpireCheckInterval = 30 * time.Second

	DefaultSampleRetention   = 30 * 24 * time.Hour
	DefaultAlertRetention    = 90 * 24 * time.Hour
	DefaultRetentionInterval = time.Hour
)

type CacheConfig struct {
	Capacity int           `yaml:"capacity" json:"capacity"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

type RateLimitConfig struct {
	Ingest              models.RateLimitConfig  `yaml:"ingest" json:"ingest"`
	Query               models.RateLimitConfig  `yaml:"query" json:"query"`
	ExpireCheckInterval time.Duration           `yaml:"expire_check_interval" json:"expire_check_interval"`
	Redis               ratelimiter.RedisConfig `yaml:"redis" json:"redis"`
}

func (c RateLimitConfig) UsingRedis() bool {
	return c.Redis.Address != ""
}

// RetentionConfig bounds how long samples and alerts are kept. Neither cutoff
// may be shorter than the longest query period.
type RetentionConfig struct {
	SampleCutoff    time.Duration `yaml:"sample_cutoff" json:"sample_cutoff"`
	AlertCutoff     time.Duration `yaml:"alert_cutoff" json:"alert_cutoff"`
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval"`
}

type StorageConfig struct {
	Bucket   string `yaml:"bucket" json:"bucket"`
	Region   string `yaml:"region" json:"region"`
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

type Config struct {
	Logging        helpers.LoggingConfig           `yaml:"logging" json:"logging"`
	Server         helpers.ServerConfig            `yaml:"server" json:"server"`
	Health         helpers.HealthConfig            `yaml:"health" json:"health"`
	HealthCheck    healthendpoint.AggregatorConfig `yaml:"health_check" json:"health_check"`
	Db             db.DatabaseConfig               `yaml:"db" json:"db"`
	SampleHistory  int                             `yaml:"sample_history" json:"sample_history"`
	Cache          CacheConfig                     `yaml:"cache" json:"cache"`
	RateLimit      RateLimitConfig                 `yaml:"rate_limit" json:"rate_limit"`
	Retention      RetentionConfig                 `yaml:"retention" json:"retention"`
	Thresholds     alerting.Thresholds             `yaml:"thresholds" json:"thresholds"`
	Notifier       notifier.Config                 `yaml:"notifier" json:"notifier"`
	Generative     generative.Config               `yaml:"generative" json:"generative"`
	Recommendation recommendation.Config           `yaml:"recommendation" json:"recommendation"`
	Storage        StorageConfig                   `yaml:"storage" json:"storage"`
	Auth           auth.Config                     `yaml:"auth" json:"auth"`
}

func LoadConfig(filepath string, vcapReader configutil.VCAPConfigurationReader) (*Config, error) {
	conf := defaultConfig()

	if err := helpers.LoadYamlFile(filepath, &conf); err != nil {
		return nil, err
	}

	if err := loadVcapConfig(&conf, vcapReader); err != nil {
		return nil, err
	}

	return &conf, nil
}

func defaultConfig() Config {
	defaultLimit := models.RateLimitConfig{
		Requests: ratelimiter.DefaultRequests,
		Window:   ratelimiter.DefaultWindow,
	}
	return Config{
		Logging: helpers.LoggingConfig{Level: "info"},
		Server:  helpers.ServerConfig{Port: DefaultServerPort},
		Health: helpers.HealthConfig{
			ServerConfig:          helpers.ServerConfig{Port: DefaultHealthPort},
			ReadinessCheckEnabled: true,
		},
		HealthCheck: healthendpoint.AggregatorConfig{
			ProbeTimeout:    healthendpoint.DefaultProbeTimeout,
			ApiHealthWindow: healthendpoint.DefaultApiHealthWindow,
		},
		SampleHistory: memdb.DefaultSampleCapacity,
		Cache: CacheConfig{
			Capacity: collection.DefaultCacheCapacity,
			TTL:      collection.DefaultCacheTTL,
		},
		RateLimit: RateLimitConfig{
			Ingest:              defaultLimit,
			Query:               defaultLimit,
			ExpireCheckInterval: DefaultExpireCheckInterval,
		},
		Retention: RetentionConfig{
			SampleCutoff:    DefaultSampleRetention,
			AlertCutoff:     DefaultAlertRetention,
			RefreshInterval: DefaultRetentionInterval,
		},
		Thresholds: alerting.DefaultThresholds(),
		Notifier: notifier.Config{
			Timeout:   notifier.DefaultChannelTimeout,
			PagerDuty: notifier.PagerDutyConfig{EventsURL: notifier.DefaultPagerDutyEventsURL},
		},
		Generative: generative.Config{
			Model:                   generative.DefaultModel,
			MaxTokens:               generative.DefaultMaxTokens,
			Temperature:             generative.DefaultTemperature,
			ConsecutiveFailureCount: generative.DefaultConsecutiveFailureCount,
		},
		Recommendation: recommendation.Config{
			CallTimeout:     recommendation.DefaultCallTimeout,
			FreshnessWindow: recommendation.DefaultFreshnessWindow,
		},
	}
}

func loadVcapConfig(conf *Config, vcapReader configutil.VCAPConfigurationReader) error {
	if vcapReader == nil || !vcapReader.IsRunningOnCF() {
		return nil
	}

	conf.Server.Port = vcapReader.GetPort()

	if err := configutil.LoadConfig(conf, vcapReader, PerfmonConfigService); err != nil && !errors.Is(err, configutil.ErrDbServiceNotFound) {
		return err
	}

	dbURL, err := vcapReader.MaterializeDBFromService(db.PerfmonDb)
	switch {
	case err == nil:
		conf.Db.URL = dbURL
	case !errors.Is(err, configutil.ErrDbServiceNotFound):
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDb,
		c.validateCache,
		c.validateRateLimit,
		c.validateRetention,
		c.validateThresholds,
		c.validateNotifier,
		c.validateGenerative,
		c.validateAuth,
		c.Health.Validate,
		c.Logging.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("%w: server.port must be positive", ErrConfiguration)
	}
	if c.Health.ServerConfig.Port == c.Server.Port {
		return fmt.Errorf("%w: health.server_config.port must differ from server.port", ErrConfiguration)
	}
	return nil
}

func (c *Config) validateDb() error {
	if c.Db.URL == "" {
		if c.SampleHistory <= 0 {
			return fmt.Errorf("%w: sample_history must be positive when no db.url is set", ErrConfiguration)
		}
		return nil
	}
	parsed, err := url.Parse(c.Db.URL)
	if err != nil {
		return fmt.Errorf("%w: db.url is invalid: %w", ErrConfiguration, err)
	}
	if parsed.Scheme != db.PostgresDriverName && parsed.Scheme != "postgresql" && parsed.Scheme != db.MysqlDriverName {
		return fmt.Errorf("%w: db.url scheme %q is not supported", ErrConfiguration, parsed.Scheme)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("%w: cache.capacity must be positive", ErrConfiguration)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrConfiguration)
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	for name, limit := range map[string]models.RateLimitConfig{"ingest": c.RateLimit.Ingest, "query": c.RateLimit.Query} {
		if err := limit.Validate(); err != nil {
			return fmt.Errorf("%w: rate_limit.%s: %w", ErrConfiguration, name, err)
		}
	}
	return nil
}

func (c *Config) validateRetention() error {
	longest := models.Period("30d").Window()
	if c.Retention.SampleCutoff < longest {
		return fmt.Errorf("%w: retention.sample_cutoff must be at least %s", ErrConfiguration, longest)
	}
	if c.Retention.AlertCutoff < longest {
		return fmt.Errorf("%w: retention.alert_cutoff must be at least %s", ErrConfiguration, longest)
	}
	if c.Retention.RefreshInterval <= 0 {
		return fmt.Errorf("%w: retention.refresh_interval must be positive", ErrConfiguration)
	}
	return nil
}

func (c *Config) validateThresholds() error {
	t := c.Thresholds
	for name, value := range map[string]float64{
		"response_time":       t.ResponseTime,
		"error_rate":          t.ErrorRate,
		"cpu_usage":           t.CPUUsage,
		"memory_usage":        t.MemoryUsage,
		"page_load_time":      t.PageLoadTime,
		"database_query_time": t.DatabaseQueryTime,
		"bounce_rate":         t.BounceRate,
	} {
		if value <= 0 {
			return fmt.Errorf("%w: thresholds.%s must be positive", ErrConfiguration, name)
		}
	}
	return nil
}

func (c *Config) validateNotifier() error {
	if c.Notifier.Timeout <= 0 {
		return fmt.Errorf("%w: notifier.timeout must be positive", ErrConfiguration)
	}
	if email := c.Notifier.Email; email.Host != "" && (email.From == "" || len(email.To) == 0) {
		return fmt.Errorf("%w: notifier.email needs from and to when host is set", ErrConfiguration)
	}
	return nil
}

func (c *Config) validateGenerative() error {
	if !c.Generative.Enabled() {
		return nil
	}
	if c.Generative.APIKey == "" {
		return fmt.Errorf("%w: generative.api_key is empty", ErrConfiguration)
	}
	if c.Recommendation.CallTimeout <= 0 {
		return fmt.Errorf("%w: recommendation.call_timeout must be positive", ErrConfiguration)
	}
	return nil
}

func (c *Config) validateAuth() error {
	if c.Auth.APIKey == "" && c.Auth.SessionSecret == "" {
		return fmt.Errorf("%w: auth.api_key or auth.session_secret must be set", ErrConfiguration)
	}
	return nil
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}
