package db

import (
	"context"
	"errors"
	"io"
	"time"

	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
	PerfmonDb          = "perfmon_db"
)

// OrderType orders rows by timestamp.
type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)

func (o OrderType) SQL() string {
	if o == ASC {
		return "ASC"
	}
	return "DESC"
}

var ErrDoesNotExist = errors.New("doesn't exist")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

type SampleDB interface {
	SaveSample(ctx context.Context, sample *models.Sample) error
	// RetrieveSamples returns samples with start <= timestamp < end. A limit
	// of zero or less returns every match.
	RetrieveSamples(ctx context.Context, start, end time.Time, limit int, orderType OrderType) ([]*models.Sample, error)
}

type AlertDB interface {
	SaveAlerts(ctx context.Context, alerts []*models.Alert) error
	RetrieveAlerts(ctx context.Context, start, end time.Time, limit int) ([]*models.Alert, error)
	UpdateAlertStatus(ctx context.Context, id string, status models.AlertStatus) error
}

type RecommendationDB interface {
	SaveRecommendations(ctx context.Context, recommendations []*models.OptimizationRecommendation) error
	RetrieveRecommendations(ctx context.Context, since time.Time, limit int) ([]*models.OptimizationRecommendation, error)
	UpdateRecommendationStatus(ctx context.Context, id string, status models.RecommendationStatus) error
}

// PruneDB drops rows older than a cutoff.
type PruneDB interface {
	PruneSamples(ctx context.Context, before time.Time) error
	PruneAlerts(ctx context.Context, before time.Time) error
}

type ApiHealthDB interface {
	RetrieveRecentApiHealth(ctx context.Context, n int) ([]*models.ApiHealthRecord, error)
}

// PerfmonDB is everything the service persists or reads back.
type PerfmonDB interface {
	SampleDB
	AlertDB
	RecommendationDB
	ApiHealthDB
	PruneDB
	healthendpoint.Pinger
	io.Closer
}
