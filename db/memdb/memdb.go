// Package memdb keeps everything in process memory. It backs the service when
// no database URL is configured.
package memdb

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
)

const DefaultSampleCapacity = 100000

type MemDB struct {
	logger          lager.Logger
	samples         *collection.SampleHistory
	lock            sync.RWMutex
	alerts          []*models.Alert
	recommendations []*models.OptimizationRecommendation
	apiHealth       []*models.ApiHealthRecord
}

var _ db.PerfmonDB = &MemDB{}

func NewMemDB(sampleCapacity int, logger lager.Logger) *MemDB {
	if sampleCapacity <= 0 {
		sampleCapacity = DefaultSampleCapacity
	}
	return &MemDB{
		logger:  logger,
		samples: collection.NewSampleHistory(sampleCapacity),
	}
}

func (m *MemDB) SaveSample(_ context.Context, sample *models.Sample) error {
	m.samples.Put(sample)
	return nil
}

func (m *MemDB) RetrieveSamples(_ context.Context, start, end time.Time, limit int, orderType db.OrderType) ([]*models.Sample, error) {
	samples := m.samples.Query(start, end, limit)
	if orderType == db.ASC {
		slices.Reverse(samples)
	}
	return samples, nil
}

func (m *MemDB) PruneSamples(_ context.Context, before time.Time) error {
	dropped := m.samples.Prune(before)
	m.logger.Debug("pruned-samples", lager.Data{"before": before, "dropped": dropped})
	return nil
}

func (m *MemDB) SaveAlerts(_ context.Context, alerts []*models.Alert) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, alert := range alerts {
		copied := *alert
		m.alerts = append(m.alerts, &copied)
	}
	return nil
}

func (m *MemDB) RetrieveAlerts(_ context.Context, start, end time.Time, limit int) ([]*models.Alert, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	result := []*models.Alert{}
	for _, alert := range m.alerts {
		if !alert.Timestamp.Before(start) && alert.Timestamp.Before(end) {
			copied := *alert
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return truncate(result, limit), nil
}

func (m *MemDB) UpdateAlertStatus(_ context.Context, id string, status models.AlertStatus) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, alert := range m.alerts {
		if alert.ID == id {
			alert.Status = status
			return nil
		}
	}
	return db.ErrDoesNotExist
}

func (m *MemDB) PruneAlerts(_ context.Context, before time.Time) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.alerts = slices.DeleteFunc(m.alerts, func(alert *models.Alert) bool {
		return alert.Timestamp.Before(before)
	})
	return nil
}

func (m *MemDB) SaveRecommendations(_ context.Context, recommendations []*models.OptimizationRecommendation) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, rec := range recommendations {
		copied := *rec
		m.recommendations = append(m.recommendations, &copied)
	}
	return nil
}

func (m *MemDB) RetrieveRecommendations(_ context.Context, since time.Time, limit int) ([]*models.OptimizationRecommendation, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	result := []*models.OptimizationRecommendation{}
	for _, rec := range m.recommendations {
		if !rec.CreatedAt.Before(since) {
			copied := *rec
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return truncate(result, limit), nil
}

func (m *MemDB) UpdateRecommendationStatus(_ context.Context, id string, status models.RecommendationStatus) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, rec := range m.recommendations {
		if rec.ID == id {
			rec.Status = status
			return nil
		}
	}
	return db.ErrDoesNotExist
}

// RecordApiHealth appends an endpoint health record. The api-health log is
// written by an external checker; this lets tests and local runs feed it.
func (m *MemDB) RecordApiHealth(record *models.ApiHealthRecord) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.apiHealth = append(m.apiHealth, record)
}

func (m *MemDB) RetrieveRecentApiHealth(_ context.Context, n int) ([]*models.ApiHealthRecord, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	result := slices.Clone(m.apiHealth)
	sort.SliceStable(result, func(i, j int) bool { return result[i].CheckedAt.After(result[j].CheckedAt) })
	return truncate(result, n), nil
}

func (m *MemDB) Ping() error {
	return nil
}

func (m *MemDB) Close() error {
	m.logger.Info("closing-in-memory-store", lager.Data{"samples": m.samples.Len()})
	return nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
