package collection

import (
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultCacheCapacity = 1000
	DefaultCacheTTL      = 15 * time.Minute

	// DefaultHitRate is reported before the first lookup.
	DefaultHitRate = 1.0
)

// CacheKey identifies the most recent sample of a user session.
func CacheKey(userID, sessionID string) string {
	if userID == "" {
		userID = models.AnonymousUser
	}
	return userID + ":" + sessionID
}

func SampleCacheKey(s *models.Sample) string {
	return CacheKey(s.Metadata.User(), s.Metadata.SessionID)
}

type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}

func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return DefaultHitRate
	}
	return float64(s.Hits) / float64(total)
}

// MetricsCache holds the latest sample per session. Entries expire a fixed
// time after their last Put and the least recently used entry is evicted
// once capacity is reached. It is advisory only.
type MetricsCache struct {
	lru       *expirable.LRU[string, *models.Sample]
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64

	hitsDesc    *prometheus.Desc
	missesDesc  *prometheus.Desc
	entriesDesc *prometheus.Desc
}

func NewMetricsCache(capacity int, ttl time.Duration) *MetricsCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &MetricsCache{
		hitsDesc:    prometheus.NewDesc("perfmon_metrics_cache_hits_total", "Number of session lookups served from the metrics cache", nil, nil),
		missesDesc:  prometheus.NewDesc("perfmon_metrics_cache_misses_total", "Number of session lookups not found in the metrics cache", nil, nil),
		entriesDesc: prometheus.NewDesc("perfmon_metrics_cache_entries", "Number of sessions held in the metrics cache", nil, nil),
	}
	c.lru = expirable.NewLRU[string, *models.Sample](capacity, func(string, *models.Sample) {
		c.evictions.Add(1)
	}, ttl)
	return c
}

func (c *MetricsCache) Put(key string, sample *models.Sample) {
	c.lru.Add(key, sample)
}

func (c *MetricsCache) Get(key string) (*models.Sample, bool) {
	sample, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return sample, ok
}

func (c *MetricsCache) Len() int {
	return c.lru.Len()
}

func (c *MetricsCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.lru.Len(),
	}
}

func (c *MetricsCache) HitRate() float64 {
	return c.Stats().HitRate()
}

func (c *MetricsCache) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hitsDesc
	ch <- c.missesDesc
	ch <- c.entriesDesc
}

func (c *MetricsCache) Collect(ch chan<- prometheus.Metric) {
	stats := c.Stats()
	ch <- prometheus.MustNewConstMetric(c.hitsDesc, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.missesDesc, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.entriesDesc, prometheus.GaugeValue, float64(stats.Entries))
}
