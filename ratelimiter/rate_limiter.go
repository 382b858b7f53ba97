package ratelimiter

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultRequests            = 10
	DefaultWindow              = 60 * time.Second
	defaultExpireCheckInterval = 30 * time.Second
)

type Limiter interface {
	Allow(key string) bool
}

type RateLimiter struct {
	store Store
}

func NewInMemoryRateLimiter(requests int, window time.Duration, logger lager.Logger) *RateLimiter {
	return NewRateLimiter(NewInMemoryStore(requests, window, defaultExpireCheckInterval, clock.NewClock(), logger))
}

func NewRateLimiter(store Store) *RateLimiter {
	return &RateLimiter{
		store: store,
	}
}

func (r *RateLimiter) Allow(key string) bool {
	return r.store.Increment(key) == nil
}

// Namespaced keeps the counters of one route family apart from others that
// share a store.
type Namespaced struct {
	Limiter
	Prefix string
}

func (n Namespaced) Allow(key string) bool {
	return n.Limiter.Allow(n.Prefix + ":" + key)
}
