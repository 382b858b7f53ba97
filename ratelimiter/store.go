package ratelimiter

import (
	"errors"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

var ErrLimitExceeded = errors.New("rate limit exceeded")

type Store interface {
	Increment(key string) error
}

// InMemoryStore counts requests per key in fixed windows. A window opens with
// the first request for a key and resets once it has elapsed.
type InMemoryStore struct {
	maxAmount           int
	validDuration       time.Duration
	expireCheckInterval time.Duration
	clock               clock.Clock
	storage             map[string]*window
	logger              lager.Logger
	sync.Mutex
}

type window struct {
	count   int
	resetAt time.Time
}

func NewInMemoryStore(maxAmount int, validDuration time.Duration, expireCheckInterval time.Duration, clk clock.Clock, logger lager.Logger) *InMemoryStore {
	if maxAmount <= 0 {
		maxAmount = DefaultRequests
	}
	if validDuration <= 0 {
		validDuration = DefaultWindow
	}
	if expireCheckInterval <= 0 {
		expireCheckInterval = defaultExpireCheckInterval
	}
	return &InMemoryStore{
		maxAmount:           maxAmount,
		validDuration:       validDuration,
		expireCheckInterval: expireCheckInterval,
		clock:               clk,
		storage:             make(map[string]*window),
		logger:              logger,
	}
}

func (s *InMemoryStore) Increment(key string) error {
	s.Lock()
	defer s.Unlock()

	now := s.clock.Now()
	w, ok := s.storage[key]
	if !ok || !now.Before(w.resetAt) {
		s.storage[key] = &window{count: 1, resetAt: now.Add(s.validDuration)}
		return nil
	}
	if w.count >= s.maxAmount {
		return ErrLimitExceeded
	}
	w.count++
	return nil
}

func (s *InMemoryStore) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.storage)
}

func (s *InMemoryStore) removeExpired() {
	s.Lock()
	defer s.Unlock()
	now := s.clock.Now()
	for k, w := range s.storage {
		if !now.Before(w.resetAt) {
			s.logger.Debug("removing-expired-key", lager.Data{"key": k})
			delete(s.storage, k)
		}
	}
}

// Run sweeps expired windows until signalled, so it can be a process member.
func (s *InMemoryStore) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := s.clock.NewTicker(s.expireCheckInterval)
	defer ticker.Stop()
	close(ready)
	for {
		select {
		case <-ticker.C():
			s.removeExpired()
		case <-signals:
			return nil
		}
	}
}
