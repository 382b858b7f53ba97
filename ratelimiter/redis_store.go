package ratelimiter

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix      = "ratelimit:"
	defaultRedisTimeout = 250 * time.Millisecond
)

type RedisConfig struct {
	Address  string `yaml:"address" json:"address"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

// RedisStore shares fixed-window counters between instances. Redis failures
// let the request through.
type RedisStore struct {
	client        redis.Cmdable
	maxAmount     int
	validDuration time.Duration
	timeout       time.Duration
	logger        lager.Logger
}

func NewRedisStore(conf RedisConfig, maxAmount int, validDuration time.Duration, logger lager.Logger) (*RedisStore, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: conf.Address, Password: conf.Password, DB: conf.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error("failed-to-ping-redis", err, lager.Data{"address": conf.Address})
		return nil, nil, err
	}
	return NewRedisStoreWithClient(client, maxAmount, validDuration, logger), client, nil
}

func NewRedisStoreWithClient(client redis.Cmdable, maxAmount int, validDuration time.Duration, logger lager.Logger) *RedisStore {
	if maxAmount <= 0 {
		maxAmount = DefaultRequests
	}
	if validDuration <= 0 {
		validDuration = DefaultWindow
	}
	return &RedisStore{
		client:        client,
		maxAmount:     maxAmount,
		validDuration: validDuration,
		timeout:       defaultRedisTimeout,
		logger:        logger,
	}
}

func (s *RedisStore) Increment(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	redisKey := redisKeyPrefix + key
	counter, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		s.logger.Error("failed-to-increment-counter", err, lager.Data{"key": key})
		return nil
	}
	if counter == 1 {
		if err := s.client.Expire(ctx, redisKey, s.validDuration).Err(); err != nil {
			s.logger.Error("failed-to-set-window-expiry", err, lager.Data{"key": key})
		}
	}
	if counter > int64(s.maxAmount) {
		return ErrLimitExceeded
	}
	return nil
}
