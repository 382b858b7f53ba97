package ratelimiter_test

import (
	"time"

	"code.cloudfoundry.org/app-perfmon/ratelimiter"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

var _ = Describe("RedisStore", func() {
	var (
		client *redis.Client
		logger *lagertest.TestLogger
		store  *ratelimiter.RedisStore
	)

	Context("when redis is unreachable", func() {
		BeforeEach(func() {
			logger = lagertest.NewTestLogger("redis-store")
			client = redis.NewClient(&redis.Options{
				Addr:        "127.0.0.1:1",
				DialTimeout: 50 * time.Millisecond,
				MaxRetries:  -1,
			})
			store = ratelimiter.NewRedisStoreWithClient(client, 1, time.Minute, logger)
		})

		AfterEach(func() {
			Expect(client.Close()).To(Succeed())
		})

		It("lets requests through and logs the failure", func() {
			for i := 0; i < 3; i++ {
				Expect(store.Increment("10.0.0.1")).To(Succeed())
			}
			Expect(logger.LogMessages()).To(ContainElement("redis-store.failed-to-increment-counter"))
		})

		It("refuses to construct a pinged store", func() {
			_, _, err := ratelimiter.NewRedisStore(ratelimiter.RedisConfig{Address: "127.0.0.1:1"}, 10, time.Minute, logger)
			Expect(err).To(HaveOccurred())
		})
	})
})
