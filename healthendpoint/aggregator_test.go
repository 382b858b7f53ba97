package healthendpoint_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/app-perfmon/fakes"
	. "code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"pgregory.net/rapid"
)

type hitRate float64

func (h hitRate) HitRate() float64 { return float64(h) }

var _ = Describe("Aggregator", func() {
	var (
		now        time.Time
		fclock     *fakeclock.FakeClock
		pinger     *fakes.FakePinger
		apiHealth  *fakes.FakeApiHealthReader
		probes     Probes
		conf       AggregatorConfig
		aggregator *Aggregator
		result     models.HealthCheckResult
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		fclock = fakeclock.NewFakeClock(now)
		pinger = &fakes.FakePinger{}
		apiHealth = &fakes.FakeApiHealthReader{}
		apiHealth.RetrieveRecentApiHealthReturns([]*models.ApiHealthRecord{
			{Endpoint: "/api/orders", Status: models.HealthStatusHealthy, CheckedAt: now},
		}, nil)
		probes = Probes{
			Database:       pinger,
			ApiHealth:      apiHealth,
			Storage:        func(context.Context) error { return nil },
			Authentication: func(context.Context) error { return nil },
			Cache:          hitRate(0.75),
		}
		conf = AggregatorConfig{ProbeTimeout: 100 * time.Millisecond, DeployedAt: now.Add(-time.Hour)}
	})

	JustBeforeEach(func() {
		aggregator = NewAggregator(probes, conf, fclock, lagertest.NewTestLogger("aggregator"))
		result = aggregator.Check(context.Background())
	})

	Context("when every probe succeeds", func() {
		It("is healthy", func() {
			Expect(result.Status).To(Equal(models.HealthStatusHealthy))
			Expect(result.Message).To(Equal("All systems operational"))
			Expect(result.Timestamp).To(Equal(now))
			Expect(result.Uptime).To(Equal(3600.0))
			Expect(result.Error).To(BeEmpty())
			Expect(result.Components.Database.ResponseTime).NotTo(BeNil())
			Expect(result.Components.Cache).To(Equal(models.CacheComponentHealth{Status: models.HealthStatusHealthy, HitRate: 0.75}))
			Expect(result.Components.API.Endpoints).To(HaveLen(1))
		})

		It("reads the configured api health window", func() {
			_, n := apiHealth.RetrieveRecentApiHealthArgsForCall(0)
			Expect(n).To(Equal(DefaultApiHealthWindow))
		})
	})

	Context("when the database ping fails", func() {
		BeforeEach(func() {
			pinger.PingReturns(errors.New("connection refused"))
		})

		It("marks the database and the system unhealthy", func() {
			Expect(result.Components.Database.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Components.Database.Error).To(ContainSubstring("connection refused"))
			Expect(result.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Message).To(Equal("System is unhealthy"))
			Expect(result.Components.Storage.Status).To(Equal(models.HealthStatusHealthy))
		})
	})

	Context("when an endpoint is degraded", func() {
		BeforeEach(func() {
			apiHealth.RetrieveRecentApiHealthReturns([]*models.ApiHealthRecord{
				{Endpoint: "/api/orders", Status: models.HealthStatusHealthy, CheckedAt: now},
				{Endpoint: "/api/users", Status: models.HealthStatusDegraded, CheckedAt: now},
				{Endpoint: "/api/users", Status: models.HealthStatusUnhealthy, CheckedAt: now.Add(-time.Hour)},
			}, nil)
		})

		It("uses the latest record per endpoint and degrades the system", func() {
			Expect(result.Components.API.Status).To(Equal(models.HealthStatusDegraded))
			Expect(result.Components.API.Endpoints).To(HaveLen(2))
			Expect(result.Status).To(Equal(models.HealthStatusDegraded))
			Expect(result.Message).To(Equal("Some systems are degraded"))
		})
	})

	Context("when the api health log cannot be read", func() {
		BeforeEach(func() {
			apiHealth.RetrieveRecentApiHealthReturns(nil, errors.New("table missing"))
		})

		It("marks the api unhealthy", func() {
			Expect(result.Components.API.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Components.API.Error).To(ContainSubstring("table missing"))
		})
	})

	Context("when a probe hangs", func() {
		BeforeEach(func() {
			probes.Storage = func(ctx context.Context) error {
				<-ctx.Done()
				time.Sleep(10 * time.Millisecond)
				return nil
			}
			probes.Authentication = func(context.Context) error {
				select {}
			}
		})

		It("marks it unhealthy once the timeout passes", func() {
			Expect(result.Components.Storage.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Components.Storage.Error).To(ContainSubstring("deadline exceeded"))
			Expect(result.Components.Authentication.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Components.Database.Status).To(Equal(models.HealthStatusHealthy))
		})
	})

	Context("when a probe panics", func() {
		BeforeEach(func() {
			probes.Authentication = func(context.Context) error { panic("nil session") }
		})

		It("marks only that component unhealthy", func() {
			Expect(result.Components.Authentication.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Components.Authentication.Error).To(ContainSubstring("nil session"))
			Expect(result.Components.Database.Status).To(Equal(models.HealthStatusHealthy))
		})
	})

	Context("when the check itself blows up", func() {
		BeforeEach(func() {
			probes.Cache = panickingHitRater{}
		})

		It("reports every component unhealthy with a diagnostic", func() {
			Expect(result.Status).To(Equal(models.HealthStatusUnhealthy))
			Expect(result.Error).To(ContainSubstring("counter corrupted"))
			for _, status := range result.Components.Statuses() {
				Expect(status).To(Equal(models.HealthStatusUnhealthy))
			}
		})
	})

	Context("when no cache telemetry is wired", func() {
		BeforeEach(func() {
			probes.Cache = nil
		})

		It("reports the default hit rate", func() {
			Expect(result.Components.Cache).To(Equal(models.CacheComponentHealth{Status: models.HealthStatusHealthy, HitRate: 1.0}))
		})
	})
})

type panickingHitRater struct{}

func (panickingHitRater) HitRate() float64 { panic("counter corrupted") }

var _ = Describe("WorstOf", func() {
	statusGen := rapid.SampledFrom([]models.HealthStatus{models.HealthStatusHealthy, models.HealthStatusDegraded, models.HealthStatusUnhealthy})

	It("is healthy iff all are healthy and unhealthy iff any is unhealthy", func() {
		rapid.Check(GinkgoT(), func(t *rapid.T) {
			statuses := rapid.SliceOfN(statusGen, 5, 5).Draw(t, "statuses")
			allHealthy, anyUnhealthy := true, false
			for _, s := range statuses {
				allHealthy = allHealthy && s == models.HealthStatusHealthy
				anyUnhealthy = anyUnhealthy || s == models.HealthStatusUnhealthy
			}
			worst := models.WorstOf(statuses...)
			if (worst == models.HealthStatusHealthy) != allHealthy {
				t.Fatalf("%v reduced to %v", statuses, worst)
			}
			if (worst == models.HealthStatusUnhealthy) != anyUnhealthy {
				t.Fatalf("%v reduced to %v", statuses, worst)
			}
		})
	})

	It("never improves when a component gets worse", func() {
		rank := map[models.HealthStatus]int{models.HealthStatusHealthy: 0, models.HealthStatusDegraded: 1, models.HealthStatusUnhealthy: 2}
		rapid.Check(GinkgoT(), func(t *rapid.T) {
			statuses := rapid.SliceOfN(statusGen, 5, 5).Draw(t, "statuses")
			i := rapid.IntRange(0, 4).Draw(t, "index")
			worse := append([]models.HealthStatus(nil), statuses...)
			worse[i] = models.HealthStatusUnhealthy
			if rank[models.WorstOf(worse...)] < rank[models.WorstOf(statuses...)] {
				t.Fatalf("worsening %v at %d improved the result", statuses, i)
			}
		})
	})
})

var _ = Describe("LatestPerEndpoint", func() {
	It("keeps the newest record of each endpoint", func() {
		t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		endpoints := LatestPerEndpoint([]*models.ApiHealthRecord{
			{Endpoint: "/a", Status: models.HealthStatusUnhealthy, CheckedAt: t0},
			{Endpoint: "/a", Status: models.HealthStatusHealthy, CheckedAt: t0.Add(time.Minute), ResponseTime: 90},
			{Endpoint: "/b", Status: models.HealthStatusDegraded, CheckedAt: t0},
		})
		Expect(endpoints).To(Equal([]models.EndpointHealth{
			{Endpoint: "/a", Status: models.HealthStatusHealthy, ResponseTime: 90},
			{Endpoint: "/b", Status: models.HealthStatusDegraded},
		}))
	})
})
