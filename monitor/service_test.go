package monitor_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/db/memdb"
	"code.cloudfoundry.org/app-perfmon/fakes"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/models"
	. "code.cloudfoundry.org/app-perfmon/monitor"
	"code.cloudfoundry.org/app-perfmon/notifier"
	"code.cloudfoundry.org/app-perfmon/testhelpers"
	"code.cloudfoundry.org/app-perfmon/validator"
	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		now         time.Time
		fclock      *fakeclock.FakeClock
		store       *memdb.MemDB
		stores      Stores
		cache       *collection.MetricsCache
		channel     *fakes.FakeChannel
		recommender *fakes.FakeRecommender
		service     *Service
	)

	payload := func(overrides map[string]interface{}) []byte {
		p := testhelpers.SamplePayload()
		for path, value := range overrides {
			testhelpers.SetField(p, path, value)
		}
		return testhelpers.MustMarshal(p)
	}

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC)
		fclock = fakeclock.NewFakeClock(now)
		logger := lagertest.NewTestLogger("monitor")
		store = memdb.NewMemDB(100, logger)
		stores = Stores{Samples: store, Alerts: store, Recommendations: store}
		cache = collection.NewMetricsCache(10, time.Minute)
		channel = &fakes.FakeChannel{}
		channel.NameReturns("slack")
		recommender = &fakes.FakeRecommender{}
	})

	JustBeforeEach(func() {
		logger := lagertest.NewTestLogger("monitor")
		sampleValidator, err := validator.NewSampleValidator()
		Expect(err).NotTo(HaveOccurred())
		service = NewService(stores, Components{
			Validator:   sampleValidator,
			Cache:       cache,
			Evaluator:   alerting.NewEvaluator(fclock),
			Dispatcher:  notifier.NewDispatcher(stores.Alerts, []notifier.Channel{channel}, time.Second, logger),
			Recommender: recommender,
			Health:      healthendpoint.NoopChecker{},
		}, Config{Thresholds: alerting.DefaultThresholds()}, fclock, logger)
	})

	Describe("Submit", func() {
		It("stores a healthy sample without alerts", func() {
			resp, err := service.Submit(context.Background(), payload(nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(Equal(&models.IngestResponse{Success: true, Alerts: 0}))

			samples, _ := store.RetrieveSamples(context.Background(), now.Add(-time.Hour), now, 0, db.DESC)
			Expect(samples).To(HaveLen(1))
			Expect(cache.Len()).To(Equal(1))
			Expect(channel.NotifyCallCount()).To(Equal(0))
		})

		It("persists and notifies urgent alerts", func() {
			resp, err := service.Submit(context.Background(), payload(map[string]interface{}{
				"performance.responseTime": 1500.0,
				"resources.cpuUsage":       95.0,
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Alerts).To(Equal(2))

			alerts, _ := store.RetrieveAlerts(context.Background(), now.Add(-time.Hour), now.Add(time.Second), 0)
			Expect(alerts).To(HaveLen(2))
			Eventually(channel.NotifyCallCount).Should(Equal(1))
		})

		It("records the change since the previous sample of the session", func() {
			_, err := service.Submit(context.Background(), payload(map[string]interface{}{"resources.cpuUsage": 85.0}))
			Expect(err).NotTo(HaveOccurred())
			fclock.Increment(time.Second)
			_, err = service.Submit(context.Background(), payload(map[string]interface{}{"resources.cpuUsage": 95.0}))
			Expect(err).NotTo(HaveOccurred())

			alerts, _ := store.RetrieveAlerts(context.Background(), now.Add(-time.Hour), now.Add(time.Minute), 1)
			Expect(alerts[0].Metadata).To(HaveKeyWithValue("previousValue", 85.0))
			Expect(alerts[0].Metadata).To(HaveKeyWithValue("delta", 10.0))
		})

		It("rejects an invalid sample with every violation", func() {
			_, err := service.Submit(context.Background(), payload(map[string]interface{}{
				"performance.errorRate": 1.5,
				"resources.cpuUsage":    -1.0,
			}))
			var violations models.ValidationErrors
			Expect(errors.As(err, &violations)).To(BeTrue())
			Expect(violations.Fields()).To(ConsistOf("performance.errorRate", "resources.cpuUsage"))
			Expect(cache.Len()).To(Equal(0))
		})

		Context("when the sample cannot be stored", func() {
			BeforeEach(func() {
				samples := &fakes.FakeSampleDB{}
				samples.SaveSampleReturns(errors.New("connection reset"))
				stores.Samples = samples
			})

			It("returns a storage error and evaluates nothing", func() {
				_, err := service.Submit(context.Background(), payload(map[string]interface{}{"resources.cpuUsage": 99.0}))
				var storageErr *models.StorageError
				Expect(errors.As(err, &storageErr)).To(BeTrue())
				Expect(storageErr.Op).To(Equal("save sample"))
				Expect(channel.NotifyCallCount()).To(Equal(0))
				Expect(cache.Len()).To(Equal(0))
			})
		})

		Context("when the alerts cannot be stored", func() {
			BeforeEach(func() {
				alertDB := &fakes.FakeAlertDB{}
				alertDB.SaveAlertsReturns(errors.New("disk full"))
				stores.Alerts = alertDB
			})

			It("returns a storage error and notifies nobody", func() {
				_, err := service.Submit(context.Background(), payload(map[string]interface{}{"resources.cpuUsage": 99.0}))
				var storageErr *models.StorageError
				Expect(errors.As(err, &storageErr)).To(BeTrue())
				Consistently(channel.NotifyCallCount, 50*time.Millisecond).Should(Equal(0))
			})
		})

		It("still succeeds when a channel fails", func() {
			channel.NotifyReturns(errors.New("webhook 500"))
			resp, err := service.Submit(context.Background(), payload(map[string]interface{}{"resources.memoryUsage": 97.0}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Alerts).To(Equal(1))
		})
	})

	Describe("Query", func() {
		var (
			resp *models.QueryResponse
			err  error
		)

		query := func(q Query) {
			resp, err = service.Query(context.Background(), q)
		}

		JustBeforeEach(func() {
			for _, cpu := range []float64{30, 50, 95} {
				_, submitErr := service.Submit(context.Background(), payload(map[string]interface{}{"resources.cpuUsage": cpu}))
				Expect(submitErr).NotTo(HaveOccurred())
			}
		})

		It("lists samples newest first up to the limit", func() {
			query(Query{Type: models.QueryTypeMetrics, Period: "1h", Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Type).To(Equal(models.QueryTypeMetrics))
			Expect(resp.Period).To(Equal(models.Period("1h")))
			Expect(resp.Data).To(HaveLen(2))
		})

		It("lists alerts", func() {
			fclock.Increment(time.Second)
			query(Query{Type: models.QueryTypeAlerts, Period: "24h", Limit: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Data).To(HaveLen(1))
		})

		It("summarises the window", func() {
			fclock.Increment(time.Second)
			query(Query{Type: models.QueryTypeSummary, Period: "24h", Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			summary := resp.Data.(models.Summary)
			Expect(summary.SampleCount).To(Equal(3))
			Expect(summary.AvgCPUUsage).To(Equal(175.0 / 3))
			Expect(summary.AlertsBySeverity[models.SeverityCritical]).To(Equal(1))
		})

		It("reports health", func() {
			query(Query{Type: models.QueryTypeHealth, Period: "24h", Limit: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Data.(models.HealthCheckResult).Status).To(Equal(models.HealthStatusHealthy))
		})

		Describe("recommendations", func() {
			generatedSet := []*models.OptimizationRecommendation{{ID: "rec-1", Title: "Implement API response caching"}}

			BeforeEach(func() {
				recommender.RecommendReturns(generatedSet, nil)
			})

			It("generates from recent samples when nothing is fresh", func() {
				query(Query{Type: models.QueryTypeRecommendations, Period: "24h", Limit: 100})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Data).To(Equal(generatedSet))
				_, recent, fresh := recommender.RecommendArgsForCall(0)
				Expect(recent).To(HaveLen(3))
				Expect(fresh).To(BeEmpty())
			})

			It("reuses a generated set within the freshness window", func() {
				query(Query{Type: models.QueryTypeRecommendations, Period: "24h", Limit: 100})
				query(Query{Type: models.QueryTypeRecommendations, Period: "24h", Limit: 100})
				Expect(err).NotTo(HaveOccurred())
				Expect(recommender.RecommendCallCount()).To(Equal(1))
			})

			It("hands stored fresh recommendations to the recommender", func() {
				stored := &models.OptimizationRecommendation{ID: "rec-0", CreatedAt: now.Add(-time.Hour), Status: models.RecommendationStatusPending}
				Expect(store.SaveRecommendations(context.Background(), []*models.OptimizationRecommendation{stored})).To(Succeed())
				query(Query{Type: models.QueryTypeRecommendations, Period: "24h", Limit: 100})
				Expect(err).NotTo(HaveOccurred())
				_, recent, fresh := recommender.RecommendArgsForCall(0)
				Expect(recent).To(BeEmpty())
				Expect(fresh).To(ConsistOf(stored))
			})

			It("surfaces a storage failure", func() {
				recommender.RecommendReturns(nil, &models.StorageError{Op: "save recommendations", Err: errors.New("db down")})
				query(Query{Type: models.QueryTypeRecommendations, Period: "24h", Limit: 100})
				var storageErr *models.StorageError
				Expect(errors.As(err, &storageErr)).To(BeTrue())
			})
		})

		Context("when the store fails", func() {
			BeforeEach(func() {
				alertDB := &fakes.FakeAlertDB{}
				alertDB.RetrieveAlertsReturns(nil, errors.New("timeout"))
				stores.Alerts = alertDB
			})

			It("returns a storage error", func() {
				query(Query{Type: models.QueryTypeAlerts, Period: "24h", Limit: 100})
				Expect(err).To(MatchError(ContainSubstring("storage retrieve alerts failed")))
			})
		})
	})
})
