package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/collection"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/db/memdb"
	"code.cloudfoundry.org/app-perfmon/fakes"
	"code.cloudfoundry.org/app-perfmon/healthendpoint"
	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/monitor"
	"code.cloudfoundry.org/app-perfmon/notifier"
	"code.cloudfoundry.org/app-perfmon/ratelimiter"
	. "code.cloudfoundry.org/app-perfmon/server"
	"code.cloudfoundry.org/app-perfmon/testhelpers"
	"code.cloudfoundry.org/app-perfmon/validator"
	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/steinfletcher/apitest"
)

const apiKey = "test-api-key"

var _ = Describe("Server", func() {
	var (
		t             GinkgoTInterface
		now           time.Time
		fclock        *fakeclock.FakeClock
		store         *memdb.MemDB
		channel       *fakes.FakeChannel
		recommender   *fakes.FakeRecommender
		service       PerfmonService
		authenticator *auth.Authenticator
		limiters      Limiters
		router        *mux.Router
	)

	payload := func(overrides map[string]interface{}) string {
		p := testhelpers.SamplePayload()
		for path, value := range overrides {
			testhelpers.SetField(p, path, value)
		}
		return string(testhelpers.MustMarshal(p))
	}

	apiTest := func() *apitest.APITest {
		GinkgoHelper()
		return apitest.New().Handler(router)
	}

	BeforeEach(func() {
		t = GinkgoT()
		now = time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC)
		fclock = fakeclock.NewFakeClock(now)
		logger := lagertest.NewTestLogger("server")

		store = memdb.NewMemDB(100, logger)
		channel = &fakes.FakeChannel{}
		channel.NameReturns("slack")
		recommender = &fakes.FakeRecommender{}

		sampleValidator, err := validator.NewSampleValidator()
		Expect(err).NotTo(HaveOccurred())
		service = monitor.NewService(
			monitor.Stores{Samples: store, Alerts: store, Recommendations: store},
			monitor.Components{
				Validator:   sampleValidator,
				Cache:       collection.NewMetricsCache(10, time.Minute),
				Evaluator:   alerting.NewEvaluator(fclock),
				Dispatcher:  notifier.NewDispatcher(store, []notifier.Channel{channel}, time.Second, logger),
				Recommender: recommender,
				Health:      healthendpoint.NoopChecker{},
			},
			monitor.Config{Thresholds: alerting.DefaultThresholds()}, fclock, logger)

		authenticator = auth.NewAuthenticator(auth.Config{APIKey: apiKey, SessionSecret: "session-secret"}, fclock, logger)
		limiters = Limiters{
			Ingest: ratelimiter.NewRateLimiter(ratelimiter.NewInMemoryStore(10, time.Minute, time.Minute, fclock, logger)),
			Query:  ratelimiter.NewRateLimiter(ratelimiter.NewInMemoryStore(10, time.Minute, time.Minute, fclock, logger)),
		}
	})

	JustBeforeEach(func() {
		router = NewRouter(lagertest.NewTestLogger("server"), service, authenticator,
			healthendpoint.NewHTTPStatusCollector("perfmon", "test"), limiters)
	})

	Describe("POST /metrics", func() {
		It("accepts a healthy sample", func() {
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusOK).
				Body(`{"success":true,"alerts":0}`).
				End()

			samples, _ := store.RetrieveSamples(context.Background(), now.Add(-time.Hour), now, 0, db.DESC)
			Expect(samples).To(HaveLen(1))
		})

		It("raises alerts and notifies the urgent ones", func() {
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				JSON(payload(map[string]interface{}{
					"performance.responseTime": 1200.0,
					"performance.errorRate":    0.2,
				})).
				Expect(t).
				Status(http.StatusOK).
				Body(`{"success":true,"alerts":2}`).
				End()

			Eventually(channel.NotifyCallCount).Should(Equal(1))
			_, alerts := channel.NotifyArgsForCall(0)
			Expect(alerts).To(HaveLen(2))
		})

		It("reports every violated field", func() {
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				JSON(payload(map[string]interface{}{
					"performance.errorRate": 1.5,
					"resources.cpuUsage":    120.0,
				})).
				Expect(t).
				Status(http.StatusBadRequest).
				Assert(func(res *http.Response, _ *http.Request) error {
					var body models.ValidationErrorResponse
					if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
						return err
					}
					Expect(body.Code).To(Equal("Bad-Request"))
					Expect(body.Errors.Fields()).To(ConsistOf(
						ContainSubstring("errorRate"),
						ContainSubstring("cpuUsage"),
					))
					return nil
				}).
				End()
		})

		It("rejects unparsable bodies", func() {
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				Body(`{"performance":`).
				Expect(t).
				Status(http.StatusBadRequest).
				End()
		})

		It("requires authentication", func() {
			apiTest().
				Post("/metrics").
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusUnauthorized).
				Body(`{"code":"Unauthorized","message":"Authentication required"}`).
				End()
			Expect(store.RetrieveSamples(context.Background(), now.Add(-time.Hour), now, 0, db.DESC)).To(BeEmpty())
		})

		It("rejects a session without a permitted role", func() {
			token, err := authenticator.IssueToken("viewer-1", models.Role("viewer"), time.Hour)
			Expect(err).NotTo(HaveOccurred())

			apiTest().
				Post("/metrics").
				Header("Authorization", "Bearer "+token).
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusForbidden).
				Body(`{"code":"Forbidden","message":"Insufficient permissions"}`).
				End()
		})

		It("accepts an engineer session", func() {
			token, err := authenticator.IssueToken("engineer-1", models.RoleEngineer, time.Hour)
			Expect(err).NotTo(HaveOccurred())

			apiTest().
				Post("/metrics").
				Header("Authorization", "Bearer "+token).
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusOK).
				End()
		})

		It("limits a client to ten submissions per window", func() {
			for i := 0; i < 10; i++ {
				apiTest().
					Post("/metrics").
					Header(auth.APIKeyHeader, apiKey).
					Header("X-Forwarded-For", "203.0.113.7").
					JSON(payload(nil)).
					Expect(t).
					Status(http.StatusOK).
					End()
			}
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				Header("X-Forwarded-For", "203.0.113.7").
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusTooManyRequests).
				Body(`{"code":"Too-Many-Requests","message":"Too many requests"}`).
				End()

			By("keeping the query limiter separate")
			apiTest().
				Get("/metrics").
				Query("type", "metrics").
				Header(auth.APIKeyHeader, apiKey).
				Header("X-Forwarded-For", "203.0.113.7").
				Expect(t).
				Status(http.StatusOK).
				End()

			By("opening a new window once the old one elapses")
			fclock.Increment(time.Minute)
			apiTest().
				Post("/metrics").
				Header(auth.APIKeyHeader, apiKey).
				Header("X-Forwarded-For", "203.0.113.7").
				JSON(payload(nil)).
				Expect(t).
				Status(http.StatusOK).
				End()
		})

		Context("when the sample store fails", func() {
			BeforeEach(func() {
				sampleDB := &fakes.FakeSampleDB{}
				sampleDB.SaveSampleReturns(errors.New("connection refused"))
				sampleValidator, err := validator.NewSampleValidator()
				Expect(err).NotTo(HaveOccurred())
				logger := lagertest.NewTestLogger("server")
				service = monitor.NewService(
					monitor.Stores{Samples: sampleDB, Alerts: store, Recommendations: store},
					monitor.Components{
						Validator:   sampleValidator,
						Cache:       collection.NewMetricsCache(10, time.Minute),
						Evaluator:   alerting.NewEvaluator(fclock),
						Dispatcher:  notifier.NewDispatcher(store, nil, time.Second, logger),
						Recommender: recommender,
						Health:      healthendpoint.NoopChecker{},
					},
					monitor.Config{Thresholds: alerting.DefaultThresholds()}, fclock, logger)
			})

			It("returns 500", func() {
				apiTest().
					Post("/metrics").
					Header(auth.APIKeyHeader, apiKey).
					JSON(payload(nil)).
					Expect(t).
					Status(http.StatusInternalServerError).
					Body(`{"code":"Internal-Server-Error","message":"Error accessing storage"}`).
					End()
			})
		})
	})

	Describe("GET /metrics", func() {
		BeforeEach(func() {
			sample := testhelpers.SampleAt(now.Add(-time.Minute), nil)
			Expect(store.SaveSample(context.Background(), sample)).To(Succeed())
		})

		It("returns recent samples", func() {
			apiTest().
				Get("/metrics").
				Query("type", "metrics").
				Query("period", "1h").
				Header(auth.APIKeyHeader, apiKey).
				Expect(t).
				Status(http.StatusOK).
				Assert(func(res *http.Response, _ *http.Request) error {
					var body struct {
						Type   string           `json:"type"`
						Period string           `json:"period"`
						Data   []*models.Sample `json:"data"`
					}
					if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
						return err
					}
					Expect(body.Type).To(Equal("metrics"))
					Expect(body.Period).To(Equal("1h"))
					Expect(body.Data).To(HaveLen(1))
					return nil
				}).
				End()
		})

		It("returns a summary", func() {
			apiTest().
				Get("/metrics").
				Query("type", "summary").
				Header(auth.APIKeyHeader, apiKey).
				Expect(t).
				Status(http.StatusOK).
				Assert(func(res *http.Response, _ *http.Request) error {
					var body struct {
						Period string         `json:"period"`
						Data   models.Summary `json:"data"`
					}
					if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
						return err
					}
					Expect(body.Period).To(Equal("24h"))
					Expect(body.Data.SampleCount).To(Equal(1))
					return nil
				}).
				End()
		})

		It("returns the health report", func() {
			apiTest().
				Get("/metrics").
				Query("type", "health").
				Header(auth.APIKeyHeader, apiKey).
				Expect(t).
				Status(http.StatusOK).
				Assert(func(res *http.Response, _ *http.Request) error {
					var body struct {
						Data models.HealthCheckResult `json:"data"`
					}
					if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
						return err
					}
					Expect(body.Data.Status).To(Equal(models.HealthStatusHealthy))
					return nil
				}).
				End()
		})

		It("returns generated recommendations", func() {
			recommender.RecommendReturns([]*models.OptimizationRecommendation{
				{ID: "rec-1", Title: "Implement API response caching"},
			}, nil)

			apiTest().
				Get("/metrics").
				Query("type", "recommendations").
				Header(auth.APIKeyHeader, apiKey).
				Expect(t).
				Status(http.StatusOK).
				Assert(func(res *http.Response, _ *http.Request) error {
					var body struct {
						Data []*models.OptimizationRecommendation `json:"data"`
					}
					if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
						return err
					}
					Expect(body.Data).To(HaveLen(1))
					Expect(body.Data[0].ID).To(Equal("rec-1"))
					return nil
				}).
				End()
		})

		DescribeTable("rejects invalid parameters",
			func(params map[string]string, field string) {
				req := apiTest().Get("/metrics").Header(auth.APIKeyHeader, apiKey)
				for k, v := range params {
					req = req.Query(k, v)
				}
				req.Expect(t).
					Status(http.StatusBadRequest).
					Assert(func(res *http.Response, _ *http.Request) error {
						var body models.ValidationErrorResponse
						if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
							return err
						}
						Expect(body.Errors.Fields()).To(ContainElement(field))
						return nil
					}).
					End()
			},
			Entry("missing type", map[string]string{}, "type"),
			Entry("unknown type", map[string]string{"type": "traces"}, "type"),
			Entry("unknown period", map[string]string{"type": "metrics", "period": "2h"}, "period"),
			Entry("zero limit", map[string]string{"type": "metrics", "limit": "0"}, "limit"),
			Entry("limit above maximum", map[string]string{"type": "metrics", "limit": "1001"}, "limit"),
			Entry("non numeric limit", map[string]string{"type": "metrics", "limit": "ten"}, "limit"),
		)

		It("requires authentication", func() {
			apiTest().
				Get("/metrics").
				Query("type", "metrics").
				Expect(t).
				Status(http.StatusUnauthorized).
				End()
		})

		Context("when the query limiter rejects the client", func() {
			BeforeEach(func() {
				limiter := &fakes.FakeLimiter{}
				limiter.AllowReturns(false)
				limiters.Query = limiter
			})

			It("returns 429", func() {
				apiTest().
					Get("/metrics").
					Query("type", "metrics").
					Header(auth.APIKeyHeader, apiKey).
					Expect(t).
					Status(http.StatusTooManyRequests).
					End()
			})
		})
	})
})
