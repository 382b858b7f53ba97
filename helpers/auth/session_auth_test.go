package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/app-perfmon/helpers/auth"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authenticator", func() {
	var (
		fclock        *fakeclock.FakeClock
		conf          auth.Config
		authenticator *auth.Authenticator
		req           *http.Request
	)

	BeforeEach(func() {
		fclock = fakeclock.NewFakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		conf = auth.Config{APIKey: "the-api-key", SessionSecret: "the-session-secret"}
		req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	})

	JustBeforeEach(func() {
		authenticator = auth.NewAuthenticator(conf, fclock, lagertest.NewTestLogger("auth"))
	})

	bearer := func(role models.Role, ttl time.Duration) string {
		token, err := authenticator.IssueToken("user-1", role, ttl)
		Expect(err).NotTo(HaveOccurred())
		return "Bearer " + token
	}

	It("accepts the configured api key", func() {
		req.Header.Set(auth.APIKeyHeader, "the-api-key")
		principal, err := authenticator.Authenticate(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(principal.Method).To(Equal("api_key"))
	})

	It("rejects a wrong api key", func() {
		req.Header.Set(auth.APIKeyHeader, "not-the-key")
		_, err := authenticator.Authenticate(req)
		Expect(err).To(MatchError(models.ErrUnauthenticated))
	})

	It("rejects a request without credentials", func() {
		_, err := authenticator.Authenticate(req)
		Expect(err).To(MatchError(models.ErrUnauthenticated))
	})

	DescribeTable("session roles",
		func(role models.Role, allowed bool) {
			req.Header.Set("Authorization", bearer(role, time.Hour))
			principal, err := authenticator.Authenticate(req)
			if allowed {
				Expect(err).NotTo(HaveOccurred())
				Expect(principal).To(Equal(&auth.Principal{Subject: "user-1", Role: role, Method: "session"}))
			} else {
				Expect(err).To(MatchError(models.ErrForbidden))
			}
		},
		Entry("admin", models.RoleAdmin, true),
		Entry("engineer", models.RoleEngineer, true),
		Entry("manager", models.RoleManager, true),
		Entry("viewer", models.Role("viewer"), false),
	)

	It("rejects an expired session", func() {
		req.Header.Set("Authorization", bearer(models.RoleAdmin, time.Minute))
		fclock.Increment(2 * time.Minute)
		_, err := authenticator.Authenticate(req)
		Expect(err).To(MatchError(models.ErrUnauthenticated))
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})

	It("rejects a token signed with another secret", func() {
		other := auth.NewAuthenticator(auth.Config{SessionSecret: "another-secret"}, fclock, lagertest.NewTestLogger("other"))
		token, err := other.IssueToken("user-1", models.RoleAdmin, time.Hour)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+token)
		_, err = authenticator.Authenticate(req)
		Expect(err).To(MatchError(models.ErrUnauthenticated))
	})

	It("falls back to the session when the api key is wrong", func() {
		req.Header.Set(auth.APIKeyHeader, "not-the-key")
		req.Header.Set("Authorization", bearer(models.RoleEngineer, time.Hour))
		_, err := authenticator.Authenticate(req)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a malformed authorization header", func() {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		_, err := authenticator.Authenticate(req)
		Expect(err).To(MatchError(ContainSubstring("invalid authorization header format")))
	})

	Describe("SelfCheck", func() {
		It("signs and verifies a token", func() {
			Expect(authenticator.SelfCheck(context.Background())).To(Succeed())
		})

		Context("with only an api key", func() {
			BeforeEach(func() { conf.SessionSecret = "" })

			It("passes", func() {
				Expect(authenticator.SelfCheck(context.Background())).To(Succeed())
			})
		})

		Context("with nothing configured", func() {
			BeforeEach(func() { conf = auth.Config{} })

			It("fails", func() {
				Expect(authenticator.SelfCheck(context.Background())).To(MatchError(auth.ErrNotConfigured))
			})
		})
	})
})
