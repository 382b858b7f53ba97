package ratelimiter

import (
	"net"
	"net/http"
	"strings"

	"code.cloudfoundry.org/app-perfmon/helpers/handlers"
	"code.cloudfoundry.org/lager/v3"
)

type RateLimiterMiddleware struct {
	logger      lager.Logger
	RateLimiter Limiter
}

func NewRateLimiterMiddleware(rateLimiter Limiter, logger lager.Logger) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		logger:      logger,
		RateLimiter: rateLimiter,
	}
}

func (mw *RateLimiterMiddleware) CheckRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteIP := ClientIP(r)
		if !mw.RateLimiter.Allow(remoteIP) {
			mw.logger.Info("error-exceed-rate-limit", lager.Data{"remote-ip": remoteIP, "url": r.URL.String()})
			handlers.WriteErrorResponse(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP is the first X-Forwarded-For hop, falling back to the peer address.
func ClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
