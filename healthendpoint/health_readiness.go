package healthendpoint

import (
	"context"
	"net/http"

	"code.cloudfoundry.org/app-perfmon/helpers/handlers"
	"code.cloudfoundry.org/app-perfmon/models"
)

type Pinger interface {
	Ping() error
}

func readiness(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := checker.Check(r.Context())
		status := http.StatusOK
		if result.Status == models.HealthStatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		handlers.WriteJSONResponse(w, status, result)
	}
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}

// NoopChecker reports a healthy system; used when readiness is disabled.
type NoopChecker struct{}

func (NoopChecker) Check(context.Context) models.HealthCheckResult {
	return models.HealthCheckResult{Status: models.HealthStatusHealthy, Message: StatusMessage(models.HealthStatusHealthy)}
}
