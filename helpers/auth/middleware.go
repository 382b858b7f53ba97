package auth

import (
	"context"
	"errors"
	"net/http"

	"code.cloudfoundry.org/app-perfmon/helpers/handlers"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
)

type principalKey struct{}

type Middleware struct {
	authenticator *Authenticator
	logger        lager.Logger
}

func NewMiddleware(authenticator *Authenticator, logger lager.Logger) *Middleware {
	return &Middleware{authenticator: authenticator, logger: logger.Session("auth-middleware")}
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.authenticator.Authenticate(r)
		if err != nil {
			m.logger.Info("request-rejected", lager.Data{"path": r.URL.Path, "reason": err.Error()})
			if errors.Is(err, models.ErrForbidden) {
				handlers.WriteErrorResponse(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*Principal)
	return principal, ok
}
