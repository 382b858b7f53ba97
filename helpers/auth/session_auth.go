package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/golang-jwt/jwt/v5"
)

const (
	APIKeyHeader = "X-API-Key"
	issuer       = "perfmon"
	selfCheckTTL = 30 * time.Second
)

var ErrNotConfigured = errors.New("no api key or session secret configured")

type Config struct {
	APIKey          string `yaml:"api_key" json:"api_key"`
	SessionSecret   string `yaml:"session_secret" json:"session_secret"`
	SessionCheckURL string `yaml:"session_check_url" json:"session_check_url"`
}

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the caller a request was authenticated as.
type Principal struct {
	Subject string
	Role    models.Role
	Method  string
}

type Authenticator struct {
	apiKey []byte
	secret []byte
	clock  clock.Clock
	logger lager.Logger
}

func NewAuthenticator(conf Config, clk clock.Clock, logger lager.Logger) *Authenticator {
	a := &Authenticator{clock: clk, logger: logger.Session("authenticator")}
	if conf.APIKey != "" {
		a.apiKey = []byte(conf.APIKey)
	}
	if conf.SessionSecret != "" {
		a.secret = []byte(conf.SessionSecret)
	}
	return a
}

// Authenticate accepts the shared api key or a bearer session token. Errors
// wrap models.ErrUnauthenticated or models.ErrForbidden.
func (a *Authenticator) Authenticate(r *http.Request) (*Principal, error) {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		if a.apiKey != nil && subtle.ConstantTimeCompare([]byte(key), a.apiKey) == 1 {
			return &Principal{Subject: "api-key", Role: models.RoleAdmin, Method: "api_key"}, nil
		}
		if r.Header.Get("Authorization") == "" {
			return nil, fmt.Errorf("%w: invalid api key", models.ErrUnauthenticated)
		}
	}

	token, err := bearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUnauthenticated, err)
	}
	claims, err := a.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUnauthenticated, err)
	}
	if !slices.Contains(models.AllowedRoles, claims.Role) {
		return nil, fmt.Errorf("%w: role %q", models.ErrForbidden, claims.Role)
	}
	return &Principal{Subject: claims.Subject, Role: claims.Role, Method: "session"}, nil
}

// IssueToken signs an HS256 session token for subject with the given role.
func (a *Authenticator) IssueToken(subject string, role models.Role, ttl time.Duration) (string, error) {
	if a.secret == nil {
		return "", ErrNotConfigured
	}
	now := a.clock.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Verify(token string) (*Claims, error) {
	if a.secret == nil {
		return nil, errors.New("sessions are not enabled")
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(a.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SelfCheck signs and verifies a short-lived token. With only an api key
// configured there is nothing to sign and the check passes.
func (a *Authenticator) SelfCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.secret == nil {
		if a.apiKey == nil {
			return ErrNotConfigured
		}
		return nil
	}
	token, err := a.IssueToken("health-check", models.RoleAdmin, selfCheckTTL)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}
	if _, err := a.Verify(token); err != nil {
		return fmt.Errorf("verifying session token: %w", err)
	}
	return nil
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}
