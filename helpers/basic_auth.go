package helpers

import (
	"net/http"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

const basicAuthRealm = `Basic realm="perfmon health", charset="UTF-8"`

// bcrypt ignores input past this length.
const bcryptMaxInput = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
	logger       lager.Logger
}

// CreateBasicAuthMiddleware hashes plain text credentials once at startup so
// every request is compared with bcrypt, whichever form was configured.
func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	logger = logger.Session("basic-auth")

	usernameHash, err := credentialHash(logger, "username", ba.Username, ba.UsernameHash)
	if err != nil {
		return nil, err
	}
	passwordHash, err := credentialHash(logger, "password", ba.Password, ba.PasswordHash)
	if err != nil {
		return nil, err
	}

	return &BasicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
		logger:       logger,
	}, nil
}

func credentialHash(logger lager.Logger, field, plain, hash string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if len(plain) > bcryptMaxInput {
		logger.Info("credential-truncated", lager.Data{"field": field, "length": len(plain)})
		plain = plain[:bcryptMaxInput]
	}
	// The value is already in the config as plain text; extra cost buys nothing.
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-to-hash-credential", err, lager.Data{"field": field})
		return nil, err
	}
	return hashed, nil
}

// Middleware rejects requests whose credentials do not match with 401 and a
// basic auth challenge.
func (bam *BasicAuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !bam.matches(username, password) {
			bam.logger.Debug("unauthorized", lager.Data{"path": r.URL.Path, "credentials-present": ok})
			w.Header().Set("WWW-Authenticate", basicAuthRealm)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// matches compares both values even when the username is wrong so response
// time does not reveal which one failed.
func (bam *BasicAuthenticationMiddleware) matches(username, password string) bool {
	usernameErr := bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username))
	passwordErr := bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password))
	return usernameErr == nil && passwordErr == nil
}
