package helpers

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/app-perfmon/models"
	"golang.org/x/crypto/bcrypt"
)

type HealthConfig struct {
	ServerConfig          ServerConfig     `yaml:"server_config" json:"server_config"`
	BasicAuth             models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
	ReadinessCheckEnabled bool             `yaml:"readiness_enabled" json:"readiness_enabled"`
}

var ErrConfiguration = errors.New("configuration error")

// Validate requires basic auth to be either off or complete, with each
// credential given once as plain text or as a bcrypt hash.
func (c *HealthConfig) Validate() error {
	ba := c.BasicAuth
	if !ba.Enabled() {
		return nil
	}

	credentials := []struct {
		name        string
		plain, hash string
	}{
		{"username", ba.Username, ba.UsernameHash},
		{"password", ba.Password, ba.PasswordHash},
	}
	for _, cred := range credentials {
		switch {
		case cred.plain == "" && cred.hash == "":
			return fmt.Errorf("%w: health.basic_auth needs both a username and a password, %s is missing", ErrConfiguration, cred.name)
		case cred.plain != "" && cred.hash != "":
			return fmt.Errorf("%w: health.basic_auth sets both %s and %s_hash", ErrConfiguration, cred.name, cred.name)
		case cred.hash != "":
			if _, err := bcrypt.Cost([]byte(cred.hash)); err != nil {
				return fmt.Errorf("%w: health.basic_auth.%s_hash is not a bcrypt hash: %w", ErrConfiguration, cred.name, err)
			}
		}
	}
	return nil
}
