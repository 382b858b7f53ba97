package models

import (
	"crypto/tls"

	"code.cloudfoundry.org/tlsconfig"
)

type TLSCerts struct {
	KeyFile    string `yaml:"key_file" json:"keyFile"`
	CertFile   string `yaml:"cert_file" json:"certFile"`
	CACertFile string `yaml:"ca_file" json:"caCertFile"`
}

func (t *TLSCerts) CreateServerConfig() (*tls.Config, error) {
	if t != nil && t.CertFile != "" && t.KeyFile != "" {
		build := tlsconfig.Build(tlsconfig.WithIdentityFromFile(t.CertFile, t.KeyFile))
		if t.CACertFile != "" {
			return build.Server(tlsconfig.WithClientAuthenticationFromFile(t.CACertFile))
		}
		return build.Server()
	}
	return nil, nil
}

type BasicAuth struct {
	Username     string `yaml:"username" json:"username"`
	UsernameHash string `yaml:"username_hash" json:"username_hash"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"password_hash"`
}

// Enabled reports whether any credential is configured.
func (b BasicAuth) Enabled() bool {
	return b.Username != "" || b.UsernameHash != "" || b.Password != "" || b.PasswordHash != ""
}

// Role is the session role claim accepted by the metrics endpoints.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEngineer Role = "engineer"
	RoleManager  Role = "manager"
)

var AllowedRoles = []Role{RoleAdmin, RoleEngineer, RoleManager}
