package helpers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

const DefaultBindHost = "0.0.0.0"

type ServerConfig struct {
	// Host defaults to every interface.
	Host string          `yaml:"host" json:"host,omitempty"`
	Port int             `yaml:"port" json:"port"`
	TLS  models.TLSCerts `yaml:"tls" json:"tls"`
}

func (c ServerConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = DefaultBindHost
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

func (c ServerConfig) TLSEnabled() bool {
	return c.TLS.KeyFile != "" && c.TLS.CertFile != ""
}

// NewHTTPServer serves handler on conf.Addr(), over TLS when a key pair is
// configured and with client verification when a CA is also given.
func NewHTTPServer(logger lager.Logger, conf ServerConfig, handler http.Handler) (ifrit.Runner, error) {
	addr := conf.Addr()
	logger.Info("new-http-server", lager.Data{"addr": addr, "tls": conf.TLSEnabled(), "mtls": conf.TLSEnabled() && conf.TLS.CACertFile != ""})

	if !conf.TLSEnabled() {
		return http_server.New(addr, handler), nil
	}

	tlsConfig, err := conf.TLS.CreateServerConfig()
	if err != nil {
		logger.Error("failed-to-create-tls-config", err, lager.Data{"tls": conf.TLS})
		return nil, fmt.Errorf("server tls config error: %w", err)
	}
	return http_server.NewTLSServer(addr, handler, tlsConfig), nil
}
