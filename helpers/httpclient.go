package helpers

import (
	"crypto/tls"
	"net/http"
	"time"

	"code.cloudfoundry.org/cfhttp/v2"
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultClientTimeout       = 5 * time.Second
	defaultDialTimeout         = 10 * time.Second
	defaultIdleConnTimeout     = 5 * time.Second
	defaultMaxIdleConnsPerHost = 200
)

type ClientConfig struct {
	Timeout             time.Duration `yaml:"timeout" json:"timeout"`
	MaxIdleConnsPerHost int           `yaml:"max_idle_conns_per_host" json:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `yaml:"idle_conn_timeout" json:"idle_conn_timeout"`
	SkipSSLValidation   bool          `yaml:"skip_ssl_validation" json:"skip_ssl_validation"`
	MaxRetries          int           `yaml:"max_retries" json:"max_retries"`
	MaxRetryWait        time.Duration `yaml:"max_retry_wait" json:"max_retry_wait"`
}

// CreateHTTPClient builds a pooled client wrapped in retryablehttp. Retries
// stay off unless MaxRetries is set.
func CreateHTTPClient(conf ClientConfig, logger lager.Logger) *http.Client {
	idleConnTimeout := conf.IdleConnTimeout
	if idleConnTimeout == 0 {
		idleConnTimeout = defaultIdleConnTimeout
	}
	maxIdleConnsPerHost := conf.MaxIdleConnsPerHost
	if maxIdleConnsPerHost == 0 {
		maxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}
	//nolint:gosec // #nosec G402 -- opt-in for test environments
	client := cfhttp.NewClient(
		cfhttp.WithTLSConfig(&tls.Config{InsecureSkipVerify: conf.SkipSSLValidation}),
		cfhttp.WithDialTimeout(defaultDialTimeout),
		cfhttp.WithIdleConnTimeout(idleConnTimeout),
		cfhttp.WithMaxIdleConnsPerHost(maxIdleConnsPerHost),
	)
	retryClient := RetryClient(conf, client, logger)
	retryClient.Timeout = conf.Timeout
	return retryClient
}

func RetryClient(conf ClientConfig, client *http.Client, logger lager.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	if conf.MaxRetries != 0 {
		retryClient.RetryMax = conf.MaxRetries
	}
	if conf.MaxRetryWait != 0 {
		retryClient.RetryWaitMax = conf.MaxRetryWait
	}
	retryClient.Logger = LeveledLoggerAdapter{logger.Session("retryablehttp")}
	retryClient.HTTPClient = client
	retryClient.ErrorHandler = func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		return resp, err
	}
	return retryClient.StandardClient()
}
