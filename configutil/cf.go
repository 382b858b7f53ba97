package configutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"code.cloudfoundry.org/app-perfmon/models"
	"github.com/cloudfoundry-community/go-cfenv"
	"gopkg.in/yaml.v3"
)

var ErrReadEnvironment = errors.New("failed to read environment variables")
var ErrDbServiceNotFound = errors.New("failed to get service by name")
var ErrMissingCredential = errors.New("failed to get required credential from service")

type VCAPConfigurationReader interface {
	IsRunningOnCF() bool
	GetPort() int
	GetServiceCredentialContent(serviceTag string, credentialKey string) ([]byte, error)
	MaterializeDBFromService(dbName string) (string, error)
	MaterializeTLSConfigFromService(serviceName string) (models.TLSCerts, error)
}

type VCAPConfiguration struct {
	appEnv *cfenv.App
}

// NewVCAPConfigurationReader reads VCAP_APPLICATION and VCAP_SERVICES. Off
// Cloud Foundry it returns a reader whose IsRunningOnCF is false.
func NewVCAPConfigurationReader() (*VCAPConfiguration, error) {
	vcapConfiguration := &VCAPConfiguration{}
	if !cfenv.IsRunningOnCF() {
		return vcapConfiguration, nil
	}

	appEnv, err := cfenv.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadEnvironment, err)
	}

	vcapConfiguration.appEnv = appEnv
	return vcapConfiguration, nil
}

func (vc *VCAPConfiguration) IsRunningOnCF() bool {
	return vc != nil && vc.appEnv != nil
}

func (vc *VCAPConfiguration) GetPort() int {
	if !vc.IsRunningOnCF() {
		return 0
	}
	return vc.appEnv.Port
}

// GetServiceCredentialContent returns the JSON encoding of one credential of
// the service carrying serviceTag.
func (vc *VCAPConfiguration) GetServiceCredentialContent(serviceTag string, credentialKey string) ([]byte, error) {
	service, err := vc.serviceWithTag(serviceTag)
	if err != nil {
		return nil, err
	}

	content, ok := service.Credentials[credentialKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredential, credentialKey)
	}
	return json.Marshal(content)
}

// LoadConfig overlays the credential named credentialName of the service
// tagged credentialName onto conf.
func LoadConfig[T any](conf *T, vcapReader VCAPConfigurationReader, credentialName string) error {
	content, err := vcapReader.GetServiceCredentialContent(credentialName, credentialName)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(content, conf); err != nil {
		return fmt.Errorf("failed to unmarshal %s credentials: %w", credentialName, err)
	}
	return nil
}

func (vc *VCAPConfiguration) serviceWithTag(tag string) (cfenv.Service, error) {
	if !vc.IsRunningOnCF() {
		return cfenv.Service{}, fmt.Errorf("%w: not running on cloud foundry", ErrDbServiceNotFound)
	}
	services, err := vc.appEnv.Services.WithTag(tag)
	if err != nil {
		return cfenv.Service{}, fmt.Errorf("%w: %w", ErrDbServiceNotFound, err)
	}
	return services[0], nil
}

// tlsCredentials are the certificate credentials a service binding may carry.
var tlsCredentials = []string{"client_cert", "client_key", "server_ca"}

// connectionParameters maps each TLS credential to the query parameter the
// database driver reads it from.
var connectionParameters = map[string]map[string]string{
	"postgres": {"client_cert": "sslcert", "client_key": "sslkey", "server_ca": "sslrootcert"},
	"mysql":    {"client_cert": "ssl-cert", "client_key": "ssl-key", "server_ca": "ssl-ca"},
}

// MaterializeTLSConfigFromService writes the binding's client certificate,
// key and CA to disk. All three are required.
func (vc *VCAPConfiguration) MaterializeTLSConfigFromService(serviceName string) (models.TLSCerts, error) {
	service, err := vc.serviceWithTag(serviceName)
	if err != nil {
		return models.TLSCerts{}, err
	}

	suffixes := connectionParameters["postgres"]
	paths := make(map[string]string, len(tlsCredentials))
	for _, credential := range tlsCredentials {
		content, ok := service.CredentialString(credential)
		if !ok {
			return models.TLSCerts{}, fmt.Errorf("%w: %s", ErrMissingCredential, credential)
		}
		path, err := MaterializeContentInFile(serviceName, credential+"."+suffixes[credential], content)
		if err != nil {
			return models.TLSCerts{}, err
		}
		paths[credential] = path
	}

	return models.TLSCerts{
		CertFile:   paths["client_cert"],
		KeyFile:    paths["client_key"],
		CACertFile: paths["server_ca"],
	}, nil
}

// MaterializeDBFromService returns the binding's uri with every TLS
// credential present in the binding written to disk and referenced through
// the driver's query parameters.
func (vc *VCAPConfiguration) MaterializeDBFromService(dbName string) (string, error) {
	dbService, err := vc.serviceWithTag(dbName)
	if err != nil {
		return "", err
	}

	dbURI, ok := dbService.CredentialString("uri")
	if !ok {
		return "", fmt.Errorf("%w: uri", ErrMissingCredential)
	}

	dbURL, err := url.Parse(dbURI)
	if err != nil {
		return "", err
	}

	parameters, err := url.ParseQuery(dbURL.RawQuery)
	if err != nil {
		return "", err
	}

	names := connectionParameters["postgres"]
	if dbURL.Scheme == "mysql" {
		names = connectionParameters["mysql"]
	}
	for _, credential := range tlsCredentials {
		content, ok := dbService.CredentialString(credential)
		if !ok {
			continue
		}
		parameter := names[credential]
		path, err := MaterializeContentInFile(dbName, credential+"."+parameter, content)
		if err != nil {
			return "", err
		}
		parameters.Set(parameter, path)
	}

	dbURL.RawQuery = parameters.Encode()
	return dbURL.String(), nil
}
