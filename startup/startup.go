package startup

import (
	"context"
	"flag"
	"os"
	"time"

	"code.cloudfoundry.org/app-perfmon/configutil"
	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

// ConfigPathEnv names the config file when -c is not given.
const ConfigPathEnv = "PERFMON_CONFIG"

const tracerShutdownTimeout = 5 * time.Second

type ConfigValidator interface {
	Validate() error
}

type ConfigWithLogging interface {
	ConfigValidator
	GetLogging() *helpers.LoggingConfig
}

type ConfigLoader[T ConfigWithLogging] func(path string, vcapConfigReader configutil.VCAPConfigurationReader) (T, error)

func ParseFlags(args []string) (string, error) {
	flags := flag.NewFlagSet("perfmon", flag.ContinueOnError)
	path := flags.String("c", os.Getenv(ConfigPathEnv), "config file")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

// bootLogger reports failures that happen before the configured logger exists.
func bootLogger(serviceName string) lager.Logger {
	logger := lager.NewLogger(serviceName)
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	return logger.Session("boot")
}

// LoadAndValidateConfig reads the VCAP environment when present, then loads
// and validates the config at path.
func LoadAndValidateConfig[T ConfigWithLogging](path string, loader ConfigLoader[T], logger lager.Logger) (T, error) {
	var zero T

	var vcapReader configutil.VCAPConfigurationReader
	if vcapConfiguration, err := configutil.NewVCAPConfigurationReader(); err != nil {
		logger.Error("vcap-configuration-unavailable", err)
	} else {
		vcapReader = vcapConfiguration
	}

	conf, err := loader(path, vcapReader)
	if err != nil {
		logger.Error("failed-to-read-config", err, lager.Data{"path": path})
		return zero, err
	}

	if err := conf.Validate(); err != nil {
		logger.Error("failed-to-validate-config", err, lager.Data{"path": path})
		return zero, err
	}
	return conf, nil
}

func StartServices(logger lager.Logger, members grouper.Members) error {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started", lager.Data{"members": names})
	if err := <-monitor.Wait(); err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}
	logger.Info("exited")
	return nil
}

func ExitOnError(err error, logger lager.Logger, message string, data ...lager.Data) {
	if err == nil {
		return
	}
	logger.Error(message, err, data...)
	os.Exit(1)
}

// Bootstrap parses flags, loads the config, installs the tracer provider and
// builds the service logger. The returned func flushes the tracer provider.
func Bootstrap[T ConfigWithLogging](serviceName string, configLoader ConfigLoader[T]) (T, lager.Logger, func()) {
	boot := bootLogger(serviceName)

	path, err := ParseFlags(os.Args[1:])
	ExitOnError(err, boot, "failed-to-parse-flags")

	conf, err := LoadAndValidateConfig(path, configLoader, boot)
	if err != nil {
		os.Exit(1)
	}

	shutdownTracer := helpers.SetupOpenTelemetry(serviceName)
	logger, err := helpers.NewLoggerFromConfig(conf.GetLogging(), serviceName, os.Stdout)
	ExitOnError(err, boot, "failed-to-create-logger")

	return conf, logger, func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("failed-to-shutdown-tracer", err)
		}
	}
}
