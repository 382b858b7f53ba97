package healthendpoint

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterCollectors registers cols and, when includeRuntime is set, the
// process and Go runtime collectors with process metrics under namespace.
// A collector that is already registered is skipped; any other failure is
// returned once every collector has been tried.
func RegisterCollectors(registerer prometheus.Registerer, namespace string, cols []prometheus.Collector, includeRuntime bool, logger lager.Logger) error {
	logger = logger.Session("register-collectors")

	if includeRuntime {
		cols = append([]prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
			collectors.NewGoCollector(),
		}, cols...)
	}

	var errs []error
	for i, c := range cols {
		err := registerer.Register(c)
		var alreadyRegistered prometheus.AlreadyRegisteredError
		switch {
		case err == nil:
		case errors.As(err, &alreadyRegistered):
			logger.Debug("collector-already-registered", lager.Data{"index": i})
		default:
			logger.Error("failed-to-register-collector", err, lager.Data{"index": i, "collector": fmt.Sprintf("%T", c)})
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
