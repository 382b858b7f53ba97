package startup

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// ServerBuilder names a runner and defers its construction until startup.
type ServerBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
	Disabled   bool
}

func Server(name string, createFunc func() (ifrit.Runner, error)) ServerBuilder {
	return ServerBuilder{Name: name, CreateFunc: createFunc}
}

// OptionalServer is skipped by CreateServers unless enabled.
func OptionalServer(name string, enabled bool, createFunc func() (ifrit.Runner, error)) ServerBuilder {
	return ServerBuilder{Name: name, CreateFunc: createFunc, Disabled: !enabled}
}

// CreateServers builds every enabled runner in order and stops at the first
// construction error.
func CreateServers(builders []ServerBuilder, logger lager.Logger) (grouper.Members, error) {
	members := make(grouper.Members, 0, len(builders))
	for _, builder := range builders {
		if builder.Disabled {
			logger.Info("server-disabled", lager.Data{"name": builder.Name})
			continue
		}
		runner, err := builder.CreateFunc()
		if err != nil {
			logger.Error("failed-to-create-server", err, lager.Data{"name": builder.Name})
			return nil, err
		}
		members = append(members, grouper.Member{Name: builder.Name, Runner: runner})
	}
	return members, nil
}

// StartService builds the servers and blocks until they exit, exiting the
// process on failure.
func StartService(logger lager.Logger, servers ...ServerBuilder) {
	members, err := CreateServers(servers, logger)
	ExitOnError(err, logger, "service-creation-failed")
	ExitOnError(StartServices(logger, members), logger, "service-exited-with-failure")
}
