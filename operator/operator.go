package operator

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// Operator is periodic housekeeping. Operate must return once ctx is done.
type Operator interface {
	Operate(ctx context.Context)
}

// Runner is an ifrit.Runner that operates once on start and then on every
// tick. A tick that arrives while the previous run is still active is
// skipped. On signal the shared context is cancelled and the active run is
// awaited.
type Runner struct {
	operator Operator
	interval time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewRunner(operator Operator, interval time.Duration, clock clock.Clock, logger lager.Logger) *Runner {
	return &Runner{
		operator: operator,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	idle := make(chan struct{}, 1)
	idle <- struct{}{}
	trigger := func() {
		select {
		case <-idle:
		default:
			r.logger.Info("skipped-tick-previous-run-active")
			return
		}
		go func() {
			defer func() { idle <- struct{}{} }()
			r.operator.Operate(ctx)
		}()
	}

	close(ready)
	r.logger.Info("started", lager.Data{"interval": r.interval.String()})
	trigger()

	for {
		select {
		case sig := <-signals:
			r.logger.Info("stopping", lager.Data{"signal": sig.String()})
			cancel()
			<-idle
			r.logger.Info("stopped")
			return nil
		case <-ticker.C():
			trigger()
		}
	}
}
