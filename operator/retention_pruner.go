package operator

import (
	"context"
	"time"

	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// RetentionPruner deletes samples and alerts that have aged past their cutoff.
type RetentionPruner struct {
	store        db.PruneDB
	sampleCutoff time.Duration
	alertCutoff  time.Duration
	clock        clock.Clock
	logger       lager.Logger
}

var _ Operator = &RetentionPruner{}

func NewRetentionPruner(store db.PruneDB, sampleCutoff, alertCutoff time.Duration, clock clock.Clock, logger lager.Logger) *RetentionPruner {
	return &RetentionPruner{
		store:        store,
		sampleCutoff: sampleCutoff,
		alertCutoff:  alertCutoff,
		clock:        clock,
		logger:       logger.Session("retention_pruner"),
	}
}

func (rp *RetentionPruner) Operate(ctx context.Context) {
	now := rp.clock.Now()

	sampleCutoff := now.Add(-rp.sampleCutoff)
	logger := rp.logger.Session("pruning-samples", lager.Data{"cutoff-time": sampleCutoff})
	logger.Info("starting")
	if err := rp.store.PruneSamples(ctx, sampleCutoff); err != nil {
		logger.Error("failed-prune-samples", err)
	} else {
		logger.Info("completed")
	}

	alertCutoff := now.Add(-rp.alertCutoff)
	logger = rp.logger.Session("pruning-alerts", lager.Data{"cutoff-time": alertCutoff})
	logger.Info("starting")
	if err := rp.store.PruneAlerts(ctx, alertCutoff); err != nil {
		logger.Error("failed-prune-alerts", err)
		return
	}
	logger.Info("completed")
}
