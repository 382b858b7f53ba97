package operator_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/app-perfmon/fakes"
	"code.cloudfoundry.org/app-perfmon/operator"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("RetentionPruner", func() {
	var (
		store  *fakes.FakePruneDB
		fclock *fakeclock.FakeClock
		buffer *gbytes.Buffer
		pruner *operator.RetentionPruner
	)

	const (
		sampleCutoff = 30 * 24 * time.Hour
		alertCutoff  = 90 * 24 * time.Hour
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("prune-test")
		buffer = logger.Buffer()
		store = &fakes.FakePruneDB{}
		fclock = fakeclock.NewFakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		pruner = operator.NewRetentionPruner(store, sampleCutoff, alertCutoff, fclock, logger)
	})

	JustBeforeEach(func() {
		pruner.Operate(context.Background())
	})

	It("prunes samples and alerts by their own cutoffs", func() {
		Expect(store.PruneSamplesCallCount()).To(Equal(1))
		_, samplesBefore := store.PruneSamplesArgsForCall(0)
		Expect(samplesBefore).To(Equal(fclock.Now().Add(-sampleCutoff)))

		Expect(store.PruneAlertsCallCount()).To(Equal(1))
		_, alertsBefore := store.PruneAlertsArgsForCall(0)
		Expect(alertsBefore).To(Equal(fclock.Now().Add(-alertCutoff)))

		Expect(buffer).To(gbytes.Say("pruning-samples.completed"))
		Expect(buffer).To(gbytes.Say("pruning-alerts.completed"))
	})

	Context("when pruning samples fails", func() {
		BeforeEach(func() {
			store.PruneSamplesReturns(errors.New("samples table locked"))
		})

		It("logs the failure and still prunes alerts", func() {
			Expect(buffer).To(gbytes.Say("samples table locked"))
			Expect(store.PruneAlertsCallCount()).To(Equal(1))
		})
	})

	Context("when pruning alerts fails", func() {
		BeforeEach(func() {
			store.PruneAlertsReturns(errors.New("alerts table locked"))
		})

		It("logs the failure", func() {
			Expect(buffer).To(gbytes.Say("failed-prune-alerts"))
			Expect(buffer).To(gbytes.Say("alerts table locked"))
		})
	})
})
