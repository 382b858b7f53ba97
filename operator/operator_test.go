package operator_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/app-perfmon/fakes"
	"code.cloudfoundry.org/app-perfmon/operator"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("Runner", func() {
	var (
		process      ifrit.Process
		fclock       *fakeclock.FakeClock
		logger       *lagertest.TestLogger
		fakeOperator *fakes.FakeOperator
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("pruner")
		fclock = fakeclock.NewFakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		fakeOperator = &fakes.FakeOperator{}
	})

	JustBeforeEach(func() {
		process = ginkgomon_v2.Invoke(operator.NewRunner(fakeOperator, interval, fclock, logger))
		Eventually(logger.Buffer()).Should(gbytes.Say("pruner.started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Interrupt(process)
	})

	It("operates on start and on every tick", func() {
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

		for calls := 2; calls <= 3; calls++ {
			fclock.WaitForWatcherAndIncrement(interval)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(calls))
		}
	})

	Context("while a run is still active", func() {
		var release chan struct{}

		BeforeEach(func() {
			release = make(chan struct{})
			fakeOperator.OperateStub = func(ctx context.Context) {
				select {
				case <-release:
				case <-ctx.Done():
				}
			}
		})

		It("skips the tick", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

			fclock.WaitForWatcherAndIncrement(interval)
			Eventually(logger.Buffer()).Should(gbytes.Say("skipped-tick-previous-run-active"))
			Consistently(fakeOperator.OperateCallCount).Should(Equal(1))

			close(release)
			Eventually(func() int {
				fclock.Increment(interval)
				return fakeOperator.OperateCallCount()
			}).Should(BeNumerically(">=", 2))
		})

		It("cancels the active run on stop and waits for it", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
			ctx := fakeOperator.OperateArgsForCall(0)

			ginkgomon_v2.Interrupt(process)
			Expect(ctx.Err()).To(MatchError(context.Canceled))
			Expect(logger.LogMessages()).To(ContainElements("pruner.stopping", "pruner.stopped"))
		})
	})

	It("stops operating once interrupted", func() {
		Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

		ginkgomon_v2.Interrupt(process)
		fclock.Increment(interval)
		Consistently(fakeOperator.OperateCallCount).Should(Equal(1))
	})
})
