package monitor_test

import (
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	. "code.cloudfoundry.org/app-perfmon/monitor"
	"code.cloudfoundry.org/app-perfmon/testhelpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Summarize", func() {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	It("reports zeros for an empty window", func() {
		summary := Summarize(from, to, nil, nil)
		Expect(summary.SampleCount).To(Equal(0))
		Expect(summary.P95ResponseTime).To(BeZero())
		Expect(summary.AlertsBySeverity).To(Equal(map[models.Severity]int{"low": 0, "medium": 0, "high": 0, "critical": 0}))
		Expect(summary.AlertsByStatus).To(Equal(map[models.AlertStatus]int{"active": 0, "acknowledged": 0, "resolved": 0}))
	})

	It("takes nearest-rank percentiles and means", func() {
		var samples []*models.Sample
		for i := 1; i <= 20; i++ {
			samples = append(samples, testhelpers.NewSample(map[string]interface{}{
				"performance.responseTime":    float64(i * 10),
				"performance.errorRate":       0.01,
				"userExperience.pageLoadTime": float64(i * 100),
				"resources.cpuUsage":          float64(i),
				"resources.memoryUsage":       50.0,
			}))
		}
		alerts := []*models.Alert{
			{Severity: models.SeverityHigh, Status: models.AlertStatusActive},
			{Severity: models.SeverityHigh, Status: models.AlertStatusResolved},
			{Severity: models.SeverityCritical, Status: models.AlertStatusActive},
		}

		summary := Summarize(from, to, samples, alerts)
		Expect(summary.From).To(Equal(from))
		Expect(summary.To).To(Equal(to))
		Expect(summary.SampleCount).To(Equal(20))
		Expect(summary.P95ResponseTime).To(Equal(190.0))
		Expect(summary.P95PageLoadTime).To(Equal(1900.0))
		Expect(summary.AvgErrorRate).To(BeNumerically("~", 0.01, 1e-12))
		Expect(summary.AvgCPUUsage).To(Equal(10.5))
		Expect(summary.AvgMemoryUsage).To(Equal(50.0))
		Expect(summary.AlertsBySeverity).To(Equal(map[models.Severity]int{"low": 0, "medium": 0, "high": 2, "critical": 1}))
		Expect(summary.AlertsByStatus).To(Equal(map[models.AlertStatus]int{"active": 2, "acknowledged": 0, "resolved": 1}))
	})
})
