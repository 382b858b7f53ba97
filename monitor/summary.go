package monitor

import (
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/stats"
)

// Summarize reduces the samples and alerts of a window to headline numbers.
func Summarize(from, to time.Time, samples []*models.Sample, alerts []*models.Alert) models.Summary {
	n := len(samples)
	responseTimes := make([]float64, 0, n)
	pageLoadTimes := make([]float64, 0, n)
	errorRates := make([]float64, 0, n)
	cpu := make([]float64, 0, n)
	memory := make([]float64, 0, n)
	for _, s := range samples {
		responseTimes = append(responseTimes, s.Performance.ResponseTime)
		pageLoadTimes = append(pageLoadTimes, s.UserExperience.PageLoadTime)
		errorRates = append(errorRates, s.Performance.ErrorRate)
		cpu = append(cpu, s.Resources.CPUUsage)
		memory = append(memory, s.Resources.MemoryUsage)
	}

	bySeverity := make(map[models.Severity]int, len(models.Severities))
	for _, s := range models.Severities {
		bySeverity[s] = 0
	}
	byStatus := make(map[models.AlertStatus]int, len(models.AlertStatuses))
	for _, s := range models.AlertStatuses {
		byStatus[s] = 0
	}
	for _, a := range alerts {
		bySeverity[a.Severity]++
		byStatus[a.Status]++
	}

	return models.Summary{
		From:             from,
		To:               to,
		SampleCount:      n,
		P95ResponseTime:  stats.Percentile(responseTimes, 95),
		AvgErrorRate:     stats.Mean(errorRates),
		P95PageLoadTime:  stats.Percentile(pageLoadTimes, 95),
		AvgCPUUsage:      stats.Mean(cpu),
		AvgMemoryUsage:   stats.Mean(memory),
		AlertsBySeverity: bySeverity,
		AlertsByStatus:   byStatus,
	}
}
