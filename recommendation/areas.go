package recommendation

import (
	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/stats"
)

type Area string

const (
	AreaResponseTime Area = "responseTime"
	AreaPageLoadTime Area = "pageLoadTime"
	AreaCPUUsage     Area = "cpuUsage"
	AreaMemoryUsage  Area = "memoryUsage"
	AreaErrorRate    Area = "errorRate"
)

// An area is a problem once its mean passes this share of the alert threshold.
const problemRatio = 0.8

const MaxProblemAreas = 5

type Means struct {
	ResponseTime float64
	PageLoadTime float64
	CPUUsage     float64
	MemoryUsage  float64
	ErrorRate    float64
}

func ComputeMeans(samples []*models.Sample) Means {
	n := len(samples)
	responseTimes := make([]float64, 0, n)
	pageLoadTimes := make([]float64, 0, n)
	cpu := make([]float64, 0, n)
	memory := make([]float64, 0, n)
	errorRates := make([]float64, 0, n)
	for _, s := range samples {
		if s == nil {
			continue
		}
		responseTimes = append(responseTimes, s.Performance.ResponseTime)
		pageLoadTimes = append(pageLoadTimes, s.UserExperience.PageLoadTime)
		cpu = append(cpu, s.Resources.CPUUsage)
		memory = append(memory, s.Resources.MemoryUsage)
		errorRates = append(errorRates, s.Performance.ErrorRate)
	}
	return Means{
		ResponseTime: stats.Mean(responseTimes),
		PageLoadTime: stats.Mean(pageLoadTimes),
		CPUUsage:     stats.Mean(cpu),
		MemoryUsage:  stats.Mean(memory),
		ErrorRate:    stats.Mean(errorRates),
	}
}

func (m Means) Of(area Area) float64 {
	switch area {
	case AreaResponseTime:
		return m.ResponseTime
	case AreaPageLoadTime:
		return m.PageLoadTime
	case AreaCPUUsage:
		return m.CPUUsage
	case AreaMemoryUsage:
		return m.MemoryUsage
	case AreaErrorRate:
		return m.ErrorRate
	}
	return 0
}

// ProblemAreas lists, in a fixed order, the areas whose mean exceeds 80% of
// the corresponding alert threshold.
func ProblemAreas(m Means, t alerting.Thresholds) []Area {
	candidates := []struct {
		area      Area
		threshold float64
	}{
		{AreaResponseTime, t.ResponseTime},
		{AreaPageLoadTime, t.PageLoadTime},
		{AreaCPUUsage, t.CPUUsage},
		{AreaMemoryUsage, t.MemoryUsage},
		{AreaErrorRate, t.ErrorRate},
	}
	var areas []Area
	for _, c := range candidates {
		if m.Of(c.area) > c.threshold*problemRatio {
			areas = append(areas, c.area)
		}
	}
	if len(areas) > MaxProblemAreas {
		areas = areas[:MaxProblemAreas]
	}
	return areas
}
