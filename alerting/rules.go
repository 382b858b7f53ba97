package alerting

import "code.cloudfoundry.org/app-perfmon/models"

const escalationMultiplier = 2

type SeverityRule struct {
	Type      models.AlertType
	Metric    string
	Unit      string
	Label     string
	Value     func(*models.Sample) (float64, bool)
	Threshold func(Thresholds) float64
	Base      models.Severity
	// Escalated applies once the value reaches Multiplier times the threshold.
	// Empty means the rule never escalates.
	Escalated  models.Severity
	Multiplier float64
	// CriticalAbove, when set, makes any value above it critical.
	CriticalAbove *float64
}

func (r SeverityRule) Severity(value, threshold float64) (models.Severity, bool) {
	if value <= threshold {
		return "", false
	}
	if r.CriticalAbove != nil && value > *r.CriticalAbove {
		return models.SeverityCritical, true
	}
	if r.Escalated != "" && value >= threshold*r.Multiplier {
		return r.Escalated, true
	}
	return r.Base, true
}

func always(f func(*models.Sample) float64) func(*models.Sample) (float64, bool) {
	return func(s *models.Sample) (float64, bool) { return f(s), true }
}

func optional(f func(*models.Sample) *float64) func(*models.Sample) (float64, bool) {
	return func(s *models.Sample) (float64, bool) {
		v := f(s)
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

var utilisationCeiling = 90.0

// SeverityRules is evaluated in order; alerts come out in the same order.
var SeverityRules = []SeverityRule{
	{
		Type:       models.AlertTypeResponseTime,
		Metric:     "responseTime",
		Label:      "Response time",
		Unit:       "ms",
		Value:      always(func(s *models.Sample) float64 { return s.Performance.ResponseTime }),
		Threshold:  func(t Thresholds) float64 { return t.ResponseTime },
		Base:       models.SeverityMedium,
		Escalated:  models.SeverityHigh,
		Multiplier: escalationMultiplier,
	},
	{
		Type:       models.AlertTypeErrorRate,
		Metric:     "errorRate",
		Label:      "Error rate",
		Unit:       "%",
		Value:      always(func(s *models.Sample) float64 { return s.Performance.ErrorRate }),
		Threshold:  func(t Thresholds) float64 { return t.ErrorRate },
		Base:       models.SeverityHigh,
		Escalated:  models.SeverityCritical,
		Multiplier: escalationMultiplier,
	},
	{
		Type:          models.AlertTypeCPUUsage,
		Metric:        "cpuUsage",
		Label:         "CPU usage",
		Unit:          "%",
		Value:         always(func(s *models.Sample) float64 { return s.Resources.CPUUsage }),
		Threshold:     func(t Thresholds) float64 { return t.CPUUsage },
		Base:          models.SeverityHigh,
		Escalated:     models.SeverityCritical,
		Multiplier:    escalationMultiplier,
		CriticalAbove: &utilisationCeiling,
	},
	{
		Type:          models.AlertTypeMemoryUsage,
		Metric:        "memoryUsage",
		Label:         "Memory usage",
		Unit:          "%",
		Value:         always(func(s *models.Sample) float64 { return s.Resources.MemoryUsage }),
		Threshold:     func(t Thresholds) float64 { return t.MemoryUsage },
		Base:          models.SeverityHigh,
		Escalated:     models.SeverityCritical,
		Multiplier:    escalationMultiplier,
		CriticalAbove: &utilisationCeiling,
	},
	{
		Type:       models.AlertTypePageLoadTime,
		Metric:     "pageLoadTime",
		Label:      "Page load time",
		Unit:       "ms",
		Value:      always(func(s *models.Sample) float64 { return s.UserExperience.PageLoadTime }),
		Threshold:  func(t Thresholds) float64 { return t.PageLoadTime },
		Base:       models.SeverityMedium,
		Escalated:  models.SeverityHigh,
		Multiplier: escalationMultiplier,
	},
	{
		Type:       models.AlertTypeDatabaseQueryTime,
		Metric:     "databaseQueryTime",
		Label:      "Database query time",
		Unit:       "ms",
		Value:      optional(func(s *models.Sample) *float64 { return s.Resources.DatabaseQueryTime }),
		Threshold:  func(t Thresholds) float64 { return t.DatabaseQueryTime },
		Base:       models.SeverityMedium,
		Escalated:  models.SeverityHigh,
		Multiplier: escalationMultiplier,
	},
	{
		Type:      models.AlertTypeBounceRate,
		Metric:    "bounceRate",
		Label:     "Bounce rate",
		Unit:      "%",
		Value:     optional(func(s *models.Sample) *float64 { return s.UserExperience.BounceRate }),
		Threshold: func(t Thresholds) float64 { return t.BounceRate },
		Base:      models.SeverityMedium,
	},
}
