package models

import "time"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists the tiers from least to most severe.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s Severity) Rank() int {
	for i, sev := range Severities {
		if sev == s {
			return i
		}
	}
	return -1
}

func (s Severity) IsUrgent() bool {
	return s == SeverityHigh || s == SeverityCritical
}

type AlertType string

const (
	AlertTypeResponseTime      AlertType = "response_time"
	AlertTypeErrorRate         AlertType = "error_rate"
	AlertTypeCPUUsage          AlertType = "cpu_usage"
	AlertTypeMemoryUsage       AlertType = "memory_usage"
	AlertTypePageLoadTime      AlertType = "page_load_time"
	AlertTypeDatabaseQueryTime AlertType = "database_query_time"
	AlertTypeBounceRate        AlertType = "bounce_rate"
)

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

var AlertStatuses = []AlertStatus{AlertStatusActive, AlertStatusAcknowledged, AlertStatusResolved}

type AlertMetric struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

type Alert struct {
	ID        string                 `json:"id"`
	Type      AlertType              `json:"type"`
	Severity  Severity               `json:"severity"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Metric    AlertMetric            `json:"metric"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Status    AlertStatus            `json:"status"`
}
