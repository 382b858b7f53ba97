package models

import "time"

type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// WorstOf reduces statuses to the least healthy one. No input is healthy.
func WorstOf(statuses ...HealthStatus) HealthStatus {
	worst := HealthStatusHealthy
	for _, s := range statuses {
		switch s {
		case HealthStatusUnhealthy:
			return HealthStatusUnhealthy
		case HealthStatusHealthy:
		default:
			worst = HealthStatusDegraded
		}
	}
	return worst
}

type ComponentHealth struct {
	Status       HealthStatus `json:"status"`
	ResponseTime *float64     `json:"responseTime,omitempty"`
	Error        string       `json:"error,omitempty"`
}

type EndpointHealth struct {
	Endpoint     string       `json:"endpoint"`
	Status       HealthStatus `json:"status"`
	ResponseTime float64      `json:"responseTime"`
	ErrorRate    float64      `json:"errorRate"`
}

type ApiComponentHealth struct {
	Status    HealthStatus     `json:"status"`
	Endpoints []EndpointHealth `json:"endpoints"`
	Error     string           `json:"error,omitempty"`
}

type CacheComponentHealth struct {
	Status  HealthStatus `json:"status"`
	HitRate float64      `json:"hitRate"`
}

type HealthComponents struct {
	Database       ComponentHealth      `json:"database"`
	API            ApiComponentHealth   `json:"api"`
	Storage        ComponentHealth      `json:"storage"`
	Cache          CacheComponentHealth `json:"cache"`
	Authentication ComponentHealth      `json:"authentication"`
}

func (c HealthComponents) Statuses() []HealthStatus {
	return []HealthStatus{c.Database.Status, c.API.Status, c.Storage.Status, c.Cache.Status, c.Authentication.Status}
}

type HealthCheckResult struct {
	Status     HealthStatus     `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
	Uptime     float64          `json:"uptime"`
	Message    string           `json:"message"`
	Components HealthComponents `json:"components"`
	Error      string           `json:"error,omitempty"`
}

// ApiHealthRecord is one row of the externally maintained endpoint health log.
type ApiHealthRecord struct {
	Endpoint     string       `json:"endpoint" db:"endpoint"`
	Status       HealthStatus `json:"status" db:"status"`
	ResponseTime float64      `json:"responseTime" db:"response_time"`
	ErrorRate    float64      `json:"errorRate" db:"error_rate"`
	CheckedAt    time.Time    `json:"checkedAt" db:"checked_at"`
}
