package models

import (
	"fmt"
	"time"
)

type QueryType string

const (
	QueryTypeMetrics         QueryType = "metrics"
	QueryTypeAlerts          QueryType = "alerts"
	QueryTypeRecommendations QueryType = "recommendations"
	QueryTypeSummary         QueryType = "summary"
	QueryTypeHealth          QueryType = "health"
)

func ParseQueryType(s string) (QueryType, error) {
	switch t := QueryType(s); t {
	case QueryTypeMetrics, QueryTypeAlerts, QueryTypeRecommendations, QueryTypeSummary, QueryTypeHealth:
		return t, nil
	}
	return "", fmt.Errorf("unsupported type %q", s)
}

type Period string

const DefaultPeriod Period = "24h"

var periodWindows = map[Period]time.Duration{
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	if _, ok := periodWindows[Period(s)]; !ok {
		return "", fmt.Errorf("unsupported period %q", s)
	}
	return Period(s), nil
}

func (p Period) Window() time.Duration {
	return periodWindows[p]
}

type QueryResponse struct {
	Type   QueryType   `json:"type"`
	Period Period      `json:"period"`
	Data   interface{} `json:"data"`
}

type IngestResponse struct {
	Success bool `json:"success"`
	Alerts  int  `json:"alerts"`
}

type Summary struct {
	From             time.Time           `json:"from"`
	To               time.Time           `json:"to"`
	SampleCount      int                 `json:"sampleCount"`
	P95ResponseTime  float64             `json:"p95ResponseTime"`
	AvgErrorRate     float64             `json:"avgErrorRate"`
	P95PageLoadTime  float64             `json:"p95PageLoadTime"`
	AvgCPUUsage      float64             `json:"avgCpuUsage"`
	AvgMemoryUsage   float64             `json:"avgMemoryUsage"`
	AlertsBySeverity map[Severity]int    `json:"alertsBySeverity"`
	AlertsByStatus   map[AlertStatus]int `json:"alertsByStatus"`
}
