package alerting

// Thresholds are the upper bounds a sample is checked against. APIErrorRate is
// carried for configuration compatibility and is not evaluated.
type Thresholds struct {
	ResponseTime      float64 `yaml:"response_time" json:"responseTime"`
	ErrorRate         float64 `yaml:"error_rate" json:"errorRate"`
	CPUUsage          float64 `yaml:"cpu_usage" json:"cpuUsage"`
	MemoryUsage       float64 `yaml:"memory_usage" json:"memoryUsage"`
	PageLoadTime      float64 `yaml:"page_load_time" json:"pageLoadTime"`
	APIErrorRate      float64 `yaml:"api_error_rate" json:"apiErrorRate"`
	DatabaseQueryTime float64 `yaml:"database_query_time" json:"databaseQueryTime"`
	BounceRate        float64 `yaml:"bounce_rate" json:"bounceRate"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ResponseTime:      500,
		ErrorRate:         0.05,
		CPUUsage:          80,
		MemoryUsage:       80,
		PageLoadTime:      3000,
		APIErrorRate:      0.02,
		DatabaseQueryTime: 200,
		BounceRate:        0.6,
	}
}
