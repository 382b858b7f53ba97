package models

import "time"

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

const AnonymousUser = "anonymous"

// Sample is one telemetry submission. Optional scalars are pointers so that a
// decoded sample re-encodes to the payload it was decoded from.
type Sample struct {
	Performance     PerformanceMetrics    `json:"performance"`
	UserExperience  UserExperienceMetrics `json:"userExperience"`
	Resources       ResourceMetrics       `json:"resources"`
	Errors          []ErrorRecord         `json:"errors,omitempty"`
	BusinessMetrics *BusinessMetrics      `json:"businessMetrics,omitempty"`
	Metadata        SampleMetadata        `json:"metadata"`
}

type PerformanceMetrics struct {
	ResponseTime float64        `json:"responseTime"`
	Throughput   float64        `json:"throughput"`
	ErrorRate    float64        `json:"errorRate"`
	StatusCodes  map[string]int `json:"statusCodes"`
	Endpoint     *string        `json:"endpoint,omitempty"`
	Method       *string        `json:"method,omitempty"`
}

type UserExperienceMetrics struct {
	PageLoadTime           float64       `json:"pageLoadTime"`
	FirstContentfulPaint   float64       `json:"firstContentfulPaint"`
	LargestContentfulPaint float64       `json:"largestContentfulPaint"`
	FirstInputDelay        float64       `json:"firstInputDelay"`
	CumulativeLayoutShift  float64       `json:"cumulativeLayoutShift"`
	Interactions           []Interaction `json:"interactions,omitempty"`
	BounceRate             *float64      `json:"bounceRate,omitempty"`
	SessionDuration        *float64      `json:"sessionDuration,omitempty"`
	PageURL                string        `json:"pageUrl"`
}

type Interaction struct {
	Type      string    `json:"type"`
	Target    string    `json:"target"`
	Timestamp time.Time `json:"timestamp"`
	Duration  *float64  `json:"duration,omitempty"`
}

type ResourceMetrics struct {
	CPUUsage            float64  `json:"cpuUsage"`
	MemoryUsage         float64  `json:"memoryUsage"`
	MemoryAllocated     float64  `json:"memoryAllocated"`
	MemoryFree          float64  `json:"memoryFree"`
	DatabaseConnections *float64 `json:"databaseConnections,omitempty"`
	DatabaseQueryTime   *float64 `json:"databaseQueryTime,omitempty"`
	DatabaseCPUUsage    *float64 `json:"databaseCpuUsage,omitempty"`
	NetworkBandwidth    *float64 `json:"networkBandwidth,omitempty"`
	DiskUsage           *float64 `json:"diskUsage,omitempty"`
}

type ErrorRecord struct {
	Message   string                 `json:"message"`
	Stack     *string                `json:"stack,omitempty"`
	Component *string                `json:"component,omitempty"`
	UserID    *string                `json:"userId,omitempty"`
	Severity  *Severity              `json:"severity,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type BusinessMetrics struct {
	UserEngagement  float64            `json:"userEngagement"`
	ConversionRate  float64            `json:"conversionRate"`
	FeatureAdoption map[string]float64 `json:"featureAdoption"`
	ActiveUsers     float64            `json:"activeUsers"`
	Revenue         float64            `json:"revenue"`
	RetentionRate   float64            `json:"retentionRate"`
}

type SampleMetadata struct {
	Timestamp   time.Time   `json:"timestamp"`
	UserID      *string     `json:"userId,omitempty"`
	SessionID   string      `json:"sessionId"`
	Environment Environment `json:"environment"`
	Version     string      `json:"version"`
	InstanceID  *string     `json:"instanceId,omitempty"`
	Region      *string     `json:"region,omitempty"`
}

func (m SampleMetadata) User() string {
	if m.UserID == nil || *m.UserID == "" {
		return AnonymousUser
	}
	return *m.UserID
}
