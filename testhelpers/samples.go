package testhelpers

import (
	"encoding/json"
	"strings"
	"time"

	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/app-perfmon/models"
)

const SampleTimestamp = "2024-05-01T10:00:00Z"

// SamplePayload is a sample that passes validation and raises no alerts.
func SamplePayload() map[string]interface{} {
	return map[string]interface{}{
		"performance": map[string]interface{}{
			"responseTime": 120.0,
			"throughput":   35.5,
			"errorRate":    0.01,
			"statusCodes":  map[string]interface{}{"200": 98, "500": 2},
			"endpoint":     "/api/orders",
			"method":       "GET",
		},
		"userExperience": map[string]interface{}{
			"pageLoadTime":           1200.0,
			"firstContentfulPaint":   450.0,
			"largestContentfulPaint": 900.0,
			"firstInputDelay":        12.0,
			"cumulativeLayoutShift":  0.05,
			"pageUrl":                "https://shop.example.com/checkout",
		},
		"resources": map[string]interface{}{
			"cpuUsage":        35.0,
			"memoryUsage":     48.0,
			"memoryAllocated": 2048.0,
			"memoryFree":      1024.0,
		},
		"metadata": map[string]interface{}{
			"timestamp":   SampleTimestamp,
			"userId":      "user-1",
			"sessionId":   "session-1",
			"environment": "production",
			"version":     "1.4.2",
		},
	}
}

// SetField assigns value at a dotted path such as "resources.cpuUsage".
func SetField(payload map[string]interface{}, path string, value interface{}) map[string]interface{} {
	parts := strings.Split(path, ".")
	current := payload
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
	return payload
}

// DeleteField removes the value at a dotted path.
func DeleteField(payload map[string]interface{}, path string) map[string]interface{} {
	parts := strings.Split(path, ".")
	current := payload
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			return payload
		}
		current = next
	}
	delete(current, parts[len(parts)-1])
	return payload
}

func MustMarshal(v interface{}) []byte {
	bytes, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	return bytes
}

// NewSample decodes SamplePayload after applying the given field overrides.
func NewSample(overrides map[string]interface{}) *models.Sample {
	payload := SamplePayload()
	for path, value := range overrides {
		SetField(payload, path, value)
	}
	sample := &models.Sample{}
	Expect(json.Unmarshal(MustMarshal(payload), sample)).To(Succeed())
	return sample
}

func Float(v float64) *float64 { return &v }

func SampleAt(ts time.Time, overrides map[string]interface{}) *models.Sample {
	sample := NewSample(overrides)
	sample.Metadata.Timestamp = ts
	return sample
}

// SampleTime is SampleTimestamp as a time.Time.
func SampleTime() time.Time {
	return MustParseTime(SampleTimestamp)
}

func MustParseTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	Expect(err).NotTo(HaveOccurred())
	return ts.UTC()
}
