package alerting

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"
)

type Evaluator struct {
	clock clock.Clock
	rules []SeverityRule
}

func NewEvaluator(clk clock.Clock) *Evaluator {
	return &Evaluator{clock: clk, rules: SeverityRules}
}

func (e *Evaluator) Evaluate(sample *models.Sample, thresholds Thresholds) []*models.Alert {
	return e.EvaluateWithPrevious(sample, nil, thresholds)
}

// EvaluateWithPrevious produces the same alerts as Evaluate and, when previous
// is given, annotates each with the previous value and the change since.
func (e *Evaluator) EvaluateWithPrevious(sample, previous *models.Sample, thresholds Thresholds) []*models.Alert {
	if sample == nil {
		return nil
	}
	now := e.clock.Now()
	alerts := []*models.Alert{}
	for _, rule := range e.rules {
		value, ok := rule.Value(sample)
		if !ok {
			continue
		}
		threshold := rule.Threshold(thresholds)
		severity, exceeded := rule.Severity(value, threshold)
		if !exceeded {
			continue
		}
		alert := &models.Alert{
			ID:        AlertID(rule.Type, now, sample.Metadata.SessionID),
			Type:      rule.Type,
			Severity:  severity,
			Message:   message(rule, value, threshold),
			Timestamp: now,
			Metric: models.AlertMetric{
				Name:      rule.Metric,
				Value:     value,
				Threshold: threshold,
			},
			Metadata: map[string]interface{}{
				"sessionId":   sample.Metadata.SessionID,
				"userId":      sample.Metadata.User(),
				"environment": string(sample.Metadata.Environment),
			},
			Status: models.AlertStatusActive,
		}
		if previous != nil {
			if prev, ok := rule.Value(previous); ok {
				alert.Metadata["previousValue"] = prev
				alert.Metadata["delta"] = value - prev
			}
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

// AlertID is stable for a given type, emission time and session.
func AlertID(alertType models.AlertType, at time.Time, sessionID string) string {
	name := fmt.Sprintf("%s|%s|%s", alertType, at.UTC().Format(time.RFC3339Nano), sessionID)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func message(rule SeverityRule, value, threshold float64) string {
	if rule.Unit == "%" && threshold <= 1 {
		return fmt.Sprintf("%s %.2f%% exceeds threshold %.2f%%", rule.Label, value*100, threshold*100)
	}
	return fmt.Sprintf("%s %.2f%s exceeds threshold %.2f%s", rule.Label, value, rule.Unit, threshold, rule.Unit)
}
