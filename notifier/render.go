package notifier

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/app-perfmon/models"
)

func summaryLine(alerts []*models.Alert) string {
	if len(alerts) == 1 {
		return "1 urgent performance alert"
	}
	return fmt.Sprintf("%d urgent performance alerts", len(alerts))
}

func alertLine(alert *models.Alert) string {
	return fmt.Sprintf("[%s] %s: %s (value %g, threshold %g)",
		strings.ToUpper(string(alert.Severity)), alert.Type, alert.Message, alert.Metric.Value, alert.Metric.Threshold)
}

func renderText(alerts []*models.Alert, bullet string) string {
	var b strings.Builder
	b.WriteString(summaryLine(alerts))
	for _, alert := range alerts {
		b.WriteString("\n")
		b.WriteString(bullet)
		b.WriteString(alertLine(alert))
	}
	return b.String()
}
