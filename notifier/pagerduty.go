package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"
)

const (
	DefaultPagerDutyEventsURL = "https://events.pagerduty.com/v2/enqueue"
	defaultPagerDutyRate      = 2
	defaultPagerDutyBurst     = 5
	pagerDutySource           = "app-perfmon"
)

type PagerDutyConfig struct {
	RoutingKey    string  `yaml:"routing_key" json:"routing_key"`
	EventsURL     string  `yaml:"events_url" json:"events_url"`
	RatePerSecond float64 `yaml:"rate_per_second" json:"rate_per_second"`
	Burst         int     `yaml:"burst" json:"burst"`
}

// PagerDutyChannel sends one Events API v2 trigger per alert, deduplicated by
// alert id.
type PagerDutyChannel struct {
	routingKey string
	eventsURL  string
	client     *http.Client
	limiter    *rate.Limiter
	logger     lager.Logger
}

func NewPagerDutyChannel(conf PagerDutyConfig, client *http.Client, logger lager.Logger) *PagerDutyChannel {
	eventsURL := conf.EventsURL
	if eventsURL == "" {
		eventsURL = DefaultPagerDutyEventsURL
	}
	perSecond := conf.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultPagerDutyRate
	}
	burst := conf.Burst
	if burst <= 0 {
		burst = defaultPagerDutyBurst
	}
	return &PagerDutyChannel{
		routingKey: conf.RoutingKey,
		eventsURL:  eventsURL,
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:     logger.Session("pagerduty-channel"),
	}
}

func (p *PagerDutyChannel) Name() string { return "pagerduty" }

type pagerDutyEvent struct {
	RoutingKey  string           `json:"routing_key"`
	EventAction string           `json:"event_action"`
	DedupKey    string           `json:"dedup_key"`
	Payload     pagerDutyPayload `json:"payload"`
}

type pagerDutyPayload struct {
	Summary       string                 `json:"summary"`
	Source        string                 `json:"source"`
	Severity      string                 `json:"severity"`
	Timestamp     string                 `json:"timestamp"`
	Component     string                 `json:"component"`
	CustomDetails map[string]interface{} `json:"custom_details"`
}

func pagerDutySeverity(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "critical"
	case models.SeverityHigh:
		return "error"
	case models.SeverityMedium:
		return "warning"
	default:
		return "info"
	}
}

func (p *PagerDutyChannel) Notify(ctx context.Context, alerts []*models.Alert) error {
	var errs []error
	for _, alert := range alerts {
		if err := p.limiter.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("alert %s: %w", alert.ID, err))
			break
		}
		if err := p.trigger(ctx, alert); err != nil {
			p.logger.Error("failed-to-trigger-event", err, lager.Data{"alertId": alert.ID})
			errs = append(errs, fmt.Errorf("alert %s: %w", alert.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (p *PagerDutyChannel) trigger(ctx context.Context, alert *models.Alert) error {
	event := pagerDutyEvent{
		RoutingKey:  p.routingKey,
		EventAction: "trigger",
		DedupKey:    alert.ID,
		Payload: pagerDutyPayload{
			Summary:   alert.Message,
			Source:    pagerDutySource,
			Severity:  pagerDutySeverity(alert.Severity),
			Timestamp: alert.Timestamp.UTC().Format(time.RFC3339),
			Component: string(alert.Type),
			CustomDetails: map[string]interface{}{
				"metric":    alert.Metric.Name,
				"value":     alert.Metric.Value,
				"threshold": alert.Metric.Threshold,
				"metadata":  alert.Metadata,
			},
		},
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return postJSON(ctx, p.client, p.eventsURL, body)
}
