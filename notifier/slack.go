package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/lager/v3"
)

type SlackConfig struct {
	WebhookURL string `yaml:"webhook_url" json:"webhook_url"`
}

// SlackChannel posts one message per batch to an incoming webhook.
type SlackChannel struct {
	webhookURL string
	client     *http.Client
	logger     lager.Logger
}

func NewSlackChannel(conf SlackConfig, client *http.Client, logger lager.Logger) *SlackChannel {
	return &SlackChannel{
		webhookURL: conf.WebhookURL,
		client:     client,
		logger:     logger.Session("slack-channel"),
	}
}

func (s *SlackChannel) Name() string { return "slack" }

type slackMessage struct {
	Text string `json:"text"`
}

func (s *SlackChannel) Notify(ctx context.Context, alerts []*models.Alert) error {
	body, err := json.Marshal(slackMessage{Text: ":rotating_light: " + renderText(alerts, "• ")})
	if err != nil {
		return err
	}
	return postJSON(ctx, s.client, s.webhookURL, body)
}

func postJSON(ctx context.Context, client *http.Client, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
