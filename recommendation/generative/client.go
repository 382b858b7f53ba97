// Package generative talks to an OpenAI-compatible chat completion endpoint.
package generative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/lager/v3"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	DefaultModel                   = "gpt-4o-mini"
	DefaultMaxTokens               = 800
	DefaultTemperature             = 0.2
	DefaultConsecutiveFailureCount = 3

	systemPrompt = "You are a web performance engineer. Answer with a single JSON object and nothing else."
)

var ErrEmptyCompletion = errors.New("completion has no choices")

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	URL                     string               `yaml:"url" json:"url"`
	APIKey                  string               `yaml:"api_key" json:"api_key"`
	Model                   string               `yaml:"model" json:"model"`
	MaxTokens               int                  `yaml:"max_tokens" json:"max_tokens"`
	Temperature             float64              `yaml:"temperature" json:"temperature"`
	ConsecutiveFailureCount int64                `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
	Client                  helpers.ClientConfig `yaml:"client" json:"client"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type Client struct {
	conf       Config
	httpClient *http.Client
	breaker    *circuit.Breaker
	logger     lager.Logger
}

var _ Completer = &Client{}

func NewClient(conf Config, httpClient *http.Client, logger lager.Logger) *Client {
	if conf.Model == "" {
		conf.Model = DefaultModel
	}
	if conf.MaxTokens <= 0 {
		conf.MaxTokens = DefaultMaxTokens
	}
	if conf.Temperature == 0 {
		conf.Temperature = DefaultTemperature
	}
	if conf.ConsecutiveFailureCount <= 0 {
		conf.ConsecutiveFailureCount = DefaultConsecutiveFailureCount
	}
	return &Client{
		conf:       conf,
		httpClient: httpClient,
		breaker:    circuit.NewConsecutiveBreaker(conf.ConsecutiveFailureCount),
		logger:     logger.Session("generative-client"),
	}
}

// Complete sends one prompt. Calls fail fast with circuit.ErrBreakerOpen while
// the breaker is tripped.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.breaker.Tripped() {
		c.logger.Info("circuit-tripped", lager.Data{"consecutiveFailures": c.breaker.ConsecFailures()})
	}
	var text string
	err := c.breaker.CallContext(ctx, func() error {
		var err error
		text, err = c.complete(ctx, prompt)
		return err
	}, 0)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.conf.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.conf.MaxTokens,
		Temperature: c.conf.Temperature,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.conf.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.conf.APIKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading completion: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion returned status %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}

	completion := chatResponse{}
	if err := json.Unmarshal(payload, &completion); err != nil {
		return "", fmt.Errorf("decoding completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	c.logger.Debug("completed", lager.Data{"model": c.conf.Model, "duration": time.Since(start).String()})
	return completion.Choices[0].Message.Content, nil
}

// NewClientFromConfig builds the pooled, non-retrying http client the
// completion calls share.
func NewClientFromConfig(conf Config, logger lager.Logger) *Client {
	return NewClient(conf, helpers.CreateHTTPClient(conf.Client, logger.Session("generative-http")), logger)
}
