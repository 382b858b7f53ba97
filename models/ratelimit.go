package models

import (
	"fmt"
	"time"
)

// RateLimitConfig describes a fixed window: at most Requests per Window for
// each client key.
type RateLimitConfig struct {
	Requests int           `yaml:"requests" json:"requests,omitempty"`
	Window   time.Duration `yaml:"window" json:"window,omitempty"`
}

func (c RateLimitConfig) Validate() error {
	if c.Requests <= 0 {
		return fmt.Errorf("requests must be positive, got %d", c.Requests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %s", c.Window)
	}
	return nil
}

func (c RateLimitConfig) String() string {
	return fmt.Sprintf("%d/%s", c.Requests, c.Window)
}
