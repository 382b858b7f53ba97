package notifier

import (
	"time"

	"code.cloudfoundry.org/app-perfmon/helpers"
	"code.cloudfoundry.org/lager/v3"
)

type Config struct {
	Timeout   time.Duration        `yaml:"timeout" json:"timeout"`
	Slack     SlackConfig          `yaml:"slack" json:"slack"`
	PagerDuty PagerDutyConfig      `yaml:"pagerduty" json:"pagerduty"`
	Email     EmailConfig          `yaml:"email" json:"email"`
	Client    helpers.ClientConfig `yaml:"client" json:"client"`
}

// NewChannels builds a channel for every configured destination.
func NewChannels(conf Config, logger lager.Logger) []Channel {
	client := helpers.CreateHTTPClient(conf.Client, logger.Session("notifier-http-client"))
	channels := []Channel{}
	if conf.Slack.WebhookURL != "" {
		channels = append(channels, NewSlackChannel(conf.Slack, client, logger))
	}
	if conf.PagerDuty.RoutingKey != "" {
		channels = append(channels, NewPagerDutyChannel(conf.PagerDuty, client, logger))
	}
	if conf.Email.Host != "" && len(conf.Email.To) > 0 {
		channels = append(channels, NewEmailChannel(conf.Email, logger))
	}
	return channels
}
