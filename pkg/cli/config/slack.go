package config

import (
	"github.com/adopt-lab/harbinger/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the optional alert notifier
type Slack struct {
	botToken  string
	channelID string
}

// Flags returns CLI flags for Slack notification configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for alert notifications",
			Sources:     cli.EnvVars("HARBINGER_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID to post critical alerts to",
			Sources:     cli.EnvVars("HARBINGER_SLACK_CHANNEL_ID"),
			Destination: &s.channelID,
		},
	}
}

// IsConfigured reports whether both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channelID != ""
}

// Configure creates the notifier, or returns nil when notification is not
// configured (notification is an optional feature).
func (s *Slack) Configure() (notify.Service, error) {
	if !s.IsConfigured() {
		return nil, nil
	}
	return notify.NewSlack(s.botToken, s.channelID)
}
