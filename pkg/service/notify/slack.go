package notify

import (
	"context"
	"fmt"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service posts alert notifications to an external channel
type Service interface {
	// NotifyAlert posts a summary of one newly created alert
	NotifyAlert(ctx context.Context, alert *model.RiskAlert) error
}

type slackService struct {
	client    *slack.Client
	channelID string
}

var _ Service = &slackService{}

// NewSlack creates a Slack notifier posting to the given channel
func NewSlack(botToken, channelID string) (Service, error) {
	if botToken == "" {
		return nil, goerr.New("slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel ID is required")
	}

	return &slackService{
		client:    slack.New(botToken),
		channelID: channelID,
	}, nil
}

func (s *slackService) NotifyAlert(ctx context.Context, alert *model.RiskAlert) error {
	attachment := slack.Attachment{
		Color: severityColor(alert.Severity),
		Title: fmt.Sprintf("[%s] %s risk detected: %s",
			alert.Severity, alert.RiskCategory, alert.SourceName),
		Fields: []slack.AttachmentField{
			{Title: "Source", Value: fmt.Sprintf("%s (%s)", alert.SourceName, alert.SourceType), Short: true},
			{Title: "Trigger", Value: alert.TriggerReason.String(), Short: true},
			{Title: "Risk score", Value: fmt.Sprintf("%d", alert.RiskScore), Short: true},
			{Title: "Mitigation steps", Value: fmt.Sprintf("%d", len(alert.MitigationSteps)), Short: true},
		},
		Text: alert.RiskDescription,
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post alert notification",
			goerr.V("alert_id", alert.ID),
			goerr.V("channel", s.channelID))
	}

	return nil
}

func severityColor(severity types.Severity) string {
	switch severity {
	case types.SeverityCritical:
		return "#dc2626"
	case types.SeverityHigh:
		return "#ea580c"
	case types.SeverityMedium:
		return "#ca8a04"
	default:
		return "#2563eb"
	}
}
