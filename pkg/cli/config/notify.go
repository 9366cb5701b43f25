package config

import (
	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds notification configuration
type Notify struct {
	SlackWebhookURL string
}

// Flags returns CLI flags for Notify configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for deletion notifications (log-only when unset)",
			Category:    "Notification",
			Sources:     cli.EnvVars("GROUPDESK_SLACK_WEBHOOK_URL"),
			Destination: &n.SlackWebhookURL,
		},
	}
}

// Configure creates the notifier
func (n *Notify) Configure() interfaces.Notifier {
	if n.SlackWebhookURL != "" {
		return notify.NewSlack(n.SlackWebhookURL)
	}
	return notify.NewLog()
}
