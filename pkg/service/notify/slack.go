package notify

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/slack-go/slack"
)

// Slack posts outcome notifications to a Slack incoming webhook.
// Delivery is best effort: a failed post is logged, never returned,
// since notification is fire-and-forget for the callers.
type Slack struct {
	webhookURL string
}

// NewSlack creates a Slack webhook notifier
func NewSlack(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL}
}

// NotifySuccess posts a green attachment with the message
func (s *Slack) NotifySuccess(ctx context.Context, message string) {
	s.post(ctx, &slack.WebhookMessage{
		Attachments: []slack.Attachment{
			{
				Color: "good",
				Text:  message,
			},
		},
	})
}

// NotifyError posts a red attachment with the message and cause
func (s *Slack) NotifyError(ctx context.Context, message string, err error) {
	attachment := slack.Attachment{
		Color: "danger",
		Text:  message,
	}
	if err != nil {
		attachment.Fields = []slack.AttachmentField{
			{
				Title: "Error",
				Value: err.Error(),
			},
		}
	}
	s.post(ctx, &slack.WebhookMessage{
		Attachments: []slack.Attachment{attachment},
	})
}

func (s *Slack) post(ctx context.Context, msg *slack.WebhookMessage) {
	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		ctxlog.From(ctx).Warn("Failed to post Slack notification",
			"error", err,
		)
	}
}
