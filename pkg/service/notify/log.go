package notify

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Log writes notifications to the structured log. Default collaborator
// when no Slack webhook is configured; also serves as the Navigator,
// since a headless deployment has no router to drive.
type Log struct{}

// NewLog creates a log-backed notifier
func NewLog() *Log {
	return &Log{}
}

// NotifySuccess logs the message at info level
func (l *Log) NotifySuccess(ctx context.Context, message string) {
	ctxlog.From(ctx).Info("Notification", "outcome", "success", "message", message)
}

// NotifyError logs the message and cause at error level
func (l *Log) NotifyError(ctx context.Context, message string, err error) {
	ctxlog.From(ctx).Error("Notification", "outcome", "error", "message", message, "error", err)
}

// Navigate records the route change
func (l *Log) Navigate(ctx context.Context, path string) {
	ctxlog.From(ctx).Debug("Navigation", "path", path)
}
