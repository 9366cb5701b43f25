package interfaces

//go:generate moq -out mocks/notify_mock.go -pkg mocks . Notifier CacheInvalidator Navigator

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

// Notifier surfaces user-actionable outcomes to the presentation layer.
// Calls are fire-and-forget from the orchestration's perspective.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyError(ctx context.Context, message string, err error)
}

// CacheInvalidator marks cached pages under a key prefix stale
type CacheInvalidator interface {
	Invalidate(scope types.CacheScope)
}

// Navigator records route changes, e.g. when the query text changes.
// Fire-and-forget; the orchestration never depends on its effect.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}
