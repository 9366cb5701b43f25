package async

import (
	"context"
	"runtime/debug"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs fn on its own goroutine, detached from the caller's
// cancellation so the work survives the triggering request. The
// caller's logger and actor carry over; panics are recovered and
// logged, errors are logged.
func Dispatch(ctx context.Context, fn func(ctx context.Context) error) {
	detached := Detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(detached).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := fn(detached); err != nil {
			ctxlog.From(detached).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Detach returns a background context carrying over the values that
// must survive the request boundary: the logger and the acting user
func Detach(ctx context.Context) context.Context {
	detached := context.Background()
	detached = ctxlog.With(detached, ctxlog.From(ctx))
	if actor := model.ActorFrom(ctx); actor != "" {
		detached = model.WithActor(detached, actor)
	}
	return detached
}
