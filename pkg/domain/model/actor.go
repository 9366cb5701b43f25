package model

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const actorContextKey contextKey = "actor"

// WithActor adds the acting user to the context. Authorization checks
// and async hand-offs read it back with ActorFrom.
func WithActor(ctx context.Context, actor types.ActorID) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFrom retrieves the acting user from the context. Returns the
// empty ActorID when no actor was recorded.
func ActorFrom(ctx context.Context) types.ActorID {
	if actor, ok := ctx.Value(actorContextKey).(types.ActorID); ok {
		return actor
	}
	return ""
}
