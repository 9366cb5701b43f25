package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

// actorHeader identifies the acting user for authorization checks.
// Trust in this header is the deployment's concern (gateway/IAP);
// the service itself only resolves it into the request context.
const actorHeader = "X-Actor-ID"

// ActorContextMiddleware resolves the acting user from the request
// header into the context for downstream authorization checks
func ActorContextMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor := r.Header.Get(actorHeader); actor != "" {
				r = r.WithContext(model.WithActor(r.Context(), types.ActorID(actor)))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware embeds the service logger into each request
// context and logs the request outcome
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(ctxlog.With(r.Context(), ctxlog.From(ctx)))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			ctxlog.From(r.Context()).Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"actor", model.ActorFrom(r.Context()),
				"remote", r.RemoteAddr,
			)
		})
	}
}
