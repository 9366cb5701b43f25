package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/groupdesk/groupdesk/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the HTTP server exposing the group-list surface
func NewServer(ctx context.Context, addr string, groupList *usecase.GroupList) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(ActorContextMiddleware())
	router.Use(middleware.Recoverer)

	handler := NewGroupListHandler(groupList)

	router.Get("/health", handleHealth)

	router.Route("/api/groups", func(r chi.Router) {
		r.Get("/", handler.HandleView)
		r.Get("/stream", handler.HandleStream)
		r.Post("/search", handler.HandleSearch)
		r.Post("/page", handler.HandlePage)
		r.Post("/clear", handler.HandleClear)
		r.Delete("/{groupID}", handler.HandleDelete)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		router: router,
	}
}

// Router returns the underlying router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
