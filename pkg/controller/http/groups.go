package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
)

// GroupListHandler exposes the group-list orchestration over HTTP
type GroupListHandler struct {
	uc *usecase.GroupList
}

// NewGroupListHandler creates a handler over the group-list use case
func NewGroupListHandler(uc *usecase.GroupList) *GroupListHandler {
	return &GroupListHandler{uc: uc}
}

type searchRequest struct {
	Query string `json:"query"`
}

type pageRequest struct {
	Page int `json:"page"`
}

// HandleView responds with the current published view
func (h *GroupListHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uc.CurrentView())
}

// HandleSearch submits a search query and responds with the view it
// published. A request superseded by a newer one gets 409.
func (h *GroupListHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.uc.Search(r.Context(), req.Query)
	h.respondView(w, r.Context(), view, err)
}

// HandlePage moves to another page of the current query
func (h *GroupListHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	var req pageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Page < 1 {
		http.Error(w, "page must be >= 1", http.StatusBadRequest)
		return
	}

	view, err := h.uc.ChangePage(r.Context(), req.Page)
	h.respondView(w, r.Context(), view, err)
}

// HandleClear resets the query and re-searches
func (h *GroupListHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	view, err := h.uc.ClearSearch(r.Context())
	h.respondView(w, r.Context(), view, err)
}

// HandleDelete deletes one group. The row is resolved from the current
// view so the notification carries the display name; an unknown ID is
// forwarded with the ID alone.
func (h *GroupListHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := types.GroupID(chi.URLParam(r, "groupID"))
	if id == "" {
		http.Error(w, "group ID is required", http.StatusBadRequest)
		return
	}

	group := model.GroupSummary{ID: id}
	for _, row := range h.uc.CurrentView().Rows {
		if row.Group.ID == id {
			group = row.Group
			break
		}
	}

	if err := h.uc.DeleteGroup(r.Context(), group); err != nil {
		ctxlog.From(r.Context()).Warn("Group deletion failed",
			"groupID", id,
			"error", err,
		)
		http.Error(w, "deletion failed", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStream streams published views as server-sent events until the
// client disconnects
func (h *GroupListHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	views, unsubscribe := h.uc.Watch()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// current view first so the client renders immediately
	if err := writeEvent(w, h.uc.CurrentView()); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case view, ok := <-views:
			if !ok {
				// component torn down
				return
			}
			if err := writeEvent(w, view); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *GroupListHandler) respondView(w http.ResponseWriter, ctx context.Context, view *model.GroupListView, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, view)
	case errors.Is(err, context.Canceled):
		// a newer search took over
		http.Error(w, "superseded by a newer search", http.StatusConflict)
	case errors.Is(err, model.ErrClosed):
		http.Error(w, "service shutting down", http.StatusServiceUnavailable)
	default:
		ctxlog.From(ctx).Warn("Search cycle failed", "error", err)
		http.Error(w, "search failed", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeEvent(w http.ResponseWriter, view *model.GroupListView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
