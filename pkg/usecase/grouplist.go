package usecase

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// GroupList owns the group-list search state: the current query and
// page, the session's tombstone set, and the published view. All
// mutation goes through its mutex; search cycles run in the calling
// goroutine with a per-cycle context so a superseded cycle can be
// cancelled and can never overwrite a newer result.
type GroupList struct {
	gateway interfaces.DirectoryGateway
	authz   interfaces.Authorizer
	notify  interfaces.Notifier
	cache   interfaces.CacheInvalidator
	nav     interfaces.Navigator

	// lifetime is the component-scoped context; Close cancels it,
	// which tears down every in-flight cycle at once
	lifetime context.Context
	stop     context.CancelFunc

	mu          sync.Mutex
	query       string
	page        model.PageRequest
	tombstoned  map[types.GroupID]struct{}
	view        *model.GroupListView
	cycleSeq    uint64
	cancelCycle context.CancelFunc
	watchers    map[int]chan *model.GroupListView
	watchSeq    int
	closed      bool
}

// NewGroupList creates a group-list use case. cache and nav may be nil
// when the deployment has no page cache or routing collaborator.
func NewGroupList(
	gateway interfaces.DirectoryGateway,
	authz interfaces.Authorizer,
	notify interfaces.Notifier,
	cache interfaces.CacheInvalidator,
	nav interfaces.Navigator,
	pageSize int,
) *GroupList {
	if pageSize < 1 {
		pageSize = model.DefaultPageSize
	}
	lifetime, stop := context.WithCancel(context.Background())
	return &GroupList{
		gateway:    gateway,
		authz:      authz,
		notify:     notify,
		cache:      cache,
		nav:        nav,
		lifetime:   lifetime,
		stop:       stop,
		page:       model.PageRequest{Page: 1, Size: pageSize},
		tombstoned: make(map[types.GroupID]struct{}),
		view: &model.GroupListView{
			Rows: []model.GroupRow{},
			Page: model.PageInfo{Page: 1, Size: pageSize},
		},
		watchers: make(map[int]chan *model.GroupListView),
	}
}

// Search submits a search query and runs a full cycle for it. A query
// text change resets the page to 1 and records the new route. Any
// cycle still in flight is cancelled; the newest submission wins.
func (u *GroupList) Search(ctx context.Context, query string) (*model.GroupListView, error) {
	query = strings.TrimSpace(query)

	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil, goerr.Wrap(model.ErrClosed, "cannot search")
	}
	navPath := ""
	if query != u.query {
		u.query = query
		u.page.Page = 1
		navPath = "/groups"
		if query != "" {
			navPath += "?query=" + url.QueryEscape(query)
		}
	}
	cycleCtx, seq := u.beginCycleLocked(ctx)
	q, req := u.query, u.page
	u.mu.Unlock()

	if navPath != "" && u.nav != nil {
		u.nav.Navigate(ctx, navPath)
	}

	return u.runCycle(cycleCtx, seq, q, req)
}

// ChangePage moves to page n with the current query
func (u *GroupList) ChangePage(ctx context.Context, n int) (*model.GroupListView, error) {
	if n < 1 {
		return nil, goerr.New("page number must be >= 1", goerr.V("page", n))
	}

	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil, goerr.Wrap(model.ErrClosed, "cannot change page")
	}
	u.page.Page = n
	cycleCtx, seq := u.beginCycleLocked(ctx)
	q, req := u.query, u.page
	u.mu.Unlock()

	return u.runCycle(cycleCtx, seq, q, req)
}

// ClearSearch resets the query to empty and re-searches
func (u *GroupList) ClearSearch(ctx context.Context) (*model.GroupListView, error) {
	return u.Search(ctx, "")
}

// Refresh re-runs the current query at the current page, e.g. after a
// deletion invalidated the cached pages
func (u *GroupList) Refresh(ctx context.Context) (*model.GroupListView, error) {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil, goerr.Wrap(model.ErrClosed, "cannot refresh")
	}
	cycleCtx, seq := u.beginCycleLocked(ctx)
	q, req := u.query, u.page
	u.mu.Unlock()

	return u.runCycle(cycleCtx, seq, q, req)
}

// CurrentView returns the latest published view
func (u *GroupList) CurrentView() *model.GroupListView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.view
}

// Watch registers a view watcher. The channel holds the most recent
// view; a slow consumer gets older views dropped, never a blocked
// publisher. The returned function unregisters the watcher.
func (u *GroupList) Watch() (<-chan *model.GroupListView, func()) {
	u.mu.Lock()
	defer u.mu.Unlock()

	ch := make(chan *model.GroupListView, 1)
	if u.closed {
		close(ch)
		return ch, func() {}
	}

	id := u.watchSeq
	u.watchSeq++
	u.watchers[id] = ch

	return ch, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if c, ok := u.watchers[id]; ok {
			delete(u.watchers, id)
			close(c)
		}
	}
}

// Close tears the component down: the in-flight cycle is cancelled,
// watcher channels are closed, and no view is published afterwards
func (u *GroupList) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	u.closed = true
	if u.cancelCycle != nil {
		u.cancelCycle()
		u.cancelCycle = nil
	}
	u.stop()
	for id, ch := range u.watchers {
		delete(u.watchers, id)
		close(ch)
	}
}

// beginCycleLocked supersedes the in-flight cycle and opens a new one.
// The new cycle's context descends from the component lifetime, not
// from the caller, so an aborted HTTP request does not kill it; the
// caller's logger and actor carry over.
func (u *GroupList) beginCycleLocked(ctx context.Context) (context.Context, uint64) {
	if u.cancelCycle != nil {
		u.cancelCycle()
	}
	u.cycleSeq++

	cycleCtx, cancel := context.WithCancel(u.lifetime)
	cycleCtx = ctxlog.With(cycleCtx, ctxlog.From(ctx))
	if actor := model.ActorFrom(ctx); actor != "" {
		cycleCtx = model.WithActor(cycleCtx, actor)
	}
	u.cancelCycle = cancel

	return cycleCtx, u.cycleSeq
}

// runCycle performs one search cycle: fetch the raw page, enrich every
// row, publish the joined result. Publication is guarded by the cycle
// sequence, so a cycle that was superseded while fetching stays silent.
func (u *GroupList) runCycle(ctx context.Context, seq uint64, query string, req model.PageRequest) (*model.GroupListView, error) {
	logger := ctxlog.From(ctx)

	u.publishBusy(seq, query)

	page, err := u.gateway.SearchGroups(ctx, query, req.Normalize())
	if err != nil {
		return nil, u.failCycle(ctx, seq, "Failed to search groups", err,
			goerr.V("query", query), goerr.V("page", req.Page))
	}
	if page == nil {
		page = &model.GroupPage{Info: model.PageInfo{Page: req.Page, Size: req.Size}}
	}

	rows, info, err := u.assemblePage(ctx, page.Groups, page.Info)
	if err != nil {
		return nil, u.failCycle(ctx, seq, "Failed to load group details", err,
			goerr.V("query", query), goerr.V("page", req.Page))
	}

	view := &model.GroupListView{
		Query: query,
		Rows:  rows,
		Page:  info,
	}
	if !u.publish(seq, view) {
		return nil, goerr.Wrap(context.Canceled, "search cycle superseded",
			goerr.V("query", query))
	}

	logger.Debug("Search cycle published",
		"query", query,
		"page", info.Page,
		"rows", len(rows),
	)
	return view, nil
}

// failCycle settles a failed cycle: the previous rows stay published,
// busy is cleared, and the failure is surfaced through the notifier
// unless the cycle was superseded (a cancelled cycle stays silent).
func (u *GroupList) failCycle(ctx context.Context, seq uint64, message string, err error, values ...goerr.Option) error {
	wrapped := goerr.Wrap(err, message, values...)
	if ctx.Err() != nil {
		return goerr.Wrap(context.Canceled, "search cycle superseded")
	}

	u.mu.Lock()
	if !u.closed && seq == u.cycleSeq && u.view != nil {
		settled := u.view.Clone()
		settled.Busy = false
		u.view = settled
		u.broadcastLocked(settled)
	}
	u.mu.Unlock()

	u.notify.NotifyError(ctx, message, err)
	return wrapped
}

// publishBusy publishes the previous rows with the busy flag raised
func (u *GroupList) publishBusy(seq uint64, query string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed || seq != u.cycleSeq {
		return
	}
	busy := u.view.Clone()
	busy.Query = query
	busy.Busy = true
	u.view = busy
	u.broadcastLocked(busy)
}

// publish installs the view if the cycle is still the current one
func (u *GroupList) publish(seq uint64, view *model.GroupListView) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed || seq != u.cycleSeq {
		return false
	}
	u.view = view
	u.broadcastLocked(view)
	return true
}

func (u *GroupList) broadcastLocked(view *model.GroupListView) {
	for _, ch := range u.watchers {
		select {
		case ch <- view:
		default:
			// drop the stale view so the latest one always fits
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- view:
			default:
			}
		}
	}
}

func (u *GroupList) isTombstoned(id types.GroupID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.tombstoned[id]
	return ok
}
