package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Directory decorates a DirectoryGateway with an LRU cache over search
// pages. Invalidate drops every cached page under a key prefix, which
// is how the deletion path forces the next cycle to refetch.
type Directory struct {
	interfaces.DirectoryGateway
	pages *lru.Cache[string, *model.GroupPage]
}

// New creates a caching decorator over next
func New(next interfaces.DirectoryGateway, size int) (*Directory, error) {
	pages, err := lru.New[string, *model.GroupPage](size)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create page cache",
			goerr.V("size", size))
	}
	return &Directory{
		DirectoryGateway: next,
		pages:            pages,
	}, nil
}

// SearchGroups serves the page from cache when present. Cached pages
// are shared as-is; callers treat fetched pages as immutable.
func (d *Directory) SearchGroups(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
	key := pageKey(query, page.Normalize())

	if cached, ok := d.pages.Get(key); ok {
		ctxlog.From(ctx).Debug("Group page cache hit", "key", key)
		return cached, nil
	}

	fetched, err := d.DirectoryGateway.SearchGroups(ctx, query, page)
	if err != nil {
		return nil, err
	}
	d.pages.Add(key, fetched)
	return fetched, nil
}

// Invalidate drops every cached page whose key starts with scope
func (d *Directory) Invalidate(scope types.CacheScope) {
	prefix := scope.String()
	for _, key := range d.pages.Keys() {
		if strings.HasPrefix(key, prefix) {
			d.pages.Remove(key)
		}
	}
}

func pageKey(query string, page model.PageRequest) string {
	return fmt.Sprintf("%s?q=%s&page=%d&size=%d", types.ScopeGroups, query, page.Page, page.Size)
}

var (
	_ interfaces.DirectoryGateway = (*Directory)(nil)
	_ interfaces.CacheInvalidator = (*Directory)(nil)
)
