package cache_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces/mocks"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/service/cache"
)

func newBackend(pages map[string]*model.GroupPage) *mocks.DirectoryGatewayMock {
	return &mocks.DirectoryGatewayMock{
		SearchGroupsFunc: func(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
			if p, ok := pages[query]; ok {
				return p, nil
			}
			return &model.GroupPage{
				Groups: []model.GroupSummary{},
				Info:   model.PageInfo{Page: page.Page, Size: page.Size, TotalPages: 1},
			}, nil
		},
	}
}

func TestDirectoryCache(t *testing.T) {
	ctx := context.Background()

	team := model.GroupSummary{ID: types.NewGroupID(), Name: "team"}
	teamPage := &model.GroupPage{
		Groups: []model.GroupSummary{team},
		Info:   model.PageInfo{Page: 1, Size: 20, TotalElements: 1, TotalPages: 1},
	}

	t.Run("repeated search hits the cache", func(t *testing.T) {
		backend := newBackend(map[string]*model.GroupPage{"team": teamPage})
		d, err := cache.New(backend, 8)
		gt.NoError(t, err)

		first, err := d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		second, err := d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)

		gt.Equal(t, first, second)
		gt.Equal(t, len(backend.SearchGroupsCalls()), 1)
	})

	t.Run("distinct queries and pages are cached separately", func(t *testing.T) {
		backend := newBackend(map[string]*model.GroupPage{"team": teamPage})
		d, err := cache.New(backend, 8)
		gt.NoError(t, err)

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 2, Size: 20})
		gt.NoError(t, err)
		_, err = d.SearchGroups(ctx, "other", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)

		gt.Equal(t, len(backend.SearchGroupsCalls()), 3)
	})

	t.Run("backend failure is not cached", func(t *testing.T) {
		calls := 0
		backend := &mocks.DirectoryGatewayMock{
			SearchGroupsFunc: func(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
				calls++
				if calls == 1 {
					return nil, goerr.New("directory unavailable")
				}
				return teamPage, nil
			},
		}
		d, err := cache.New(backend, 8)
		gt.NoError(t, err)

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.Error(t, err)

		page, err := d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		gt.Equal(t, page, teamPage)
		gt.Equal(t, calls, 2)
	})

	t.Run("invalidation forces a refetch", func(t *testing.T) {
		backend := newBackend(map[string]*model.GroupPage{"team": teamPage})
		d, err := cache.New(backend, 8)
		gt.NoError(t, err)

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		gt.Equal(t, len(backend.SearchGroupsCalls()), 1)

		d.Invalidate(types.ScopeGroups)

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		gt.Equal(t, len(backend.SearchGroupsCalls()), 2)
	})

	t.Run("other scopes leave the pages alone", func(t *testing.T) {
		backend := newBackend(map[string]*model.GroupPage{"team": teamPage})
		d, err := cache.New(backend, 8)
		gt.NoError(t, err)

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)

		d.Invalidate(types.CacheScope("people"))

		_, err = d.SearchGroups(ctx, "team", model.PageRequest{Page: 1, Size: 20})
		gt.NoError(t, err)
		gt.Equal(t, len(backend.SearchGroupsCalls()), 1)
	})

	t.Run("invalid size is rejected", func(t *testing.T) {
		backend := newBackend(nil)
		_, err := cache.New(backend, 0)
		gt.Error(t, err)
	})
}
