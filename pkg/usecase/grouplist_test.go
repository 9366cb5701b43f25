package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces/mocks"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/usecase"
)

// newGateway returns a gateway mock that answers every lookup with
// empty relations and no linked object. Tests override the pieces
// they care about.
func newGateway(pages map[string]*model.GroupPage) *mocks.DirectoryGatewayMock {
	return &mocks.DirectoryGatewayMock{
		SearchGroupsFunc: func(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
			if p, ok := pages[query]; ok {
				return p, nil
			}
			return &model.GroupPage{
				Groups: []model.GroupSummary{},
				Info:   model.PageInfo{Page: page.Page, Size: page.Size},
			}, nil
		},
		FindSubgroupsFunc: func(ctx context.Context, group model.GroupSummary) (*model.GroupPage, error) {
			return &model.GroupPage{Groups: []model.GroupSummary{}}, nil
		},
		FindMembersFunc: func(ctx context.Context, group model.GroupSummary) (*model.PersonPage, error) {
			return &model.PersonPage{People: []model.PersonSummary{}}, nil
		},
		HasLinkedObjectFunc: func(ctx context.Context, group model.GroupSummary) (bool, error) {
			return false, nil
		},
		DeleteGroupFunc: func(ctx context.Context, id types.GroupID) error {
			return nil
		},
	}
}

func newNotifier() *mocks.NotifierMock {
	return &mocks.NotifierMock{
		NotifySuccessFunc: func(ctx context.Context, message string) {},
		NotifyErrorFunc:   func(ctx context.Context, message string, err error) {},
	}
}

func allowAll() *mocks.AuthorizerMock {
	return &mocks.AuthorizerMock{
		CanDeleteGroupFunc: func(ctx context.Context, actor types.ActorID, group model.GroupSummary) (bool, error) {
			return true, nil
		},
	}
}

func groupPage(info model.PageInfo, groups ...model.GroupSummary) *model.GroupPage {
	return &model.GroupPage{Groups: groups, Info: info}
}

func TestGroupList_Search(t *testing.T) {
	ctx := context.Background()

	groupA := model.GroupSummary{ID: types.NewGroupID(), Name: "alpha"}
	groupB := model.GroupSummary{ID: types.NewGroupID(), Name: "beta"}
	info := model.PageInfo{Page: 1, Size: 5, TotalElements: 2, TotalPages: 1}

	t.Run("publishes enriched rows in input order", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"alice": groupPage(info, groupA, groupB),
		})
		authz := &mocks.AuthorizerMock{
			CanDeleteGroupFunc: func(ctx context.Context, actor types.ActorID, group model.GroupSummary) (bool, error) {
				return group.ID == groupA.ID, nil
			},
		}
		uc := usecase.NewGroupList(gateway, authz, newNotifier(), nil, nil, 5)
		defer uc.Close()

		view, err := uc.Search(ctx, "alice")
		gt.NoError(t, err)
		gt.NotNil(t, view)
		gt.Equal(t, len(view.Rows), 2)
		gt.Equal(t, view.Rows[0].Group.ID, groupA.ID)
		gt.Equal(t, view.Rows[1].Group.ID, groupB.ID)
		gt.True(t, view.Rows[0].AbleToDelete)
		gt.False(t, view.Rows[1].AbleToDelete)
		gt.Equal(t, view.Page, info)
		gt.False(t, view.Busy)
		gt.Equal(t, uc.CurrentView(), view)
	})

	t.Run("trims query whitespace", func(t *testing.T) {
		gateway := newGateway(nil)
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "  alice \t")
		gt.NoError(t, err)

		calls := gateway.SearchGroupsCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Query, "alice")
	})

	t.Run("query change resets page and records route", func(t *testing.T) {
		gateway := newGateway(nil)
		nav := &mocks.NavigatorMock{
			NavigateFunc: func(ctx context.Context, path string) {},
		}
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nav, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "alice")
		gt.NoError(t, err)
		_, err = uc.ChangePage(ctx, 3)
		gt.NoError(t, err)
		_, err = uc.Search(ctx, "bob")
		gt.NoError(t, err)

		calls := gateway.SearchGroupsCalls()
		gt.Equal(t, len(calls), 3)
		gt.Equal(t, calls[1].Query, "alice")
		gt.Equal(t, calls[1].Page.Page, 3)
		gt.Equal(t, calls[2].Query, "bob")
		gt.Equal(t, calls[2].Page.Page, 1)

		navCalls := nav.NavigateCalls()
		gt.Equal(t, len(navCalls), 2)
		gt.Equal(t, navCalls[0].Path, "/groups?query=alice")
		gt.Equal(t, navCalls[1].Path, "/groups?query=bob")
	})

	t.Run("resubmitting the same query keeps the page", func(t *testing.T) {
		gateway := newGateway(nil)
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "alice")
		gt.NoError(t, err)
		_, err = uc.ChangePage(ctx, 2)
		gt.NoError(t, err)
		_, err = uc.Search(ctx, "alice")
		gt.NoError(t, err)

		calls := gateway.SearchGroupsCalls()
		gt.Equal(t, len(calls), 3)
		gt.Equal(t, calls[2].Page.Page, 2)
	})

	t.Run("gateway failure keeps previous view and notifies", func(t *testing.T) {
		fail := false
		gateway := newGateway(map[string]*model.GroupPage{
			"alice": groupPage(info, groupA),
		})
		inner := gateway.SearchGroupsFunc
		gateway.SearchGroupsFunc = func(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
			if fail {
				return nil, goerr.New("directory unavailable")
			}
			return inner(ctx, query, page)
		}
		notifier := newNotifier()
		uc := usecase.NewGroupList(gateway, allowAll(), notifier, nil, nil, 5)
		defer uc.Close()

		good, err := uc.Search(ctx, "alice")
		gt.NoError(t, err)
		gt.Equal(t, len(good.Rows), 1)

		fail = true
		_, err = uc.Search(ctx, "bob")
		gt.Error(t, err)

		current := uc.CurrentView()
		gt.Equal(t, len(current.Rows), 1)
		gt.Equal(t, current.Rows[0].Group.ID, groupA.ID)
		gt.False(t, current.Busy)
		gt.Equal(t, len(notifier.NotifyErrorCalls()), 1)
		gt.S(t, notifier.NotifyErrorCalls()[0].Message).Contains("search")
	})

	t.Run("clear and research is idempotent", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"": groupPage(info, groupA, groupB),
		})
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "alice")
		gt.NoError(t, err)

		first, err := uc.ClearSearch(ctx)
		gt.NoError(t, err)
		second, err := uc.ClearSearch(ctx)
		gt.NoError(t, err)

		gt.Equal(t, first.Query, "")
		gt.Equal(t, *second, *first)
	})
}

func TestGroupList_Supersession(t *testing.T) {
	ctx := context.Background()

	groupSlow := model.GroupSummary{ID: types.NewGroupID(), Name: "slow"}
	groupFast := model.GroupSummary{ID: types.NewGroupID(), Name: "fast"}
	info := model.PageInfo{Page: 1, Size: 5, TotalElements: 1, TotalPages: 1}

	t.Run("newest search wins over an in-flight one", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})

		gateway := newGateway(nil)
		gateway.SearchGroupsFunc = func(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
			if query == "slow" {
				close(entered)
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				return groupPage(info, groupSlow), nil
			}
			return groupPage(info, groupFast), nil
		}

		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		slowErr := make(chan error, 1)
		go func() {
			_, err := uc.Search(ctx, "slow")
			slowErr <- err
		}()

		<-entered
		fastView, err := uc.Search(ctx, "fast")
		gt.NoError(t, err)
		gt.Equal(t, fastView.Rows[0].Group.ID, groupFast.ID)

		close(release)
		select {
		case err := <-slowErr:
			gt.Error(t, err)
			gt.True(t, errors.Is(err, context.Canceled))
		case <-time.After(time.Second):
			t.Fatal("superseded search did not settle")
		}

		// the stale cycle never overwrote the newer result
		current := uc.CurrentView()
		gt.Equal(t, current.Query, "fast")
		gt.Equal(t, current.Rows[0].Group.ID, groupFast.ID)
		gt.False(t, current.Busy)
	})
}

func TestGroupList_Watch(t *testing.T) {
	ctx := context.Background()

	group := model.GroupSummary{ID: types.NewGroupID(), Name: "alpha"}
	info := model.PageInfo{Page: 1, Size: 5, TotalElements: 1, TotalPages: 1}

	t.Run("watcher receives the settled view", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"alpha": groupPage(info, group),
		})
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		views, unsubscribe := uc.Watch()
		defer unsubscribe()

		_, err := uc.Search(ctx, "alpha")
		gt.NoError(t, err)

		// busy view may have been dropped for the settled one; the
		// latest received view must be the settled result
		var last *model.GroupListView
		for {
			select {
			case v := <-views:
				last = v
				if !v.Busy {
					gt.Equal(t, v.Query, "alpha")
					gt.Equal(t, len(v.Rows), 1)
					return
				}
			case <-time.After(time.Second):
				t.Fatalf("no settled view received, last=%v", last)
			}
		}
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		gateway := newGateway(nil)
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		views, unsubscribe := uc.Watch()
		unsubscribe()

		_, ok := <-views
		gt.False(t, ok)
	})

	t.Run("close tears everything down", func(t *testing.T) {
		gateway := newGateway(nil)
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)

		views, _ := uc.Watch()
		uc.Close()

		_, ok := <-views
		gt.False(t, ok)

		_, err := uc.Search(ctx, "alpha")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrClosed))

		// closing twice is fine
		uc.Close()
	})
}
