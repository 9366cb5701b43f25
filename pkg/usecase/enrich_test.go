package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces/mocks"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/usecase"
)

func TestRowEnrichment(t *testing.T) {
	ctx := context.Background()

	group := model.GroupSummary{ID: types.NewGroupID(), Name: "platform"}
	info := model.PageInfo{Page: 1, Size: 5, TotalElements: 1, TotalPages: 1}

	t.Run("linked object failure does not block deletion eligibility", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		gateway.HasLinkedObjectFunc = func(ctx context.Context, g model.GroupSummary) (bool, error) {
			return false, goerr.New("object service down")
		}
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		view, err := uc.Search(ctx, "platform")
		gt.NoError(t, err)
		gt.Equal(t, len(view.Rows), 1)
		gt.True(t, view.Rows[0].AbleToDelete)
	})

	t.Run("linked object blocks deletion even when authorized", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		gateway.HasLinkedObjectFunc = func(ctx context.Context, g model.GroupSummary) (bool, error) {
			return true, nil
		}
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		view, err := uc.Search(ctx, "platform")
		gt.NoError(t, err)
		gt.False(t, view.Rows[0].AbleToDelete)
	})

	t.Run("member lookup failure fails the whole cycle", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		gateway.FindMembersFunc = func(ctx context.Context, g model.GroupSummary) (*model.PersonPage, error) {
			return nil, goerr.New("people service down")
		}
		notifier := newNotifier()
		uc := usecase.NewGroupList(gateway, allowAll(), notifier, nil, nil, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "platform")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("members")
		gt.Equal(t, len(uc.CurrentView().Rows), 0)
		gt.Equal(t, len(notifier.NotifyErrorCalls()), 1)
	})

	t.Run("authorization lookup failure fails the whole cycle", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		authz := &mocks.AuthorizerMock{
			CanDeleteGroupFunc: func(ctx context.Context, actor types.ActorID, g model.GroupSummary) (bool, error) {
				return false, goerr.New("authz unavailable")
			},
		}
		uc := usecase.NewGroupList(gateway, authz, newNotifier(), nil, nil, 5)
		defer uc.Close()

		_, err := uc.Search(ctx, "platform")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("authorization")
	})

	t.Run("authorization receives the actor from context", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		authz := allowAll()
		uc := usecase.NewGroupList(gateway, authz, newNotifier(), nil, nil, 5)
		defer uc.Close()

		actorCtx := model.WithActor(ctx, types.ActorID("admin@example.com"))
		_, err := uc.Search(actorCtx, "platform")
		gt.NoError(t, err)

		calls := authz.CanDeleteGroupCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Actor, types.ActorID("admin@example.com"))
		gt.Equal(t, calls[0].Group.ID, group.ID)
	})

	t.Run("unauthorized actor gets a row without delete", func(t *testing.T) {
		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		authz := &mocks.AuthorizerMock{
			CanDeleteGroupFunc: func(ctx context.Context, actor types.ActorID, g model.GroupSummary) (bool, error) {
				return false, nil
			},
		}
		uc := usecase.NewGroupList(gateway, authz, newNotifier(), nil, nil, 5)
		defer uc.Close()

		view, err := uc.Search(ctx, "platform")
		gt.NoError(t, err)
		gt.Equal(t, len(view.Rows), 1)
		gt.False(t, view.Rows[0].AbleToDelete)
	})

	t.Run("row carries subgroups and members", func(t *testing.T) {
		sub := model.GroupSummary{ID: types.NewGroupID(), Name: "platform-oncall"}
		person := model.PersonSummary{ID: types.NewPersonID(), Name: "Sana", Email: "sana@example.com"}

		gateway := newGateway(map[string]*model.GroupPage{
			"platform": groupPage(info, group),
		})
		gateway.FindSubgroupsFunc = func(ctx context.Context, g model.GroupSummary) (*model.GroupPage, error) {
			return &model.GroupPage{Groups: []model.GroupSummary{sub}}, nil
		}
		gateway.FindMembersFunc = func(ctx context.Context, g model.GroupSummary) (*model.PersonPage, error) {
			return &model.PersonPage{People: []model.PersonSummary{person}}, nil
		}
		uc := usecase.NewGroupList(gateway, allowAll(), newNotifier(), nil, nil, 5)
		defer uc.Close()

		view, err := uc.Search(ctx, "platform")
		gt.NoError(t, err)
		gt.Equal(t, view.Rows[0].Subgroups, []model.GroupSummary{sub})
		gt.Equal(t, view.Rows[0].Members, []model.PersonSummary{person})
	})
}
