package authz_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/service/authz"
)

func TestPolicyAuthorizer(t *testing.T) {
	ctx := context.Background()
	group := model.GroupSummary{ID: types.NewGroupID(), Name: "ops"}

	t.Run("listed admin may delete", func(t *testing.T) {
		a := authz.NewPolicy(&model.Policy{Admins: []string{"alice", "bob"}})
		ok, err := a.CanDeleteGroup(ctx, "bob", group)
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("unlisted actor may not", func(t *testing.T) {
		a := authz.NewPolicy(&model.Policy{Admins: []string{"alice"}})
		ok, err := a.CanDeleteGroup(ctx, "mallory", group)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("wildcard grants everyone except the anonymous actor", func(t *testing.T) {
		a := authz.NewPolicy(&model.Policy{Admins: []string{"*"}})
		ok, err := a.CanDeleteGroup(ctx, "anyone", group)
		gt.NoError(t, err)
		gt.True(t, ok)

		ok, err = a.CanDeleteGroup(ctx, "", group)
		gt.NoError(t, err)
		gt.False(t, ok)
	})
}

func TestPolicyValidate(t *testing.T) {
	gt.NoError(t, (&model.Policy{Admins: []string{"alice"}}).Validate())
	gt.Error(t, (&model.Policy{}).Validate())
	gt.Error(t, (&model.Policy{Admins: []string{"alice", ""}}).Validate())
}
