package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/groupdesk/groupdesk/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

// DeleteGroup removes a group from the directory. On success the group
// is tombstoned for the rest of the session, the cached group pages are
// invalidated, and a fresh search cycle is requested in the background.
// On failure nothing changes; the row stays visible and the caller may
// retry by invoking delete again.
func (u *GroupList) DeleteGroup(ctx context.Context, group model.GroupSummary) error {
	if group.ID == "" {
		// nothing to delete without an identity
		return nil
	}

	if err := u.gateway.DeleteGroup(ctx, group.ID); err != nil {
		u.notify.NotifyError(ctx, fmt.Sprintf("Failed to delete group %q", group.Name), err)
		return goerr.Wrap(err, "failed to delete group",
			goerr.V("groupID", group.ID),
			goerr.V("name", group.Name))
	}

	u.mu.Lock()
	// tombstones accumulate for the whole session; the directory may
	// keep listing the group until its own caches expire
	u.tombstoned[group.ID] = struct{}{}
	u.mu.Unlock()

	u.notify.NotifySuccess(ctx, fmt.Sprintf("Group %q deleted", group.Name))

	if u.cache != nil {
		u.cache.Invalidate(types.ScopeGroups)
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := u.Refresh(ctx)
		if err != nil && !errors.Is(err, model.ErrClosed) && !errors.Is(err, context.Canceled) {
			return goerr.Wrap(err, "refresh after delete failed",
				goerr.V("groupID", group.ID))
		}
		return nil
	})

	return nil
}
