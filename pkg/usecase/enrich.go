package usecase

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// enrichRow builds the display row for one group. The four lookups
// (delete authorization, linked object, subgroups, members) run
// concurrently and the row resolves when all of them have resolved.
// A nil row with nil error means the group is tombstoned and must be
// dropped from the page.
//
// Failure policy: a linked-object lookup error is absorbed as "no
// linked object" so a transient outage never makes a group appear
// permanently non-deletable. Authorization, subgroup and member
// lookup errors propagate and fail the row.
func (u *GroupList) enrichRow(ctx context.Context, group model.GroupSummary) (*model.GroupRow, error) {
	if u.isTombstoned(group.ID) {
		// deleted locally; the directory may still return it until
		// its caches catch up
		return nil, nil
	}

	actor := model.ActorFrom(ctx)

	var (
		authorized bool
		linked     bool
		subgroups  []model.GroupSummary
		members    []model.PersonSummary
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		ok, err := u.authz.CanDeleteGroup(ctx, actor, group)
		if err != nil {
			return goerr.Wrap(err, "failed to check delete authorization",
				goerr.V("groupID", group.ID))
		}
		authorized = ok
		return nil
	})

	eg.Go(func() error {
		ok, err := u.gateway.HasLinkedObject(ctx, group)
		if err != nil {
			ctxlog.From(ctx).Warn("Linked object lookup failed, assuming none",
				"groupID", group.ID,
				"error", err,
			)
			return nil
		}
		linked = ok
		return nil
	})

	eg.Go(func() error {
		page, err := u.gateway.FindSubgroups(ctx, group)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch subgroups",
				goerr.V("groupID", group.ID))
		}
		if page != nil {
			subgroups = page.Groups
		}
		return nil
	})

	eg.Go(func() error {
		page, err := u.gateway.FindMembers(ctx, group)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch members",
				goerr.V("groupID", group.ID))
		}
		if page != nil {
			members = page.People
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &model.GroupRow{
		Group:        group,
		AbleToDelete: authorized && !linked,
		Subgroups:    subgroups,
		Members:      members,
	}, nil
}
