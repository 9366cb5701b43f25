package usecase

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// assemblePage enriches every group of one fetched page. Rows are
// enriched concurrently but keep the input ordering; tombstoned groups
// are compacted out of the result. The page metadata passes through
// untouched: a dropped row is a display omission, not a recount. One
// failed row fails the whole page, since a published view must be
// complete, never partially enriched.
func (u *GroupList) assemblePage(ctx context.Context, groups []model.GroupSummary, info model.PageInfo) ([]model.GroupRow, model.PageInfo, error) {
	if len(groups) == 0 {
		return []model.GroupRow{}, info, nil
	}

	rows := make([]*model.GroupRow, len(groups))

	eg, ctx := errgroup.WithContext(ctx)
	for i, group := range groups {
		eg.Go(func() error {
			row, err := u.enrichRow(ctx, group)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, info, err
	}

	out := make([]model.GroupRow, 0, len(groups))
	for _, row := range rows {
		if row != nil {
			out = append(out, *row)
		}
	}
	return out, info, nil
}
