package model

// GroupRow is one enriched group for display: the group itself plus the
// fields derived for it in the current search cycle. Rows are built
// fresh per cycle and never mutated afterwards.
type GroupRow struct {
	Group        GroupSummary    `json:"group"`
	AbleToDelete bool            `json:"able_to_delete"`
	Subgroups    []GroupSummary  `json:"subgroups"`
	Members      []PersonSummary `json:"members"`
}

// GroupListView is the published view of the group list: the rows of
// the latest completed search cycle, its pagination metadata, and
// whether a cycle is currently in flight. Views are replaced wholesale
// on publication, never updated in place.
type GroupListView struct {
	Query string     `json:"query"`
	Rows  []GroupRow `json:"rows"`
	Page  PageInfo   `json:"page"`
	Busy  bool       `json:"busy"`
}

// Clone returns a copy sharing the (immutable) row values
func (v *GroupListView) Clone() *GroupListView {
	if v == nil {
		return nil
	}
	cp := *v
	cp.Rows = make([]GroupRow, len(v.Rows))
	copy(cp.Rows, v.Rows)
	return &cp
}
