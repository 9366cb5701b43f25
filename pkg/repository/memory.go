package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements DirectoryGateway with in-memory storage. Used as
// the serve-mode fallback when Firestore is not configured, and by
// integration-style tests.
type Memory struct {
	mu        sync.RWMutex
	groups    map[types.GroupID]model.GroupSummary
	people    map[types.PersonID]model.PersonSummary
	subgroups map[types.GroupID][]types.GroupID
	members   map[types.GroupID][]types.PersonID
	linked    map[types.GroupID]string
}

// NewMemory creates a new in-memory directory
func NewMemory() *Memory {
	return &Memory{
		groups:    make(map[types.GroupID]model.GroupSummary),
		people:    make(map[types.PersonID]model.PersonSummary),
		subgroups: make(map[types.GroupID][]types.GroupID),
		members:   make(map[types.GroupID][]types.PersonID),
		linked:    make(map[types.GroupID]string),
	}
}

// AddGroup inserts a group. linkedObject is empty when the group has no
// linked repository object.
func (m *Memory) AddGroup(group model.GroupSummary, linkedObject string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	group.Links = groupLinks(group.ID, linkedObject)
	m.groups[group.ID] = group
	if linkedObject != "" {
		m.linked[group.ID] = linkedObject
	}
}

// AddPerson inserts a person
func (m *Memory) AddPerson(person model.PersonSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.people[person.ID] = person
}

// SetSubgroups sets the subgroup relation of a group
func (m *Memory) SetSubgroups(id types.GroupID, subgroupIDs []types.GroupID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subgroups[id] = append([]types.GroupID(nil), subgroupIDs...)
}

// SetMembers sets the member relation of a group
func (m *Memory) SetMembers(id types.GroupID, personIDs []types.PersonID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[id] = append([]types.PersonID(nil), personIDs...)
}

// SearchGroups returns one page of groups matching the query. Matching
// is case-insensitive substring on the name; a UUID-shaped query is an
// exact identifier lookup; the empty query matches all. Results are
// ordered by name for deterministic pagination.
func (m *Memory) SearchGroups(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "search cancelled")
	}
	page = page.Normalize()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []model.GroupSummary
	if query != "" && types.IsUUID(query) {
		if g, ok := m.groups[types.GroupID(query)]; ok {
			matched = append(matched, g)
		}
	} else {
		needle := strings.ToLower(query)
		for _, g := range m.groups {
			if needle == "" || strings.Contains(strings.ToLower(g.Name), needle) {
				matched = append(matched, g)
			}
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := (page.Page - 1) * page.Size
	if start > total {
		start = total
	}
	end := start + page.Size
	if end > total {
		end = total
	}

	return &model.GroupPage{
		Groups: append([]model.GroupSummary{}, matched[start:end]...),
		Info: model.PageInfo{
			Page:          page.Page,
			Size:          page.Size,
			TotalElements: total,
			TotalPages:    pagesFor(total, page.Size),
		},
	}, nil
}

// FindSubgroups returns the first page of a group's subgroups
func (m *Memory) FindSubgroups(ctx context.Context, group model.GroupSummary) (*model.GroupPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.groups[group.ID]; !ok {
		return nil, goerr.Wrap(model.ErrGroupNotFound, "cannot list subgroups",
			goerr.V("groupID", group.ID))
	}

	ids := m.subgroups[group.ID]
	out := make([]model.GroupSummary, 0, len(ids))
	for _, id := range ids {
		if g, ok := m.groups[id]; ok {
			out = append(out, g)
		}
	}

	return &model.GroupPage{
		Groups: out,
		Info: model.PageInfo{
			Page:          1,
			Size:          model.DefaultPageSize,
			TotalElements: len(out),
			TotalPages:    1,
		},
	}, nil
}

// FindMembers returns the first page of a group's members
func (m *Memory) FindMembers(ctx context.Context, group model.GroupSummary) (*model.PersonPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.groups[group.ID]; !ok {
		return nil, goerr.Wrap(model.ErrGroupNotFound, "cannot list members",
			goerr.V("groupID", group.ID))
	}

	ids := m.members[group.ID]
	out := make([]model.PersonSummary, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.people[id]; ok {
			out = append(out, p)
		}
	}

	return &model.PersonPage{
		People: out,
		Info: model.PageInfo{
			Page:          1,
			Size:          model.DefaultPageSize,
			TotalElements: len(out),
			TotalPages:    1,
		},
	}, nil
}

// HasLinkedObject reports whether a repository object is linked to the group
func (m *Memory) HasLinkedObject(ctx context.Context, group model.GroupSummary) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.groups[group.ID]; !ok {
		return false, goerr.Wrap(model.ErrGroupNotFound, "cannot check linked object",
			goerr.V("groupID", group.ID))
	}
	_, linked := m.linked[group.ID]
	return linked, nil
}

// DeleteGroup removes a group and its relations
func (m *Memory) DeleteGroup(ctx context.Context, id types.GroupID) error {
	if id == "" {
		return goerr.New("group ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.groups[id]; !ok {
		return goerr.Wrap(model.ErrGroupNotFound, "cannot delete",
			goerr.V("groupID", id))
	}

	delete(m.groups, id)
	delete(m.subgroups, id)
	delete(m.members, id)
	delete(m.linked, id)

	// drop the group from other groups' subgroup relations
	for parent, ids := range m.subgroups {
		kept := ids[:0]
		for _, sid := range ids {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		m.subgroups[parent] = kept
	}

	return nil
}

func groupLinks(id types.GroupID, linkedObject string) model.ResourceLinks {
	links := model.ResourceLinks{
		Subgroups: "/api/groups/" + id.String() + "/subgroups",
		Members:   "/api/groups/" + id.String() + "/members",
	}
	if linkedObject != "" {
		links.LinkedObject = "/api/objects/" + linkedObject
	}
	return links
}

var _ interfaces.DirectoryGateway = (*Memory)(nil)
