package interfaces

//go:generate moq -out mocks/gateway_mock.go -pkg mocks . DirectoryGateway Authorizer

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

// DirectoryGateway is the data-access capability for groups and people.
// The list orchestration depends only on this contract; concrete
// implementations live under pkg/repository and pkg/service/cache.
type DirectoryGateway interface {
	// SearchGroups fetches one page of groups matching the query.
	// An empty query matches all groups; a UUID-shaped query resolves
	// as a direct identifier lookup.
	SearchGroups(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error)

	// FindSubgroups fetches the first page of a group's subgroups
	FindSubgroups(ctx context.Context, group model.GroupSummary) (*model.GroupPage, error)

	// FindMembers fetches the first page of a group's members
	FindMembers(ctx context.Context, group model.GroupSummary) (*model.PersonPage, error)

	// HasLinkedObject reports whether a repository object is linked to
	// the group. Callers in the enrichment path treat any error as
	// "no linked object" (see usecase policy).
	HasLinkedObject(ctx context.Context, group model.GroupSummary) (bool, error)

	// DeleteGroup removes a group from the directory
	DeleteGroup(ctx context.Context, id types.GroupID) error
}

// Authorizer decides whether an actor may delete a group
type Authorizer interface {
	CanDeleteGroup(ctx context.Context, actor types.ActorID, group model.GroupSummary) (bool, error)
}
