package authz

import (
	"context"

	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

// PolicyAuthorizer decides delete authorization from a static policy.
// An unknown or absent actor is simply not authorized; that is a
// normal answer, not an error.
type PolicyAuthorizer struct {
	policy *model.Policy
}

// NewPolicy creates an authorizer over the given policy
func NewPolicy(policy *model.Policy) *PolicyAuthorizer {
	return &PolicyAuthorizer{policy: policy}
}

// CanDeleteGroup reports whether the actor may delete the group
func (a *PolicyAuthorizer) CanDeleteGroup(ctx context.Context, actor types.ActorID, group model.GroupSummary) (bool, error) {
	return a.policy.Allows(actor), nil
}

var _ interfaces.Authorizer = (*PolicyAuthorizer)(nil)
