package types

import (
	"github.com/google/uuid"
)

// GroupID represents a group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// NewGroupID creates a new GroupID
func NewGroupID() GroupID {
	return GroupID(uuid.New().String())
}

// PersonID represents a person identifier
type PersonID string

// String returns the string representation
func (id PersonID) String() string {
	return string(id)
}

// NewPersonID creates a new PersonID
func NewPersonID() PersonID {
	return PersonID(uuid.New().String())
}

// ActorID identifies the actor performing an operation
type ActorID string

// String returns the string representation
func (id ActorID) String() string {
	return string(id)
}

// CacheScope is a key prefix identifying a set of cached pages
type CacheScope string

// String returns the string representation
func (s CacheScope) String() string {
	return string(s)
}

// ScopeGroups covers every cached page of the group collection
const ScopeGroups CacheScope = "groups"

// IsUUID reports whether the query text is UUID-shaped, in which case
// searches resolve it as a direct identifier lookup
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
