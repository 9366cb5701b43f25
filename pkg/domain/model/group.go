package model

import (
	"github.com/groupdesk/groupdesk/pkg/domain/types"
)

// ResourceLinks holds the resource references attached to a group.
// LinkedObject is empty when the group has no linked repository object.
type ResourceLinks struct {
	Subgroups    string `json:"subgroups" firestore:"subgroups"`
	Members      string `json:"members" firestore:"members"`
	LinkedObject string `json:"linked_object,omitempty" firestore:"linked_object,omitempty"`
}

// GroupSummary represents a group as returned by the directory.
// Immutable once fetched; enrichment builds new values around it
type GroupSummary struct {
	ID    types.GroupID `json:"id" firestore:"id"`
	Name  string        `json:"name" firestore:"name"`
	Links ResourceLinks `json:"links" firestore:"links"`
}

// HasLinkedObjectRef reports whether the summary itself carries a
// linked-object reference. The authoritative check goes through the
// directory gateway; this only reflects what the listing returned.
func (g GroupSummary) HasLinkedObjectRef() bool {
	return g.Links.LinkedObject != ""
}

// PersonSummary represents a group member as returned by the directory
type PersonSummary struct {
	ID    types.PersonID `json:"id" firestore:"id"`
	Name  string         `json:"name" firestore:"name"`
	Email string         `json:"email,omitempty" firestore:"email,omitempty"`
}
