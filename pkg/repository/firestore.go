package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	groupsCollection = "groups"
	peopleCollection = "people"

	// Field names. Firestore fields match the struct tags below.
	fieldName = "name"

	//  sorts after every valid name rune, closing the prefix range
	prefixRangeEnd = ""
)

// groupDoc is the Firestore document shape for a group
type groupDoc struct {
	ID           string   `firestore:"id"`
	Name         string   `firestore:"name"`
	LinkedObject string   `firestore:"linked_object,omitempty"`
	SubgroupIDs  []string `firestore:"subgroup_ids,omitempty"`
	MemberIDs    []string `firestore:"member_ids,omitempty"`
}

func (d *groupDoc) summary() model.GroupSummary {
	return model.GroupSummary{
		ID:    types.GroupID(d.ID),
		Name:  d.Name,
		Links: groupLinks(types.GroupID(d.ID), d.LinkedObject),
	}
}

// personDoc is the Firestore document shape for a person
type personDoc struct {
	ID    string `firestore:"id"`
	Name  string `firestore:"name"`
	Email string `firestore:"email,omitempty"`
}

// Firestore implements DirectoryGateway backed by Cloud Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore directory gateway
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad credentials; an empty collection is fine
	_, err = client.Collection(groupsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore directory initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

// Close closes the underlying client
func (f *Firestore) Close() error {
	return f.client.Close()
}

// SearchGroups fetches one page of groups. The empty query lists all
// groups ordered by name; a UUID-shaped query is a direct document
// lookup; anything else is a name prefix range query.
func (f *Firestore) SearchGroups(ctx context.Context, query string, page model.PageRequest) (*model.GroupPage, error) {
	page = page.Normalize()

	if query != "" && types.IsUUID(query) {
		return f.lookupGroupPage(ctx, types.GroupID(query), page)
	}

	q := f.client.Collection(groupsCollection).Query
	if query != "" {
		q = q.Where(fieldName, ">=", query).Where(fieldName, "<", query+prefixRangeEnd)
	}
	q = q.OrderBy(fieldName, firestore.Asc)

	total, err := f.countDocs(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count groups",
			goerr.V("query", query))
	}

	iter := q.Offset((page.Page - 1) * page.Size).Limit(page.Size).Documents(ctx)
	defer iter.Stop()

	var groups []model.GroupSummary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate groups",
				goerr.V("query", query))
		}

		var gd groupDoc
		if err := doc.DataTo(&gd); err != nil {
			return nil, goerr.Wrap(err, "failed to decode group")
		}
		groups = append(groups, gd.summary())
	}

	return &model.GroupPage{
		Groups: groups,
		Info: model.PageInfo{
			Page:          page.Page,
			Size:          page.Size,
			TotalElements: total,
			TotalPages:    pagesFor(total, page.Size),
		},
	}, nil
}

// FindSubgroups fetches the first page of a group's subgroups
func (f *Firestore) FindSubgroups(ctx context.Context, group model.GroupSummary) (*model.GroupPage, error) {
	gd, err := f.getGroupDoc(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	ids := gd.SubgroupIDs
	total := len(ids)
	if len(ids) > model.DefaultPageSize {
		ids = ids[:model.DefaultPageSize]
	}

	groups := make([]model.GroupSummary, 0, len(ids))
	for _, id := range ids {
		sub, err := f.getGroupDoc(ctx, types.GroupID(id))
		if err != nil {
			if goerr.HasTag(err, errTagNotFound) {
				// dangling relation; skip
				continue
			}
			return nil, err
		}
		groups = append(groups, sub.summary())
	}

	return &model.GroupPage{
		Groups: groups,
		Info: model.PageInfo{
			Page:          1,
			Size:          model.DefaultPageSize,
			TotalElements: total,
			TotalPages:    pagesFor(total, model.DefaultPageSize),
		},
	}, nil
}

// FindMembers fetches the first page of a group's members
func (f *Firestore) FindMembers(ctx context.Context, group model.GroupSummary) (*model.PersonPage, error) {
	gd, err := f.getGroupDoc(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	ids := gd.MemberIDs
	total := len(ids)
	if len(ids) > model.DefaultPageSize {
		ids = ids[:model.DefaultPageSize]
	}

	people := make([]model.PersonSummary, 0, len(ids))
	for _, id := range ids {
		doc, err := f.client.Collection(peopleCollection).Doc(id).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return nil, goerr.Wrap(err, "failed to get person",
				goerr.V("personID", id))
		}

		var pd personDoc
		if err := doc.DataTo(&pd); err != nil {
			return nil, goerr.Wrap(err, "failed to decode person")
		}
		people = append(people, model.PersonSummary{
			ID:    types.PersonID(pd.ID),
			Name:  pd.Name,
			Email: pd.Email,
		})
	}

	return &model.PersonPage{
		People: people,
		Info: model.PageInfo{
			Page:          1,
			Size:          model.DefaultPageSize,
			TotalElements: total,
			TotalPages:    pagesFor(total, model.DefaultPageSize),
		},
	}, nil
}

// HasLinkedObject reports whether the group references a repository object
func (f *Firestore) HasLinkedObject(ctx context.Context, group model.GroupSummary) (bool, error) {
	gd, err := f.getGroupDoc(ctx, group.ID)
	if err != nil {
		return false, err
	}
	return gd.LinkedObject != "", nil
}

// DeleteGroup removes a group document
func (f *Firestore) DeleteGroup(ctx context.Context, id types.GroupID) error {
	if id == "" {
		return goerr.New("group ID is empty")
	}

	ref := f.client.Collection(groupsCollection).Doc(id.String())
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrGroupNotFound, "cannot delete",
				goerr.V("groupID", id))
		}
		return goerr.Wrap(err, "failed to get group before delete",
			goerr.V("groupID", id))
	}

	if _, err := ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete group",
			goerr.V("groupID", id))
	}
	return nil
}

var errTagNotFound = goerr.NewTag("not_found")

func (f *Firestore) getGroupDoc(ctx context.Context, id types.GroupID) (*groupDoc, error) {
	if id == "" {
		return nil, goerr.New("group ID is empty")
	}

	doc, err := f.client.Collection(groupsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrGroupNotFound, "group not in directory",
				goerr.V("groupID", id), goerr.T(errTagNotFound))
		}
		return nil, goerr.Wrap(err, "failed to get group",
			goerr.V("groupID", id))
	}

	var gd groupDoc
	if err := doc.DataTo(&gd); err != nil {
		return nil, goerr.Wrap(err, "failed to decode group",
			goerr.V("groupID", id))
	}
	return &gd, nil
}

// lookupGroupPage resolves a UUID query as a single-group page
func (f *Firestore) lookupGroupPage(ctx context.Context, id types.GroupID, page model.PageRequest) (*model.GroupPage, error) {
	gd, err := f.getGroupDoc(ctx, id)
	if err != nil {
		if goerr.HasTag(err, errTagNotFound) {
			return &model.GroupPage{
				Groups: []model.GroupSummary{},
				Info:   model.PageInfo{Page: page.Page, Size: page.Size},
			}, nil
		}
		return nil, err
	}

	groups := []model.GroupSummary{}
	if page.Page == 1 {
		groups = append(groups, gd.summary())
	}
	return &model.GroupPage{
		Groups: groups,
		Info: model.PageInfo{
			Page:          page.Page,
			Size:          page.Size,
			TotalElements: 1,
			TotalPages:    1,
		},
	}, nil
}

// countDocs counts matches with a keys-only scan. Avoids aggregation
// queries so no extra index setup is required.
func (f *Firestore) countDocs(ctx context.Context, q firestore.Query) (int, error) {
	iter := q.Select().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, goerr.Wrap(err, "failed to count documents")
		}
		count++
	}
	return count, nil
}

func pagesFor(total, size int) int {
	if total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

var _ interfaces.DirectoryGateway = (*Firestore)(nil)
