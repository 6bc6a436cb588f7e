package category

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

const categoriesCollection = "categories"

// FirestoreStore implements Service backed by Firestore.
type FirestoreStore struct {
	col   *docstore.Collection[Category]
	files filesvc.Service
}

// NewFirestoreStore creates a new Firestore-backed category store.
func NewFirestoreStore(client *firestore.Client, files filesvc.Service) *FirestoreStore {
	return &FirestoreStore{
		col:   docstore.NewCollection[Category](client, categoriesCollection),
		files: files,
	}
}

func (s *FirestoreStore) resolveImage(ctx context.Context, imageID string) (string, error) {
	if imageID == "" {
		return "", nil
	}
	f, err := s.files.Get(ctx, imageID)
	if err != nil {
		if errors.Is(err, filesvc.ErrNotFound) {
			return "", ErrInvalidImage
		}
		return "", err
	}
	return f.URL, nil
}

// maxTreeDepth bounds ancestor walks so corrupted parent links cannot loop
// forever.
const maxTreeDepth = 32

// validateParent checks that parentID exists and that making it the parent of
// id would not close a cycle in the tree.
func (s *FirestoreStore) validateParent(ctx context.Context, id, parentID string) error {
	if parentID == "" || parentID == id {
		return ErrInvalidParent
	}
	ancestor := parentID
	for depth := 0; depth < maxTreeDepth; depth++ {
		c, err := s.col.Get(ctx, ancestor)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				return ErrInvalidParent
			}
			return err
		}
		if c.ParentID == nil {
			return nil
		}
		if *c.ParentID == id {
			return ErrInvalidParent
		}
		ancestor = *c.ParentID
	}
	return ErrInvalidParent
}

// siblingWithName finds a category with the given name under the parent,
// excluding excludeID. Used to enforce the sibling-name invariant.
func (s *FirestoreStore) siblingWithName(ctx context.Context, parentID *string, name, excludeID string) (bool, error) {
	var parentValue any
	if parentID != nil {
		parentValue = *parentID
	}
	_, id, err := s.col.FindOne(ctx, []docstore.Filter{
		{Path: "parent_id", Op: "==", Value: parentValue},
		{Path: "name", Op: "==", Value: name},
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id != excludeID, nil
}

// nextOrder returns one past the highest order among the parent's children.
func (s *FirestoreStore) nextOrder(ctx context.Context, parentID *string) (int, error) {
	var parentValue any
	if parentID != nil {
		parentValue = *parentID
	}
	items, err := s.col.List(ctx, docstore.ListQuery{
		Filters: []docstore.Filter{{Path: "parent_id", Op: "==", Value: parentValue}},
		OrderBy: "order",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 1, nil
	}
	return items[0].Data.Order + 1, nil
}

// List returns one page of categories plus the total count matching the
// filter. Results are ordered by the sibling order field.
func (s *FirestoreStore) List(ctx context.Context, params ListParams) ([]Category, int, error) {
	var filters []docstore.Filter
	if params.ParentID != nil {
		filters = append(filters, docstore.Filter{Path: "parent_id", Op: "==", Value: *params.ParentID})
	}
	items, err := s.col.List(ctx, docstore.ListQuery{
		Filters: filters,
		OrderBy: "order",
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	categories := make([]Category, 0, len(items))
	for _, item := range items {
		c := item.Data
		c.ID = item.ID
		categories = append(categories, c)
	}
	total, err := s.col.Count(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// Get retrieves a category by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Category, error) {
	c, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.ID = id
	return c, nil
}

// Create stores a new category, auto-assigning the sibling order when the
// caller does not provide one.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if params.ParentID != nil {
		if _, err := s.Get(ctx, *params.ParentID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrInvalidParent
			}
			return nil, err
		}
	}

	duplicate, err := s.siblingWithName(ctx, params.ParentID, params.Name, "")
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrAlreadyExists
	}

	imageURL, err := s.resolveImage(ctx, params.ImageID)
	if err != nil {
		return nil, err
	}

	order := 0
	if params.Order != nil {
		order = *params.Order
	} else {
		order, err = s.nextOrder(ctx, params.ParentID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	c := Category{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		ParentID:    params.ParentID,
		Order:       order,
		ImageID:     params.ImageID,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.col.Create(ctx, c.ID, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update applies a partial update and returns the new state.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Category, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	reparent := params.ParentID != nil && !sameParent(params.ParentID, current.ParentID)
	if reparent {
		if err := s.validateParent(ctx, id, *params.ParentID); err != nil {
			return nil, err
		}
	}

	if params.Name != nil || reparent {
		name := current.Name
		if params.Name != nil {
			name = *params.Name
		}
		parentID := current.ParentID
		if reparent {
			parentID = params.ParentID
		}
		duplicate, err := s.siblingWithName(ctx, parentID, name, id)
		if err != nil {
			return nil, err
		}
		if duplicate {
			return nil, ErrAlreadyExists
		}
	}

	if params.Name != nil {
		current.Name = *params.Name
	}
	if params.Description != nil {
		current.Description = *params.Description
	}
	if reparent {
		current.ParentID = params.ParentID
		// A moved category takes the next free slot under its new parent
		// unless the caller picked one.
		if params.Order == nil {
			order, err := s.nextOrder(ctx, params.ParentID)
			if err != nil {
				return nil, err
			}
			current.Order = order
		}
	}
	if params.Order != nil {
		current.Order = *params.Order
	}
	if params.ImageID != nil {
		imageURL, err := s.resolveImage(ctx, *params.ImageID)
		if err != nil {
			return nil, err
		}
		current.ImageID = *params.ImageID
		current.ImageURL = imageURL
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.col.Set(ctx, id, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a category.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	if err := s.col.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
