package store

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
)

const storesCollection = "stores"

// FirestoreStore implements Service backed by Firestore.
type FirestoreStore struct {
	col *docstore.Collection[Store]
}

// NewFirestoreStore creates a new Firestore-backed store service.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{col: docstore.NewCollection[Store](client, storesCollection)}
}

// sortField maps a sort_by value to an order field and direction.
// Unknown values fall back to name ascending.
func sortField(sortBy string) (string, bool) {
	switch sortBy {
	case SortNameDesc:
		return "name", true
	case SortCreated:
		return "created_at", false
	case SortCreatedDesc:
		return "created_at", true
	default:
		return "name", false
	}
}

// List returns one page of stores plus the total count.
func (s *FirestoreStore) List(ctx context.Context, params ListParams) ([]Store, int, error) {
	orderBy, desc := sortField(params.SortBy)
	items, err := s.col.List(ctx, docstore.ListQuery{
		OrderBy: orderBy,
		Desc:    desc,
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	stores := make([]Store, 0, len(items))
	for _, item := range items {
		st := item.Data
		st.ID = item.ID
		stores = append(stores, st)
	}
	total, err := s.col.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return stores, total, nil
}

// Get retrieves a store by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Store, error) {
	st, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	st.ID = id
	return st, nil
}

// Create stores a new retail location.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Store, error) {
	now := time.Now().UTC()
	st := Store{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Address:   params.Address,
		Phone:     params.Phone,
		IsActive:  params.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.col.Create(ctx, st.ID, st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Update applies a partial update and returns the new state.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Store, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		current.Name = *params.Name
	}
	if params.Address != nil {
		current.Address = *params.Address
	}
	if params.Phone != nil {
		current.Phone = *params.Phone
	}
	if params.IsActive != nil {
		current.IsActive = *params.IsActive
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.col.Set(ctx, id, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a store.
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
