package warehouse

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
)

const warehousesCollection = "warehouses"

// FirestoreStore implements Service backed by Firestore.
type FirestoreStore struct {
	col *docstore.Collection[Warehouse]
}

// NewFirestoreStore creates a new Firestore-backed warehouse store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{col: docstore.NewCollection[Warehouse](client, warehousesCollection)}
}

// List returns one page of warehouses ordered by name plus the total count
// matching the filters.
func (s *FirestoreStore) List(ctx context.Context, params ListParams) ([]Warehouse, int, error) {
	var filters []docstore.Filter
	if params.Name != nil {
		filters = append(filters, docstore.Filter{Path: "name", Op: "==", Value: *params.Name})
	}
	if params.Location != nil {
		filters = append(filters, docstore.Filter{Path: "location", Op: "==", Value: *params.Location})
	}
	items, err := s.col.List(ctx, docstore.ListQuery{
		Filters: filters,
		OrderBy: "name",
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	warehouses := make([]Warehouse, 0, len(items))
	for _, item := range items {
		w := item.Data
		w.ID = item.ID
		warehouses = append(warehouses, w)
	}
	total, err := s.col.Count(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	return warehouses, total, nil
}

// Get retrieves a warehouse by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Warehouse, error) {
	w, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	w.ID = id
	return w, nil
}

// Create stores a new warehouse.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Warehouse, error) {
	now := time.Now().UTC()
	w := Warehouse{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Location:  params.Location,
		Capacity:  params.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.col.Create(ctx, w.ID, w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Update applies a partial update and returns the new state.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Warehouse, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		current.Name = *params.Name
	}
	if params.Location != nil {
		current.Location = *params.Location
	}
	if params.Capacity != nil {
		current.Capacity = *params.Capacity
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.col.Set(ctx, id, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a warehouse.
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
