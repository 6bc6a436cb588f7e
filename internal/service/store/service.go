package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no store matches the requested ID.
var ErrNotFound = errors.New("store not found")

// Sort orders accepted by List.
const (
	SortName        = "name"
	SortNameDesc    = "name_desc"
	SortCreated     = "created_at"
	SortCreatedDesc = "created_at_desc"
)

// Store is a physical retail location.
type Store struct {
	ID        string    `firestore:"-"`
	Name      string    `firestore:"name"`
	Address   string    `firestore:"address"`
	Phone     string    `firestore:"phone"`
	IsActive  bool      `firestore:"is_active"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// CreateParams for creating a store.
type CreateParams struct {
	Name     string
	Address  string
	Phone    string
	IsActive bool
}

// UpdateParams for updating a store. Nil fields are left unchanged.
type UpdateParams struct {
	Name     *string
	Address  *string
	Phone    *string
	IsActive *bool
}

// ListParams control ordering and paging of the store listing.
type ListParams struct {
	SortBy string
	Offset int
	Limit  int
}

// Service defines store operations.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Store, int, error)
	Get(ctx context.Context, id string) (*Store, error)
	Create(ctx context.Context, params CreateParams) (*Store, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Store, error)
	Delete(ctx context.Context, id string) error
}
