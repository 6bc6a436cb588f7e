package warehouse

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no warehouse matches the requested ID.
var ErrNotFound = errors.New("warehouse not found")

// Warehouse is a storage facility with a unit capacity.
type Warehouse struct {
	ID        string    `firestore:"-"`
	Name      string    `firestore:"name"`
	Location  string    `firestore:"location"`
	Capacity  int       `firestore:"capacity"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// CreateParams for creating a warehouse.
type CreateParams struct {
	Name     string
	Location string
	Capacity int
}

// UpdateParams for updating a warehouse. Nil fields are left unchanged.
type UpdateParams struct {
	Name     *string
	Location *string
	Capacity *int
}

// ListParams filter the warehouse listing by exact name or location.
type ListParams struct {
	Name     *string
	Location *string
	Offset   int
	Limit    int
}

// Service defines warehouse operations.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Warehouse, int, error)
	Get(ctx context.Context, id string) (*Warehouse, error)
	Create(ctx context.Context, params CreateParams) (*Warehouse, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Warehouse, error)
	Delete(ctx context.Context, id string) error
}
