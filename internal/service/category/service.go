package category

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category name already used under this parent")
	ErrInvalidImage  = errors.New("invalid image reference")
	ErrInvalidParent = errors.New("invalid parent category")
)

// sameParent reports whether two parent references point at the same node,
// treating nil as the root.
func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Category is one node in the two-level catalog tree. ParentID is nil for
// root categories; Order fixes the display position among siblings.
type Category struct {
	ID          string    `firestore:"-"`
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	ParentID    *string   `firestore:"parent_id"`
	Order       int       `firestore:"order"`
	ImageID     string    `firestore:"image_id"`
	ImageURL    string    `firestore:"image_url"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

// CreateParams for creating a category. A nil Order is assigned the next
// free position under the parent.
type CreateParams struct {
	Name        string
	Description string
	ParentID    *string
	Order       *int
	ImageID     string
}

// UpdateParams for updating a category. Nil fields are left unchanged.
type UpdateParams struct {
	Name        *string
	Description *string
	ParentID    *string
	Order       *int
	ImageID     *string
}

// ListParams filter the category listing.
type ListParams struct {
	ParentID *string
	Offset   int
	Limit    int
}

// Service defines category operations.
//
// Implementations must keep the sibling-name invariant: no two categories
// under the same parent may share a name.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Category, int, error)
	Get(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, params CreateParams) (*Category, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Category, error)
	Delete(ctx context.Context, id string) error
}
