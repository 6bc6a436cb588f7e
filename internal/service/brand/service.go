package brand

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound     = errors.New("brand not found")
	ErrInvalidImage = errors.New("invalid image reference")
)

// Brand is a product manufacturer or label.
type Brand struct {
	ID          string    `firestore:"-"`
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	ImageID     string    `firestore:"image_id"`
	ImageURL    string    `firestore:"image_url"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

// CreateParams for creating a brand. ImageID, when set, must reference an
// existing file; the stored image URL is resolved from it.
type CreateParams struct {
	Name        string
	Description string
	ImageID     string
}

// UpdateParams for updating a brand. Nil fields are left unchanged; an empty
// ImageID clears both the reference and the resolved URL.
type UpdateParams struct {
	Name        *string
	Description *string
	ImageID     *string
}

// Service defines brand operations.
type Service interface {
	List(ctx context.Context, offset, limit int) ([]Brand, int, error)
	Get(ctx context.Context, id string) (*Brand, error)
	Create(ctx context.Context, params CreateParams) (*Brand, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Brand, error)
	Delete(ctx context.Context, id string) error
}
