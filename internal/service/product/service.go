package product

import (
	"context"
	"errors"
	"time"

	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

// Service errors
var (
	ErrNotFound        = errors.New("product not found")
	ErrSKUExists       = errors.New("sku already in use")
	ErrInvalidBrand    = errors.New("invalid brand reference")
	ErrInvalidCategory = errors.New("invalid category reference")
	ErrInvalidImage    = errors.New("invalid image reference")
)

// Sort orders accepted by List. CreatedDesc is the default.
const (
	SortNameAsc     = "name_asc"
	SortNameDesc    = "name_desc"
	SortCreatedAsc  = "created_asc"
	SortCreatedDesc = "created_desc"
)

// Product is a catalog item. Brand, Category and Images are populated from
// the referenced documents on read; they are never stored on the product.
// DeletedAt marks a soft-deleted product.
type Product struct {
	ID             string     `firestore:"-"`
	Name           string     `firestore:"name"`
	Description    string     `firestore:"description"`
	SKU            string     `firestore:"sku"`
	Price          float64    `firestore:"price"`
	Stock          int        `firestore:"stock"`
	BrandID        string     `firestore:"brand_id"`
	CategoryID     string     `firestore:"category_id"`
	Tags           []string   `firestore:"tags"`
	IsActive       bool       `firestore:"is_active"`
	PrimaryImageID string     `firestore:"primary_image_id"`
	ImageIDs       []string   `firestore:"image_ids"`
	CreatedAt      time.Time  `firestore:"created_at"`
	UpdatedAt      time.Time  `firestore:"updated_at"`
	DeletedAt      *time.Time `firestore:"deleted_at"`

	Brand    *brandsvc.Brand       `firestore:"-"`
	Category *categorysvc.Category `firestore:"-"`
	Images   []filesvc.File        `firestore:"-"`
}

// CreateParams for creating a product. BrandID and CategoryID must reference
// existing documents; PrimaryImageID and ImageIDs must reference existing
// files. SKU must be unique among non-deleted products.
type CreateParams struct {
	Name           string
	Description    string
	SKU            string
	Price          float64
	Stock          int
	BrandID        string
	CategoryID     string
	Tags           []string
	IsActive       bool
	PrimaryImageID string
	ImageIDs       []string
}

// UpdateParams for updating a product. Nil fields are left unchanged.
type UpdateParams struct {
	Name           *string
	Description    *string
	SKU            *string
	Price          *float64
	Stock          *int
	BrandID        *string
	CategoryID     *string
	Tags           *[]string
	IsActive       *bool
	PrimaryImageID *string
	ImageIDs       *[]string
}

// ListParams filter the product listing. Tags matches products carrying any
// of the given tags. Soft-deleted products are hidden unless IncludeDeleted.
type ListParams struct {
	BrandID        *string
	CategoryID     *string
	IsActive       *bool
	Tags           []string
	IncludeDeleted bool
	Sort           string
	Offset         int
	Limit          int
}

// Service defines product operations. Delete is a soft delete; the document
// stays in place with deleted_at set.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Product, int, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, params CreateParams) (*Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id string) error
}
