package product

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

const productsCollection = "products"

// FirestoreStore implements Service backed by Firestore. Brand, category and
// file services validate references on write and populate them on read.
type FirestoreStore struct {
	col        *docstore.Collection[Product]
	brands     brandsvc.Service
	categories categorysvc.Service
	files      filesvc.Service
}

// NewFirestoreStore creates a new Firestore-backed product store.
func NewFirestoreStore(client *firestore.Client, brands brandsvc.Service, categories categorysvc.Service, files filesvc.Service) *FirestoreStore {
	return &FirestoreStore{
		col:        docstore.NewCollection[Product](client, productsCollection),
		brands:     brands,
		categories: categories,
		files:      files,
	}
}

// checkRefs validates brand, category and image references.
func (s *FirestoreStore) checkRefs(ctx context.Context, brandID, categoryID, primaryImageID string, imageIDs []string) error {
	if brandID != "" {
		if _, err := s.brands.Get(ctx, brandID); err != nil {
			if errors.Is(err, brandsvc.ErrNotFound) {
				return ErrInvalidBrand
			}
			return err
		}
	}
	if categoryID != "" {
		if _, err := s.categories.Get(ctx, categoryID); err != nil {
			if errors.Is(err, categorysvc.ErrNotFound) {
				return ErrInvalidCategory
			}
			return err
		}
	}
	ids := imageIDs
	if primaryImageID != "" {
		ids = append([]string{primaryImageID}, imageIDs...)
	}
	for _, id := range ids {
		if _, err := s.files.Get(ctx, id); err != nil {
			if errors.Is(err, filesvc.ErrNotFound) {
				return ErrInvalidImage
			}
			return err
		}
	}
	return nil
}

// skuTaken reports whether another non-deleted product uses the SKU.
func (s *FirestoreStore) skuTaken(ctx context.Context, sku, excludeID string) (bool, error) {
	_, id, err := s.col.FindOne(ctx, []docstore.Filter{
		{Path: "sku", Op: "==", Value: sku},
		{Path: "deleted_at", Op: "==", Value: nil},
	})
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id != excludeID, nil
}

// populate fills Brand, Category and Images from the referenced documents.
// Dangling references are left nil rather than failing the read.
func (s *FirestoreStore) populate(ctx context.Context, p *Product) error {
	if p.BrandID != "" {
		b, err := s.brands.Get(ctx, p.BrandID)
		if err != nil && !errors.Is(err, brandsvc.ErrNotFound) {
			return err
		}
		p.Brand = b
	}
	if p.CategoryID != "" {
		c, err := s.categories.Get(ctx, p.CategoryID)
		if err != nil && !errors.Is(err, categorysvc.ErrNotFound) {
			return err
		}
		p.Category = c
	}
	ids := p.ImageIDs
	if p.PrimaryImageID != "" {
		ids = append([]string{p.PrimaryImageID}, p.ImageIDs...)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		f, err := s.files.Get(ctx, id)
		if err != nil {
			if errors.Is(err, filesvc.ErrNotFound) {
				continue
			}
			return err
		}
		p.Images = append(p.Images, *f)
	}
	return nil
}

func sortField(sortBy string) (string, bool) {
	switch sortBy {
	case SortNameAsc:
		return "name", false
	case SortNameDesc:
		return "name", true
	case SortCreatedAsc:
		return "created_at", false
	default:
		return "created_at", true
	}
}

// List returns one page of populated products plus the total count matching
// the filters.
func (s *FirestoreStore) List(ctx context.Context, params ListParams) ([]Product, int, error) {
	var filters []docstore.Filter
	if params.BrandID != nil {
		filters = append(filters, docstore.Filter{Path: "brand_id", Op: "==", Value: *params.BrandID})
	}
	if params.CategoryID != nil {
		filters = append(filters, docstore.Filter{Path: "category_id", Op: "==", Value: *params.CategoryID})
	}
	if params.IsActive != nil {
		filters = append(filters, docstore.Filter{Path: "is_active", Op: "==", Value: *params.IsActive})
	}
	if len(params.Tags) > 0 {
		filters = append(filters, docstore.Filter{Path: "tags", Op: "array-contains-any", Value: params.Tags})
	}
	if !params.IncludeDeleted {
		filters = append(filters, docstore.Filter{Path: "deleted_at", Op: "==", Value: nil})
	}

	orderBy, desc := sortField(params.Sort)
	items, err := s.col.List(ctx, docstore.ListQuery{
		Filters: filters,
		OrderBy: orderBy,
		Desc:    desc,
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, 0, err
	}
	products := make([]Product, 0, len(items))
	for _, item := range items {
		p := item.Data
		p.ID = item.ID
		if err := s.populate(ctx, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	total, err := s.col.Count(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Get retrieves a populated product by ID. Soft-deleted products are still
// retrievable by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.ID = id
	if err := s.populate(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create validates all references and the SKU, then stores the product.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := s.checkRefs(ctx, params.BrandID, params.CategoryID, params.PrimaryImageID, params.ImageIDs); err != nil {
		return nil, err
	}
	taken, err := s.skuTaken(ctx, params.SKU, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSKUExists
	}

	now := time.Now().UTC()
	p := Product{
		ID:             uuid.NewString(),
		Name:           params.Name,
		Description:    params.Description,
		SKU:            params.SKU,
		Price:          params.Price,
		Stock:          params.Stock,
		BrandID:        params.BrandID,
		CategoryID:     params.CategoryID,
		Tags:           params.Tags,
		IsActive:       params.IsActive,
		PrimaryImageID: params.PrimaryImageID,
		ImageIDs:       params.ImageIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.ImageIDs == nil {
		p.ImageIDs = []string{}
	}
	if err := s.col.Create(ctx, p.ID, p); err != nil {
		return nil, err
	}
	if err := s.populate(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update, re-validating any changed references, and
// returns the new populated state.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.SKU != nil && *params.SKU != current.SKU {
		taken, err := s.skuTaken(ctx, *params.SKU, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSKUExists
		}
	}

	brandID := current.BrandID
	if params.BrandID != nil {
		brandID = *params.BrandID
	}
	categoryID := current.CategoryID
	if params.CategoryID != nil {
		categoryID = *params.CategoryID
	}
	primaryImageID := current.PrimaryImageID
	if params.PrimaryImageID != nil {
		primaryImageID = *params.PrimaryImageID
	}
	imageIDs := current.ImageIDs
	if params.ImageIDs != nil {
		imageIDs = *params.ImageIDs
	}
	if err := s.checkRefs(ctx, brandID, categoryID, primaryImageID, imageIDs); err != nil {
		return nil, err
	}

	if params.Name != nil {
		current.Name = *params.Name
	}
	if params.Description != nil {
		current.Description = *params.Description
	}
	if params.SKU != nil {
		current.SKU = *params.SKU
	}
	if params.Price != nil {
		current.Price = *params.Price
	}
	if params.Stock != nil {
		current.Stock = *params.Stock
	}
	if params.Tags != nil {
		current.Tags = *params.Tags
	}
	if params.IsActive != nil {
		current.IsActive = *params.IsActive
	}
	current.BrandID = brandID
	current.CategoryID = categoryID
	current.PrimaryImageID = primaryImageID
	current.ImageIDs = imageIDs
	current.UpdatedAt = time.Now().UTC()

	stored := *current
	stored.Brand = nil
	stored.Category = nil
	stored.Images = nil
	if err := s.col.Set(ctx, id, stored); err != nil {
		return nil, err
	}
	current.Brand = nil
	current.Category = nil
	current.Images = nil
	if err := s.populate(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete soft-deletes a product by setting deleted_at.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	p, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if p.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC()
	p.DeletedAt = &now
	p.IsActive = false
	p.UpdatedAt = now
	return s.col.Set(ctx, id, *p)
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
