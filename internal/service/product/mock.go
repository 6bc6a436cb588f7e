package product

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockProductService implements Service in memory for unit tests. It does
// not validate references or populate them.
type MockProductService struct {
	mu       sync.RWMutex
	products map[string]*Product
}

// NewMockProductService creates a new mock service.
func NewMockProductService() *MockProductService {
	return &MockProductService{products: make(map[string]*Product)}
}

func matchesTags(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (m *MockProductService) List(_ context.Context, params ListParams) ([]Product, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		if !params.IncludeDeleted && p.DeletedAt != nil {
			continue
		}
		if params.BrandID != nil && p.BrandID != *params.BrandID {
			continue
		}
		if params.CategoryID != nil && p.CategoryID != *params.CategoryID {
			continue
		}
		if params.IsActive != nil && p.IsActive != *params.IsActive {
			continue
		}
		if len(params.Tags) > 0 && !matchesTags(p.Tags, params.Tags) {
			continue
		}
		all = append(all, *p)
	}
	switch params.Sort {
	case SortNameAsc:
		sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	case SortNameDesc:
		sort.Slice(all, func(i, j int) bool { return all[i].Name > all[j].Name })
	case SortCreatedAsc:
		sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	default:
		sort.Slice(all, func(i, j int) bool { return all[j].CreatedAt.Before(all[i].CreatedAt) })
	}

	total := len(all)
	if params.Offset >= total {
		return []Product{}, total, nil
	}
	end := params.Offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}
	return all[params.Offset:end], total, nil
}

func (m *MockProductService) Get(_ context.Context, id string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (m *MockProductService) Create(_ context.Context, params CreateParams) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.DeletedAt == nil && p.SKU == params.SKU {
			return nil, ErrSKUExists
		}
	}

	now := time.Now().UTC()
	p := &Product{
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
	m.products[p.ID] = p
	out := *p
	return &out, nil
}

func (m *MockProductService) Update(_ context.Context, id string, params UpdateParams) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.SKU != nil && *params.SKU != p.SKU {
		for otherID, other := range m.products {
			if otherID != id && other.DeletedAt == nil && other.SKU == *params.SKU {
				return nil, ErrSKUExists
			}
		}
		p.SKU = *params.SKU
	}
	if params.Name != nil {
		p.Name = *params.Name
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.Stock != nil {
		p.Stock = *params.Stock
	}
	if params.BrandID != nil {
		p.BrandID = *params.BrandID
	}
	if params.CategoryID != nil {
		p.CategoryID = *params.CategoryID
	}
	if params.Tags != nil {
		p.Tags = *params.Tags
	}
	if params.IsActive != nil {
		p.IsActive = *params.IsActive
	}
	if params.PrimaryImageID != nil {
		p.PrimaryImageID = *params.PrimaryImageID
	}
	if params.ImageIDs != nil {
		p.ImageIDs = *params.ImageIDs
	}
	p.UpdatedAt = time.Now().UTC()
	out := *p
	return &out, nil
}

func (m *MockProductService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok || p.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC()
	p.DeletedAt = &now
	p.IsActive = false
	p.UpdatedAt = now
	return nil
}

// Compile-time interface check
var _ Service = (*MockProductService)(nil)
