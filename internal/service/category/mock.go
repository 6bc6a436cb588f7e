package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockCategoryService implements Service in memory for unit tests.
type MockCategoryService struct {
	mu         sync.RWMutex
	categories map[string]*Category
}

// NewMockCategoryService creates a new mock service.
func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{categories: make(map[string]*Category)}
}

func (m *MockCategoryService) List(_ context.Context, params ListParams) ([]Category, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Category, 0, len(m.categories))
	for _, c := range m.categories {
		if params.ParentID != nil && (c.ParentID == nil || *c.ParentID != *params.ParentID) {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Order < all[j].Order })

	total := len(all)
	if params.Offset >= total {
		return []Category{}, total, nil
	}
	end := params.Offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}
	return all[params.Offset:end], total, nil
}

func (m *MockCategoryService) Get(_ context.Context, id string) (*Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *c
	return &out, nil
}

func (m *MockCategoryService) Create(_ context.Context, params CreateParams) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if params.ParentID != nil {
		if _, ok := m.categories[*params.ParentID]; !ok {
			return nil, ErrInvalidParent
		}
	}

	order := 0
	for _, c := range m.categories {
		if !sameParent(c.ParentID, params.ParentID) {
			continue
		}
		if c.Name == params.Name {
			return nil, ErrAlreadyExists
		}
		if c.Order >= order {
			order = c.Order + 1
		}
	}
	if order == 0 {
		order = 1
	}
	if params.Order != nil {
		order = *params.Order
	}

	now := time.Now().UTC()
	c := &Category{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		ParentID:    params.ParentID,
		Order:       order,
		ImageID:     params.ImageID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.categories[c.ID] = c
	out := *c
	return &out, nil
}

func (m *MockCategoryService) Update(_ context.Context, id string, params UpdateParams) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok {
		return nil, ErrNotFound
	}

	reparent := params.ParentID != nil && !sameParent(params.ParentID, c.ParentID)
	if reparent {
		if *params.ParentID == id {
			return nil, ErrInvalidParent
		}
		parent, ok := m.categories[*params.ParentID]
		if !ok {
			return nil, ErrInvalidParent
		}
		for p := parent; p != nil && p.ParentID != nil; p = m.categories[*p.ParentID] {
			if *p.ParentID == id {
				return nil, ErrInvalidParent
			}
		}
	}

	if params.Name != nil || reparent {
		name := c.Name
		if params.Name != nil {
			name = *params.Name
		}
		parentID := c.ParentID
		if reparent {
			parentID = params.ParentID
		}
		for otherID, other := range m.categories {
			if otherID != id && sameParent(other.ParentID, parentID) && other.Name == name {
				return nil, ErrAlreadyExists
			}
		}
	}

	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Description != nil {
		c.Description = *params.Description
	}
	if reparent {
		c.ParentID = params.ParentID
		if params.Order == nil {
			order := 0
			for otherID, other := range m.categories {
				if otherID != id && sameParent(other.ParentID, params.ParentID) && other.Order >= order {
					order = other.Order + 1
				}
			}
			if order == 0 {
				order = 1
			}
			c.Order = order
		}
	}
	if params.Order != nil {
		c.Order = *params.Order
	}
	if params.ImageID != nil {
		c.ImageID = *params.ImageID
	}
	c.UpdatedAt = time.Now().UTC()
	out := *c
	return &out, nil
}

func (m *MockCategoryService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[id]; !ok {
		return ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

// Compile-time interface check
var _ Service = (*MockCategoryService)(nil)
