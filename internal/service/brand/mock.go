package brand

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockBrandService implements Service in memory for unit tests.
type MockBrandService struct {
	mu     sync.RWMutex
	brands map[string]*Brand
}

// NewMockBrandService creates a new mock service.
func NewMockBrandService() *MockBrandService {
	return &MockBrandService{brands: make(map[string]*Brand)}
}

func (m *MockBrandService) List(_ context.Context, offset, limit int) ([]Brand, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Brand, 0, len(m.brands))
	for _, b := range m.brands {
		all = append(all, *b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	if offset >= total {
		return []Brand{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *MockBrandService) Get(_ context.Context, id string) (*Brand, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.brands[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

func (m *MockBrandService) Create(_ context.Context, params CreateParams) (*Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	b := &Brand{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		ImageID:     params.ImageID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.brands[b.ID] = b
	out := *b
	return &out, nil
}

func (m *MockBrandService) Update(_ context.Context, id string, params UpdateParams) (*Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.brands[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Name != nil {
		b.Name = *params.Name
	}
	if params.Description != nil {
		b.Description = *params.Description
	}
	if params.ImageID != nil {
		b.ImageID = *params.ImageID
	}
	b.UpdatedAt = time.Now().UTC()
	out := *b
	return &out, nil
}

func (m *MockBrandService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.brands[id]; !ok {
		return ErrNotFound
	}
	delete(m.brands, id)
	return nil
}

// Compile-time interface check
var _ Service = (*MockBrandService)(nil)
