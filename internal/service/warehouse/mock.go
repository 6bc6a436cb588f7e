package warehouse

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockWarehouseService implements Service in memory for unit tests.
type MockWarehouseService struct {
	mu         sync.RWMutex
	warehouses map[string]*Warehouse
}

// NewMockWarehouseService creates a new mock service.
func NewMockWarehouseService() *MockWarehouseService {
	return &MockWarehouseService{warehouses: make(map[string]*Warehouse)}
}

func (m *MockWarehouseService) List(_ context.Context, params ListParams) ([]Warehouse, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		if params.Name != nil && w.Name != *params.Name {
			continue
		}
		if params.Location != nil && w.Location != *params.Location {
			continue
		}
		all = append(all, *w)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	if params.Offset >= total {
		return []Warehouse{}, total, nil
	}
	end := params.Offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}
	return all[params.Offset:end], total, nil
}

func (m *MockWarehouseService) Get(_ context.Context, id string) (*Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.warehouses[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *w
	return &out, nil
}

func (m *MockWarehouseService) Create(_ context.Context, params CreateParams) (*Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	w := &Warehouse{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Location:  params.Location,
		Capacity:  params.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.warehouses[w.ID] = w
	out := *w
	return &out, nil
}

func (m *MockWarehouseService) Update(_ context.Context, id string, params UpdateParams) (*Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.warehouses[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Name != nil {
		w.Name = *params.Name
	}
	if params.Location != nil {
		w.Location = *params.Location
	}
	if params.Capacity != nil {
		w.Capacity = *params.Capacity
	}
	w.UpdatedAt = time.Now().UTC()
	out := *w
	return &out, nil
}

func (m *MockWarehouseService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.warehouses[id]; !ok {
		return ErrNotFound
	}
	delete(m.warehouses, id)
	return nil
}

// Compile-time interface check
var _ Service = (*MockWarehouseService)(nil)
