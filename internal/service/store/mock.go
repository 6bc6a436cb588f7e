package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStoreService implements Service in memory for unit tests.
type MockStoreService struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewMockStoreService creates a new mock service.
func NewMockStoreService() *MockStoreService {
	return &MockStoreService{stores: make(map[string]*Store)}
}

func (m *MockStoreService) List(_ context.Context, params ListParams) ([]Store, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]Store, 0, len(m.stores))
	for _, st := range m.stores {
		all = append(all, *st)
	}
	switch params.SortBy {
	case SortNameDesc:
		sort.Slice(all, func(i, j int) bool { return all[i].Name > all[j].Name })
	case SortCreated:
		sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	case SortCreatedDesc:
		sort.Slice(all, func(i, j int) bool { return all[j].CreatedAt.Before(all[i].CreatedAt) })
	default:
		sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	}

	total := len(all)
	if params.Offset >= total {
		return []Store{}, total, nil
	}
	end := params.Offset + params.Limit
	if params.Limit <= 0 || end > total {
		end = total
	}
	return all[params.Offset:end], total, nil
}

func (m *MockStoreService) Get(_ context.Context, id string) (*Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.stores[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *st
	return &out, nil
}

func (m *MockStoreService) Create(_ context.Context, params CreateParams) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	st := &Store{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Address:   params.Address,
		Phone:     params.Phone,
		IsActive:  params.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.stores[st.ID] = st
	out := *st
	return &out, nil
}

func (m *MockStoreService) Update(_ context.Context, id string, params UpdateParams) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stores[id]
	if !ok {
		return nil, ErrNotFound
	}
	if params.Name != nil {
		st.Name = *params.Name
	}
	if params.Address != nil {
		st.Address = *params.Address
	}
	if params.Phone != nil {
		st.Phone = *params.Phone
	}
	if params.IsActive != nil {
		st.IsActive = *params.IsActive
	}
	st.UpdatedAt = time.Now().UTC()
	out := *st
	return &out, nil
}

func (m *MockStoreService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stores[id]; !ok {
		return ErrNotFound
	}
	delete(m.stores, id)
	return nil
}

// Compile-time interface check
var _ Service = (*MockStoreService)(nil)
