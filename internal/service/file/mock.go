package file

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockFileService implements Service in memory for unit tests.
type MockFileService struct {
	mu    sync.RWMutex
	files map[string]*File
}

// NewMockFileService creates a new mock service.
func NewMockFileService() *MockFileService {
	return &MockFileService{files: make(map[string]*File)}
}

func (m *MockFileService) Create(_ context.Context, params CreateParams) (*File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	f := &File{
		ID:          uuid.NewString(),
		Filename:    params.Filename,
		URL:         params.URL,
		ContentType: params.ContentType,
		Size:        params.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.files[f.ID] = f
	out := *f
	return &out, nil
}

func (m *MockFileService) Get(_ context.Context, id string) (*File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *f
	return &out, nil
}

func (m *MockFileService) List(_ context.Context, offset, limit int) ([]File, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]File, 0, len(m.files))
	for _, f := range m.files {
		all = append(all, *f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := len(all)
	if offset >= total {
		return []File{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// Compile-time interface check
var _ Service = (*MockFileService)(nil)
