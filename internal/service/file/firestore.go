package file

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
)

const filesCollection = "files"

// FirestoreStore implements Service backed by Firestore.
type FirestoreStore struct {
	col *docstore.Collection[File]
}

// NewFirestoreStore creates a new Firestore-backed file store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{col: docstore.NewCollection[File](client, filesCollection)}
}

// Create registers metadata for an uploaded file.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*File, error) {
	now := time.Now().UTC()
	f := File{
		ID:          uuid.NewString(),
		Filename:    params.Filename,
		URL:         params.URL,
		ContentType: params.ContentType,
		Size:        params.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.col.Create(ctx, f.ID, f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Get retrieves file metadata by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*File, error) {
	f, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	f.ID = id
	return f, nil
}

// List returns a page of file metadata ordered by creation time, newest
// first, together with the total count.
func (s *FirestoreStore) List(ctx context.Context, offset, limit int) ([]File, int, error) {
	items, err := s.col.List(ctx, docstore.ListQuery{
		OrderBy: "created_at",
		Desc:    true,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, err
	}
	files := make([]File, 0, len(items))
	for _, item := range items {
		f := item.Data
		f.ID = item.ID
		files = append(files, f)
	}
	total, err := s.col.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
