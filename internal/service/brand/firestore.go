package brand

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mockmart/catalog-api/internal/docstore"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

const brandsCollection = "brands"

// FirestoreStore implements Service backed by Firestore.
type FirestoreStore struct {
	col   *docstore.Collection[Brand]
	files filesvc.Service
}

// NewFirestoreStore creates a new Firestore-backed brand store. The file
// service validates image references and resolves their URLs.
func NewFirestoreStore(client *firestore.Client, files filesvc.Service) *FirestoreStore {
	return &FirestoreStore{
		col:   docstore.NewCollection[Brand](client, brandsCollection),
		files: files,
	}
}

// resolveImage validates an image reference and returns its URL. An empty
// ID clears the image.
func (s *FirestoreStore) resolveImage(ctx context.Context, imageID string) (string, error) {
	if imageID == "" {
		return "", nil
	}
	f, err := s.files.Get(ctx, imageID)
	if err != nil {
		if errors.Is(err, filesvc.ErrNotFound) {
			return "", ErrInvalidImage
		}
		return "", err
	}
	return f.URL, nil
}

// List returns one page of brands ordered by name plus the total count.
func (s *FirestoreStore) List(ctx context.Context, offset, limit int) ([]Brand, int, error) {
	items, err := s.col.List(ctx, docstore.ListQuery{
		OrderBy: "name",
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, 0, err
	}
	brands := make([]Brand, 0, len(items))
	for _, item := range items {
		b := item.Data
		b.ID = item.ID
		brands = append(brands, b)
	}
	total, err := s.col.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return brands, total, nil
}

// Get retrieves a brand by ID.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Brand, error) {
	b, err := s.col.Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.ID = id
	return b, nil
}

// Create stores a new brand.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Brand, error) {
	imageURL, err := s.resolveImage(ctx, params.ImageID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := Brand{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		ImageID:     params.ImageID,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.col.Create(ctx, b.ID, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update applies a partial update and returns the new state.
func (s *FirestoreStore) Update(ctx context.Context, id string, params UpdateParams) (*Brand, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		current.Name = *params.Name
	}
	if params.Description != nil {
		current.Description = *params.Description
	}
	if params.ImageID != nil {
		imageURL, err := s.resolveImage(ctx, *params.ImageID)
		if err != nil {
			return nil, err
		}
		current.ImageID = *params.ImageID
		current.ImageURL = imageURL
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.col.Set(ctx, id, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a brand.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	if err := s.col.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
