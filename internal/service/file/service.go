package file

import (
	"context"
	"errors"
	"time"
)

// Service errors
var ErrNotFound = errors.New("file not found")

// File describes one uploaded asset's metadata. The bytes live on disk under
// the upload directory and are served from the static mount.
type File struct {
	ID          string    `firestore:"-"`
	Filename    string    `firestore:"filename"`
	URL         string    `firestore:"url"`
	ContentType string    `firestore:"content_type"`
	Size        int64     `firestore:"size"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

// CreateParams for registering an uploaded file.
type CreateParams struct {
	Filename    string
	URL         string
	ContentType string
	Size        int64
}

// Service defines file metadata operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*File, error)
	Get(ctx context.Context, id string) (*File, error)
	List(ctx context.Context, offset, limit int) ([]File, int, error)
}
