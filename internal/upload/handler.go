// Package upload handles multipart file uploads and static file serving.
// The upload response is a bare {"files": [...]} object rather than the
// standard envelope, matching what upload widgets expect.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/common"
	"github.com/mockmart/catalog-api/internal/middleware"
	"github.com/mockmart/catalog-api/internal/respond"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

const (
	// MaxUploadBytes bounds a whole multipart request.
	MaxUploadBytes = 10 << 20

	// StaticPrefix is the URL prefix uploaded files are served from.
	StaticPrefix = "/static/"
)

var allowedContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadedFile is one entry in the upload response.
type UploadedFile struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	CreatedAt   string `json:"created_at"`
}

// Response is the bare upload response body.
type Response struct {
	Files []UploadedFile `json:"files"`
}

// Handler stores uploaded files on disk and records their metadata.
type Handler struct {
	dir   string
	files filesvc.Service
}

// NewHandler creates an upload handler writing into dir.
func NewHandler(dir string, files filesvc.Service) *Handler {
	return &Handler{dir: dir, files: files}
}

// ServeHTTP handles POST /files/upload.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		status := http.StatusUnprocessableEntity
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		h.writeError(w, r, status, "", []api.ErrorDetail{
			{Field: "files", Message: "Invalid multipart form"},
		})
		middleware.LogWarn(ctx, "rejected multipart form", zap.Error(err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		h.writeError(w, r, http.StatusUnprocessableEntity, "", []api.ErrorDetail{
			{Field: "files", Message: "Field required"},
		})
		return
	}

	uploaded := make([]UploadedFile, 0, len(parts))
	for _, part := range parts {
		f, err := h.savePart(r, part)
		if err != nil {
			h.writeError(w, r, http.StatusUnprocessableEntity, "", []api.ErrorDetail{
				{Field: "files", Message: err.Error()},
			})
			return
		}
		uploaded = append(uploaded, UploadedFile{
			ID:          f.ID,
			Filename:    f.Filename,
			URL:         f.URL,
			ContentType: f.ContentType,
			Size:        f.Size,
			CreatedAt:   common.Timestamp(f.CreatedAt),
		})
	}

	if err := respond.WriteJSON(w, http.StatusCreated, Response{Files: uploaded}); err != nil {
		middleware.LogError(ctx, "failed to render upload response", err)
	}
}

// savePart writes one multipart file to disk under a generated name and
// registers its metadata.
func (h *Handler) savePart(r *http.Request, part *multipart.FileHeader) (*filesvc.File, error) {
	contentType := part.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	ext := strings.ToLower(filepath.Ext(part.Filename))
	name := uuid.NewString() + ext

	src, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return h.files.Create(r.Context(), filesvc.CreateParams{
		Filename:    name,
		URL:         StaticPrefix + name,
		ContentType: contentType,
		Size:        size,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, details []api.ErrorDetail) {
	if err := respond.WriteError(w, r.Context(), status, msg, details); err != nil {
		middleware.LogError(r.Context(), "failed to render upload error", err)
	}
}

// Static serves uploaded files from dir under StaticPrefix.
func Static(dir string) http.Handler {
	return http.StripPrefix(StaticPrefix, http.FileServer(http.Dir(dir)))
}
