package files

import (
	"github.com/mockmart/catalog-api/internal/common"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

// File is the HTTP representation of an uploaded file's metadata.
type File struct {
	ID          string      `json:"id"           doc:"File ID"`
	Filename    string      `json:"filename"     doc:"Stored filename" example:"a1b2c3.png"`
	URL         string      `json:"url"          doc:"Public URL"      example:"/static/a1b2c3.png"`
	ContentType string      `json:"content_type" doc:"MIME type"       example:"image/png"`
	Size        int64       `json:"size"         doc:"Size in bytes"`
	CreatedAt   common.Time `json:"created_at"   doc:"Upload time"`
	UpdatedAt   common.Time `json:"updated_at"   doc:"Last update time"`
}

func toHTTPFile(f *filesvc.File) File {
	return File{
		ID:          f.ID,
		Filename:    f.Filename,
		URL:         f.URL,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   common.Time{Time: f.CreatedAt},
		UpdatedAt:   common.Time{Time: f.UpdatedAt},
	}
}

func toHTTPFiles(items []filesvc.File) []File {
	out := make([]File, 0, len(items))
	for i := range items {
		out = append(out, toHTTPFile(&items[i]))
	}
	return out
}
