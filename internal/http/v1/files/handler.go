package files

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/pagination"
	"github.com/mockmart/catalog-api/internal/respond"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
)

// FileListInput for GET /files
type FileListInput struct {
	pagination.Params
}

// FileGetInput for GET /files/{id}
type FileGetInput struct {
	ID string `path:"id" doc:"File ID"`
}

// FileListOutput for GET /files
type FileListOutput struct {
	Body api.Envelope[[]File]
}

// FileGetOutput for GET /files/{id}
type FileGetOutput struct {
	Body api.Envelope[File]
}

// Register registers file metadata endpoints. Uploads go through the
// multipart handler outside the Huma API.
func Register(humaAPI huma.API, svc filesvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-files",
		Method:      http.MethodGet,
		Path:        "/files",
		Summary:     "List uploaded files",
		Tags:        []string{"Files"},
	}, func(ctx context.Context, input *FileListInput) (*FileListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, input.Offset(), limit)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &FileListOutput{
			Body: respond.Page(ctx, toHTTPFiles(items), "files.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-file",
		Method:      http.MethodGet,
		Path:        "/files/{id}",
		Summary:     "Get uploaded file metadata",
		Tags:        []string{"Files"},
	}, func(ctx context.Context, input *FileGetInput) (*FileGetOutput, error) {
		f, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &FileGetOutput{
			Body: respond.Success(ctx, toHTTPFile(f), "files.get.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, filesvc.ErrNotFound):
		return huma.Error404NotFound("file not found")
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
