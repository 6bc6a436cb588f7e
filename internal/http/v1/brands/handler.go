package brands

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
)

// Register registers brand endpoints.
func Register(humaAPI huma.API, svc brandsvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-brands",
		Method:      http.MethodGet,
		Path:        "/brands",
		Summary:     "List brands",
		Tags:        []string{"Brands"},
	}, func(ctx context.Context, input *BrandListInput) (*BrandListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, input.Offset(), limit)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &BrandListOutput{
			Body: respond.Page(ctx, toHTTPBrands(items), "brands.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-brand",
		Method:      http.MethodGet,
		Path:        "/brands/{id}",
		Summary:     "Get brand",
		Tags:        []string{"Brands"},
	}, func(ctx context.Context, input *BrandGetInput) (*BrandGetOutput, error) {
		b, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &BrandGetOutput{
			Body: respond.Success(ctx, toHTTPBrand(b), "brands.get.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID:   "create-brand",
		Method:        http.MethodPost,
		Path:          "/brands",
		Summary:       "Create brand",
		Tags:          []string{"Brands"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *BrandCreateInput) (*BrandCreateOutput, error) {
		b, err := svc.Create(ctx, brandsvc.CreateParams{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			ImageID:     input.Body.ImageID,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &BrandCreateOutput{
			Body: respond.Created(ctx, toHTTPBrand(b), "brands.create.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "update-brand",
		Method:      http.MethodPut,
		Path:        "/brands/{id}",
		Summary:     "Update brand",
		Tags:        []string{"Brands"},
	}, func(ctx context.Context, input *BrandUpdateInput) (*BrandUpdateOutput, error) {
		b, err := svc.Update(ctx, input.ID, brandsvc.UpdateParams{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			ImageID:     input.Body.ImageID,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &BrandUpdateOutput{
			Body: respond.Success(ctx, toHTTPBrand(b), "brands.update.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "delete-brand",
		Method:      http.MethodDelete,
		Path:        "/brands/{id}",
		Summary:     "Delete brand",
		Tags:        []string{"Brands"},
	}, func(ctx context.Context, input *BrandDeleteInput) (*BrandDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return &BrandDeleteOutput{
			Body: respond.Success(ctx, DeleteResult{Status: "deleted"}, "brands.delete.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, brandsvc.ErrNotFound):
		return huma.Error404NotFound("brand not found")
	case errors.Is(err, brandsvc.ErrInvalidImage):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.image_id",
			Message:  "Invalid image reference",
		})
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
