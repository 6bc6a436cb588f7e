package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
)

// Register registers category endpoints.
func Register(humaAPI huma.API, svc categorysvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *CategoryListInput) (*CategoryListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, categorysvc.ListParams{
			ParentID: input.ParentID,
			Offset:   input.Offset(),
			Limit:    limit,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CategoryListOutput{
			Body: respond.Page(ctx, toHTTPCategories(items), "categories.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *CategoryGetInput) (*CategoryGetOutput, error) {
		c, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CategoryGetOutput{
			Body: respond.Success(ctx, toHTTPCategory(c), "categories.get.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/categories",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CategoryCreateInput) (*CategoryCreateOutput, error) {
		c, err := svc.Create(ctx, categorysvc.CreateParams{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			ParentID:    input.Body.ParentID,
			Order:       input.Body.Order,
			ImageID:     input.Body.ImageID,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CategoryCreateOutput{
			Body: respond.Created(ctx, toHTTPCategory(c), "categories.create.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/categories/{id}",
		Summary:     "Update category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *CategoryUpdateInput) (*CategoryUpdateOutput, error) {
		c, err := svc.Update(ctx, input.ID, categorysvc.UpdateParams{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			ParentID:    input.Body.ParentID,
			Order:       input.Body.Order,
			ImageID:     input.Body.ImageID,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &CategoryUpdateOutput{
			Body: respond.Success(ctx, toHTTPCategory(c), "categories.update.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete category",
		Tags:        []string{"Categories"},
	}, func(ctx context.Context, input *CategoryDeleteInput) (*CategoryDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return &CategoryDeleteOutput{
			Body: respond.Success(ctx, DeleteResult{Status: "deleted"}, "categories.delete.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, categorysvc.ErrNotFound):
		return huma.Error404NotFound("category not found")
	case errors.Is(err, categorysvc.ErrAlreadyExists):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.name",
			Message:  "Name already used under this parent",
		})
	case errors.Is(err, categorysvc.ErrInvalidParent):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.parent_id",
			Message:  "Invalid parent category",
		})
	case errors.Is(err, categorysvc.ErrInvalidImage):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.image_id",
			Message:  "Invalid image reference",
		})
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
