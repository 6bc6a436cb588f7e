package products

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
)

// Register registers product endpoints.
func Register(humaAPI huma.API, svc productsvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/products",
		Summary:     "List products",
		Description: "Lists products with filtering, sorting and pagination. Soft-deleted products are hidden unless include_deleted is set.",
		Tags:        []string{"Products"},
	}, func(ctx context.Context, input *ProductListInput) (*ProductListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, productsvc.ListParams{
			BrandID:        input.BrandID,
			CategoryID:     input.CategoryID,
			IsActive:       input.IsActive,
			Tags:           input.Tags,
			IncludeDeleted: input.IncludeDeleted,
			Sort:           input.Sort,
			Offset:         input.Offset(),
			Limit:          limit,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProductListOutput{
			Body: respond.Page(ctx, toHTTPProducts(items), "products.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/products/{id}",
		Summary:     "Get product",
		Tags:        []string{"Products"},
	}, func(ctx context.Context, input *ProductGetInput) (*ProductGetOutput, error) {
		p, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProductGetOutput{
			Body: respond.Success(ctx, toHTTPProduct(p), "products.get.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/products",
		Summary:       "Create product",
		Tags:          []string{"Products"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ProductCreateInput) (*ProductCreateOutput, error) {
		p, err := svc.Create(ctx, productsvc.CreateParams{
			Name:           input.Body.Name,
			Description:    input.Body.Description,
			SKU:            input.Body.SKU,
			Price:          input.Body.Price,
			Stock:          input.Body.Stock,
			BrandID:        input.Body.BrandID,
			CategoryID:     input.Body.CategoryID,
			Tags:           input.Body.Tags,
			IsActive:       input.Body.IsActive,
			PrimaryImageID: input.Body.PrimaryImageID,
			ImageIDs:       input.Body.ImageIDs,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProductCreateOutput{
			Body: respond.Created(ctx, toHTTPProduct(p), "products.create.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPut,
		Path:        "/products/{id}",
		Summary:     "Update product",
		Tags:        []string{"Products"},
	}, func(ctx context.Context, input *ProductUpdateInput) (*ProductUpdateOutput, error) {
		p, err := svc.Update(ctx, input.ID, productsvc.UpdateParams{
			Name:           input.Body.Name,
			Description:    input.Body.Description,
			SKU:            input.Body.SKU,
			Price:          input.Body.Price,
			Stock:          input.Body.Stock,
			BrandID:        input.Body.BrandID,
			CategoryID:     input.Body.CategoryID,
			Tags:           input.Body.Tags,
			IsActive:       input.Body.IsActive,
			PrimaryImageID: input.Body.PrimaryImageID,
			ImageIDs:       input.Body.ImageIDs,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProductUpdateOutput{
			Body: respond.Success(ctx, toHTTPProduct(p), "products.update.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "delete-product",
		Method:      http.MethodDelete,
		Path:        "/products/{id}",
		Summary:     "Delete product",
		Description: "Soft-deletes a product. The record remains retrievable by ID and via include_deleted.",
		Tags:        []string{"Products"},
	}, func(ctx context.Context, input *ProductDeleteInput) (*ProductDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return &ProductDeleteOutput{
			Body: respond.Success(ctx, DeleteResult{Status: "deleted"}, "products.delete.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, productsvc.ErrNotFound):
		return huma.Error404NotFound("product not found")
	case errors.Is(err, productsvc.ErrSKUExists):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.sku",
			Message:  "SKU already in use",
		})
	case errors.Is(err, productsvc.ErrInvalidBrand):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.brand_id",
			Message:  "Invalid brand reference",
		})
	case errors.Is(err, productsvc.ErrInvalidCategory):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.category_id",
			Message:  "Invalid category reference",
		})
	case errors.Is(err, productsvc.ErrInvalidImage):
		return huma.Error422UnprocessableEntity("", &huma.ErrorDetail{
			Location: "body.primary_image_id",
			Message:  "Invalid image reference",
		})
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
