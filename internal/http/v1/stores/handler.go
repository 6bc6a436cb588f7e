package stores

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
	storesvc "github.com/mockmart/catalog-api/internal/service/store"
)

// Register registers store endpoints.
func Register(humaAPI huma.API, svc storesvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/stores",
		Summary:     "List stores",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *StoreListInput) (*StoreListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, storesvc.ListParams{
			SortBy: input.SortBy,
			Offset: input.Offset(),
			Limit:  limit,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &StoreListOutput{
			Body: respond.Page(ctx, toHTTPStores(items), "stores.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-store",
		Method:      http.MethodGet,
		Path:        "/stores/{id}",
		Summary:     "Get store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *StoreGetInput) (*StoreGetOutput, error) {
		st, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &StoreGetOutput{
			Body: respond.Success(ctx, toHTTPStore(st), "stores.get.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID:   "create-store",
		Method:        http.MethodPost,
		Path:          "/stores",
		Summary:       "Create store",
		Tags:          []string{"Stores"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *StoreCreateInput) (*StoreCreateOutput, error) {
		st, err := svc.Create(ctx, storesvc.CreateParams{
			Name:     input.Body.Name,
			Address:  input.Body.Address,
			Phone:    input.Body.Phone,
			IsActive: input.Body.IsActive,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &StoreCreateOutput{
			Body: respond.Created(ctx, toHTTPStore(st), "stores.create.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "update-store",
		Method:      http.MethodPut,
		Path:        "/stores/{id}",
		Summary:     "Update store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *StoreUpdateInput) (*StoreUpdateOutput, error) {
		st, err := svc.Update(ctx, input.ID, storesvc.UpdateParams{
			Name:     input.Body.Name,
			Address:  input.Body.Address,
			Phone:    input.Body.Phone,
			IsActive: input.Body.IsActive,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &StoreUpdateOutput{
			Body: respond.Success(ctx, toHTTPStore(st), "stores.update.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "delete-store",
		Method:      http.MethodDelete,
		Path:        "/stores/{id}",
		Summary:     "Delete store",
		Tags:        []string{"Stores"},
	}, func(ctx context.Context, input *StoreDeleteInput) (*StoreDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return &StoreDeleteOutput{
			Body: respond.Success(ctx, DeleteResult{Status: "deleted"}, "stores.delete.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, storesvc.ErrNotFound):
		return huma.Error404NotFound("store not found")
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
