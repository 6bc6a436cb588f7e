package warehouses

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
	warehousesvc "github.com/mockmart/catalog-api/internal/service/warehouse"
)

// Register registers warehouse endpoints.
func Register(humaAPI huma.API, svc warehousesvc.Service) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "list-warehouses",
		Method:      http.MethodGet,
		Path:        "/warehouses",
		Summary:     "List warehouses",
		Tags:        []string{"Warehouses"},
	}, func(ctx context.Context, input *WarehouseListInput) (*WarehouseListOutput, error) {
		page, limit := input.Normalize()
		items, total, err := svc.List(ctx, warehousesvc.ListParams{
			Name:     input.Name,
			Location: input.Location,
			Offset:   input.Offset(),
			Limit:    limit,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &WarehouseListOutput{
			Body: respond.Page(ctx, toHTTPWarehouses(items), "warehouses.list.success", api.NewPagination(total, page, limit)),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "get-warehouse",
		Method:      http.MethodGet,
		Path:        "/warehouses/{id}",
		Summary:     "Get warehouse",
		Tags:        []string{"Warehouses"},
	}, func(ctx context.Context, input *WarehouseGetInput) (*WarehouseGetOutput, error) {
		w, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &WarehouseGetOutput{
			Body: respond.Success(ctx, toHTTPWarehouse(w), "warehouses.get.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID:   "create-warehouse",
		Method:        http.MethodPost,
		Path:          "/warehouses",
		Summary:       "Create warehouse",
		Tags:          []string{"Warehouses"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *WarehouseCreateInput) (*WarehouseCreateOutput, error) {
		w, err := svc.Create(ctx, warehousesvc.CreateParams{
			Name:     input.Body.Name,
			Location: input.Body.Location,
			Capacity: input.Body.Capacity,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &WarehouseCreateOutput{
			Body: respond.Created(ctx, toHTTPWarehouse(w), "warehouses.create.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "update-warehouse",
		Method:      http.MethodPut,
		Path:        "/warehouses/{id}",
		Summary:     "Update warehouse",
		Tags:        []string{"Warehouses"},
	}, func(ctx context.Context, input *WarehouseUpdateInput) (*WarehouseUpdateOutput, error) {
		w, err := svc.Update(ctx, input.ID, warehousesvc.UpdateParams{
			Name:     input.Body.Name,
			Location: input.Body.Location,
			Capacity: input.Body.Capacity,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &WarehouseUpdateOutput{
			Body: respond.Success(ctx, toHTTPWarehouse(w), "warehouses.update.success"),
		}, nil
	})

	huma.Register(humaAPI, huma.Operation{
		OperationID: "delete-warehouse",
		Method:      http.MethodDelete,
		Path:        "/warehouses/{id}",
		Summary:     "Delete warehouse",
		Tags:        []string{"Warehouses"},
	}, func(ctx context.Context, input *WarehouseDeleteInput) (*WarehouseDeleteOutput, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return &WarehouseDeleteOutput{
			Body: respond.Success(ctx, DeleteResult{Status: "deleted"}, "warehouses.delete.success"),
		}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, warehousesvc.ErrNotFound):
		return huma.Error404NotFound("warehouse not found")
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
