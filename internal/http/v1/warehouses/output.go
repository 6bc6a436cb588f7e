package warehouses

import "github.com/mockmart/catalog-api/internal/api"

// WarehouseListOutput for GET /warehouses
type WarehouseListOutput struct {
	Body api.Envelope[[]Warehouse]
}

// WarehouseGetOutput for GET /warehouses/{id}
type WarehouseGetOutput struct {
	Body api.Envelope[Warehouse]
}

// WarehouseCreateOutput for POST /warehouses (201 Created)
type WarehouseCreateOutput struct {
	Body api.Envelope[Warehouse]
}

// WarehouseUpdateOutput for PUT /warehouses/{id}
type WarehouseUpdateOutput struct {
	Body api.Envelope[Warehouse]
}

// WarehouseDeleteOutput for DELETE /warehouses/{id}
type WarehouseDeleteOutput struct {
	Body api.Envelope[DeleteResult]
}
