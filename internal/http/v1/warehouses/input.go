package warehouses

import "github.com/mockmart/catalog-api/internal/pagination"

// WarehouseListInput for GET /warehouses
type WarehouseListInput struct {
	pagination.Params
	Name     *string `query:"name"     doc:"Exact warehouse name"`
	Location *string `query:"location" doc:"Exact location"`
}

// WarehouseGetInput for GET /warehouses/{id}
type WarehouseGetInput struct {
	ID string `path:"id" doc:"Warehouse ID"`
}

// WarehouseCreateInput for POST /warehouses
type WarehouseCreateInput struct {
	Body struct {
		Name     string `json:"name"               minLength:"1" maxLength:"200" required:"true" doc:"Warehouse name"`
		Location string `json:"location,omitempty" maxLength:"200"                              doc:"City or region"`
		Capacity int    `json:"capacity,omitempty" minimum:"0"                                  doc:"Unit capacity"`
	}
}

// WarehouseUpdateInput for PUT /warehouses/{id}
type WarehouseUpdateInput struct {
	ID   string `path:"id" doc:"Warehouse ID"`
	Body struct {
		Name     *string `json:"name,omitempty"     minLength:"1" maxLength:"200" doc:"Warehouse name"`
		Location *string `json:"location,omitempty" maxLength:"200"               doc:"City or region"`
		Capacity *int    `json:"capacity,omitempty" minimum:"0"                   doc:"Unit capacity"`
	}
}

// WarehouseDeleteInput for DELETE /warehouses/{id}
type WarehouseDeleteInput struct {
	ID string `path:"id" doc:"Warehouse ID"`
}
