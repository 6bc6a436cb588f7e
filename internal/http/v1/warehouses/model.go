package warehouses

import (
	"github.com/mockmart/catalog-api/internal/common"
	warehousesvc "github.com/mockmart/catalog-api/internal/service/warehouse"
)

// Warehouse is the HTTP representation of a warehouse.
type Warehouse struct {
	ID        string      `json:"id"         doc:"Warehouse ID"`
	Name      string      `json:"name"       doc:"Warehouse name" example:"North DC"`
	Location  string      `json:"location"   doc:"City or region"`
	Capacity  int         `json:"capacity"   doc:"Unit capacity"`
	CreatedAt common.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt common.Time `json:"updated_at" doc:"Last update time"`
}

// DeleteResult confirms a successful delete.
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
}

func toHTTPWarehouse(w *warehousesvc.Warehouse) Warehouse {
	return Warehouse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: common.Time{Time: w.CreatedAt},
		UpdatedAt: common.Time{Time: w.UpdatedAt},
	}
}

func toHTTPWarehouses(items []warehousesvc.Warehouse) []Warehouse {
	out := make([]Warehouse, 0, len(items))
	for i := range items {
		out = append(out, toHTTPWarehouse(&items[i]))
	}
	return out
}
