package stores

import (
	"github.com/mockmart/catalog-api/internal/common"
	storesvc "github.com/mockmart/catalog-api/internal/service/store"
)

// Store is the HTTP representation of a retail location.
type Store struct {
	ID        string      `json:"id"         doc:"Store ID"`
	Name      string      `json:"name"       doc:"Store name"    example:"Downtown Flagship"`
	Address   string      `json:"address"    doc:"Street address"`
	Phone     string      `json:"phone"      doc:"Contact phone"`
	IsActive  bool        `json:"is_active"  doc:"Whether the store is open for business"`
	CreatedAt common.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt common.Time `json:"updated_at" doc:"Last update time"`
}

// DeleteResult confirms a successful delete.
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
}

func toHTTPStore(s *storesvc.Store) Store {
	return Store{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		IsActive:  s.IsActive,
		CreatedAt: common.Time{Time: s.CreatedAt},
		UpdatedAt: common.Time{Time: s.UpdatedAt},
	}
}

func toHTTPStores(items []storesvc.Store) []Store {
	out := make([]Store, 0, len(items))
	for i := range items {
		out = append(out, toHTTPStore(&items[i]))
	}
	return out
}
