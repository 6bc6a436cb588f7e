package stores

import "github.com/mockmart/catalog-api/internal/pagination"

// StoreListInput for GET /stores
type StoreListInput struct {
	pagination.Params
	SortBy string `query:"sort_by" enum:"name,name_desc,created_at,created_at_desc" doc:"Sort order" default:"name"`
}

// StoreGetInput for GET /stores/{id}
type StoreGetInput struct {
	ID string `path:"id" doc:"Store ID"`
}

// StoreCreateInput for POST /stores
type StoreCreateInput struct {
	Body struct {
		Name     string `json:"name"               minLength:"1" maxLength:"200" required:"true" doc:"Store name"`
		Address  string `json:"address,omitempty"  maxLength:"500"                               doc:"Street address"`
		Phone    string `json:"phone,omitempty"    maxLength:"50"                                doc:"Contact phone"`
		IsActive bool   `json:"is_active,omitempty"                                              doc:"Whether the store is open for business"`
	}
}

// StoreUpdateInput for PUT /stores/{id}
type StoreUpdateInput struct {
	ID   string `path:"id" doc:"Store ID"`
	Body struct {
		Name     *string `json:"name,omitempty"      minLength:"1" maxLength:"200" doc:"Store name"`
		Address  *string `json:"address,omitempty"   maxLength:"500"               doc:"Street address"`
		Phone    *string `json:"phone,omitempty"     maxLength:"50"                doc:"Contact phone"`
		IsActive *bool   `json:"is_active,omitempty"                               doc:"Whether the store is open for business"`
	}
}

// StoreDeleteInput for DELETE /stores/{id}
type StoreDeleteInput struct {
	ID string `path:"id" doc:"Store ID"`
}
