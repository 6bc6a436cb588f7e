package stores

import "github.com/mockmart/catalog-api/internal/api"

// StoreListOutput for GET /stores
type StoreListOutput struct {
	Body api.Envelope[[]Store]
}

// StoreGetOutput for GET /stores/{id}
type StoreGetOutput struct {
	Body api.Envelope[Store]
}

// StoreCreateOutput for POST /stores (201 Created)
type StoreCreateOutput struct {
	Body api.Envelope[Store]
}

// StoreUpdateOutput for PUT /stores/{id}
type StoreUpdateOutput struct {
	Body api.Envelope[Store]
}

// StoreDeleteOutput for DELETE /stores/{id}
type StoreDeleteOutput struct {
	Body api.Envelope[DeleteResult]
}
