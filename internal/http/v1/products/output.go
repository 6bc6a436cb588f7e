package products

import "github.com/mockmart/catalog-api/internal/api"

// ProductListOutput for GET /products
type ProductListOutput struct {
	Body api.Envelope[[]Product]
}

// ProductGetOutput for GET /products/{id}
type ProductGetOutput struct {
	Body api.Envelope[Product]
}

// ProductCreateOutput for POST /products (201 Created)
type ProductCreateOutput struct {
	Body api.Envelope[Product]
}

// ProductUpdateOutput for PUT /products/{id}
type ProductUpdateOutput struct {
	Body api.Envelope[Product]
}

// ProductDeleteOutput for DELETE /products/{id}
type ProductDeleteOutput struct {
	Body api.Envelope[DeleteResult]
}
