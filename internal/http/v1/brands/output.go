package brands

import "github.com/mockmart/catalog-api/internal/api"

// BrandListOutput for GET /brands
type BrandListOutput struct {
	Body api.Envelope[[]Brand]
}

// BrandGetOutput for GET /brands/{id}
type BrandGetOutput struct {
	Body api.Envelope[Brand]
}

// BrandCreateOutput for POST /brands (201 Created)
type BrandCreateOutput struct {
	Body api.Envelope[Brand]
}

// BrandUpdateOutput for PUT /brands/{id}
type BrandUpdateOutput struct {
	Body api.Envelope[Brand]
}

// BrandDeleteOutput for DELETE /brands/{id}
type BrandDeleteOutput struct {
	Body api.Envelope[DeleteResult]
}
