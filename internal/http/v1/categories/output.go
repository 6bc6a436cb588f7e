package categories

import "github.com/mockmart/catalog-api/internal/api"

// CategoryListOutput for GET /categories
type CategoryListOutput struct {
	Body api.Envelope[[]Category]
}

// CategoryGetOutput for GET /categories/{id}
type CategoryGetOutput struct {
	Body api.Envelope[Category]
}

// CategoryCreateOutput for POST /categories (201 Created)
type CategoryCreateOutput struct {
	Body api.Envelope[Category]
}

// CategoryUpdateOutput for PUT /categories/{id}
type CategoryUpdateOutput struct {
	Body api.Envelope[Category]
}

// CategoryDeleteOutput for DELETE /categories/{id}
type CategoryDeleteOutput struct {
	Body api.Envelope[DeleteResult]
}
