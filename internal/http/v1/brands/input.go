package brands

import "github.com/mockmart/catalog-api/internal/pagination"

// BrandListInput for GET /brands
type BrandListInput struct {
	pagination.Params
}

// BrandGetInput for GET /brands/{id}
type BrandGetInput struct {
	ID string `path:"id" doc:"Brand ID"`
}

// BrandCreateInput for POST /brands
type BrandCreateInput struct {
	Body struct {
		Name        string `json:"name"                  minLength:"1" maxLength:"200" required:"true" doc:"Brand name"`
		Description string `json:"description,omitempty" maxLength:"2000"                             doc:"Brand description"`
		ImageID     string `json:"image_id,omitempty"                                                 doc:"Logo file ID"`
	}
}

// BrandUpdateInput for PUT /brands/{id}
type BrandUpdateInput struct {
	ID   string `path:"id" doc:"Brand ID"`
	Body struct {
		Name        *string `json:"name,omitempty"        minLength:"1" maxLength:"200" doc:"Brand name"`
		Description *string `json:"description,omitempty" maxLength:"2000"              doc:"Brand description"`
		ImageID     *string `json:"image_id,omitempty"                                  doc:"Logo file ID"`
	}
}

// BrandDeleteInput for DELETE /brands/{id}
type BrandDeleteInput struct {
	ID string `path:"id" doc:"Brand ID"`
}
