package categories

import "github.com/mockmart/catalog-api/internal/pagination"

// CategoryListInput for GET /categories
type CategoryListInput struct {
	pagination.Params
	ParentID *string `query:"parent_id" doc:"Only categories under this parent"`
}

// CategoryGetInput for GET /categories/{id}
type CategoryGetInput struct {
	ID string `path:"id" doc:"Category ID"`
}

// CategoryCreateInput for POST /categories
type CategoryCreateInput struct {
	Body struct {
		Name        string  `json:"name"                  minLength:"1" maxLength:"200" required:"true" doc:"Category name"`
		Description string  `json:"description,omitempty" maxLength:"2000"                             doc:"Category description"`
		ParentID    *string `json:"parent_id,omitempty"                                                doc:"Parent category ID"`
		Order       *int    `json:"order,omitempty"       minimum:"0"                                  doc:"Display position; next free slot when absent"`
		ImageID     string  `json:"image_id,omitempty"                                                 doc:"Image file ID"`
	}
}

// CategoryUpdateInput for PUT /categories/{id}
type CategoryUpdateInput struct {
	ID   string `path:"id" doc:"Category ID"`
	Body struct {
		Name        *string `json:"name,omitempty"        minLength:"1" maxLength:"200" doc:"Category name"`
		Description *string `json:"description,omitempty" maxLength:"2000"              doc:"Category description"`
		ParentID    *string `json:"parent_id,omitempty"                                 doc:"Parent category ID"`
		Order       *int    `json:"order,omitempty"       minimum:"0"                   doc:"Display position"`
		ImageID     *string `json:"image_id,omitempty"                                  doc:"Image file ID"`
	}
}

// CategoryDeleteInput for DELETE /categories/{id}
type CategoryDeleteInput struct {
	ID string `path:"id" doc:"Category ID"`
}
