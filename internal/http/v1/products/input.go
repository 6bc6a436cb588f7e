package products

import "github.com/mockmart/catalog-api/internal/pagination"

// ProductListInput for GET /products
type ProductListInput struct {
	pagination.Params
	BrandID        *string  `query:"brand_id"        doc:"Only products of this brand"`
	CategoryID     *string  `query:"category_id"     doc:"Only products in this category"`
	IsActive       *bool    `query:"is_active"       doc:"Only active or inactive products"`
	Tags           []string `query:"tags"            doc:"Products carrying any of these tags"`
	IncludeDeleted bool     `query:"include_deleted" doc:"Include soft-deleted products"`
	Sort           string   `query:"sort"            enum:"name_asc,name_desc,created_asc,created_desc" default:"created_desc" doc:"Sort order"`
}

// ProductGetInput for GET /products/{id}
type ProductGetInput struct {
	ID string `path:"id" doc:"Product ID"`
}

// ProductCreateInput for POST /products
type ProductCreateInput struct {
	Body struct {
		Name           string   `json:"name"                       minLength:"1" maxLength:"300" required:"true" doc:"Product name"`
		Description    string   `json:"description,omitempty"      maxLength:"5000"                             doc:"Product description"`
		SKU            string   `json:"sku"                        minLength:"1" maxLength:"100" required:"true" doc:"Stock keeping unit, unique among live products"`
		Price          float64  `json:"price"                      minimum:"0"                   required:"true" doc:"Unit price"`
		Stock          int      `json:"stock,omitempty"            minimum:"0"                                  doc:"Units in stock"`
		BrandID        string   `json:"brand_id,omitempty"                                                      doc:"Brand reference"`
		CategoryID     string   `json:"category_id,omitempty"                                                   doc:"Category reference"`
		Tags           []string `json:"tags,omitempty"             maxItems:"20"                                doc:"Free-form tags"`
		IsActive       bool     `json:"is_active,omitempty"                                                     doc:"Whether the product is purchasable"`
		PrimaryImageID string   `json:"primary_image_id,omitempty"                                              doc:"Primary image file reference"`
		ImageIDs       []string `json:"image_ids,omitempty"        maxItems:"20"                                doc:"Gallery image file references"`
	}
}

// ProductUpdateInput for PUT /products/{id}
type ProductUpdateInput struct {
	ID   string `path:"id" doc:"Product ID"`
	Body struct {
		Name           *string   `json:"name,omitempty"             minLength:"1" maxLength:"300" doc:"Product name"`
		Description    *string   `json:"description,omitempty"      maxLength:"5000"              doc:"Product description"`
		SKU            *string   `json:"sku,omitempty"              minLength:"1" maxLength:"100" doc:"Stock keeping unit"`
		Price          *float64  `json:"price,omitempty"            minimum:"0"                   doc:"Unit price"`
		Stock          *int      `json:"stock,omitempty"            minimum:"0"                   doc:"Units in stock"`
		BrandID        *string   `json:"brand_id,omitempty"                                       doc:"Brand reference"`
		CategoryID     *string   `json:"category_id,omitempty"                                    doc:"Category reference"`
		Tags           *[]string `json:"tags,omitempty"             maxItems:"20"                 doc:"Free-form tags"`
		IsActive       *bool     `json:"is_active,omitempty"                                      doc:"Whether the product is purchasable"`
		PrimaryImageID *string   `json:"primary_image_id,omitempty"                               doc:"Primary image file reference"`
		ImageIDs       *[]string `json:"image_ids,omitempty"        maxItems:"20"                 doc:"Gallery image file references"`
	}
}

// ProductDeleteInput for DELETE /products/{id}
type ProductDeleteInput struct {
	ID string `path:"id" doc:"Product ID"`
}
