package products

import (
	"github.com/mockmart/catalog-api/internal/common"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
)

// Product is the HTTP representation of a product. Brand, category and
// images are populated from the referenced documents.
type Product struct {
	ID             string      `json:"id"               doc:"Product ID"`
	Name           string      `json:"name"             doc:"Product name" example:"Wireless Keyboard"`
	Description    string      `json:"description"      doc:"Product description"`
	SKU            string      `json:"sku"              doc:"Stock keeping unit" example:"KB-1042"`
	Price          float64     `json:"price"            doc:"Unit price"`
	Stock          int         `json:"stock"            doc:"Units in stock"`
	BrandID        string      `json:"brand_id"         doc:"Brand reference"`
	CategoryID     string      `json:"category_id"      doc:"Category reference"`
	Tags           []string    `json:"tags"             doc:"Free-form tags"`
	IsActive       bool        `json:"is_active"        doc:"Whether the product is purchasable"`
	PrimaryImageID string      `json:"primary_image_id" doc:"Primary image file reference"`
	ImageIDs       []string    `json:"image_ids"        doc:"Gallery image file references"`
	Brand          *Brand      `json:"brand"            doc:"Populated brand, null when unset"`
	Category       *Category   `json:"category"         doc:"Populated category, null when unset"`
	Images         []Image     `json:"images"           doc:"Populated image files"`
	CreatedAt      common.Time `json:"created_at"       doc:"Creation time"`
	UpdatedAt      common.Time `json:"updated_at"       doc:"Last update time"`
	DeletedAt      *string     `json:"deleted_at"       doc:"Soft-delete time, null when live"`
}

// Brand is the populated brand reference on a product.
type Brand struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Category is the populated category reference on a product.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// Image is a populated image file on a product.
type Image struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

// DeleteResult confirms a successful soft delete.
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
}

func toHTTPProduct(p *productsvc.Product) Product {
	out := Product{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		Price:          p.Price,
		Stock:          p.Stock,
		BrandID:        p.BrandID,
		CategoryID:     p.CategoryID,
		Tags:           p.Tags,
		IsActive:       p.IsActive,
		PrimaryImageID: p.PrimaryImageID,
		ImageIDs:       p.ImageIDs,
		Images:         []Image{},
		CreatedAt:      common.Time{Time: p.CreatedAt},
		UpdatedAt:      common.Time{Time: p.UpdatedAt},
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.ImageIDs == nil {
		out.ImageIDs = []string{}
	}
	if p.DeletedAt != nil {
		ts := common.Timestamp(*p.DeletedAt)
		out.DeletedAt = &ts
	}
	if p.Brand != nil {
		out.Brand = &Brand{ID: p.Brand.ID, Name: p.Brand.Name, ImageURL: p.Brand.ImageURL}
	}
	if p.Category != nil {
		out.Category = &Category{ID: p.Category.ID, Name: p.Category.Name, ParentID: p.Category.ParentID}
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, Image{
			ID:          img.ID,
			Filename:    img.Filename,
			URL:         img.URL,
			ContentType: img.ContentType,
		})
	}
	return out
}

func toHTTPProducts(items []productsvc.Product) []Product {
	out := make([]Product, 0, len(items))
	for i := range items {
		out = append(out, toHTTPProduct(&items[i]))
	}
	return out
}
