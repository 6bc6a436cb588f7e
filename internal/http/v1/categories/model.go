package categories

import (
	"github.com/mockmart/catalog-api/internal/common"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
)

// Category is the HTTP representation of a category.
type Category struct {
	ID          string      `json:"id"          doc:"Category ID"`
	Name        string      `json:"name"        doc:"Category name"   example:"Electronics"`
	Description string      `json:"description" doc:"Category description"`
	ParentID    *string     `json:"parent_id"   doc:"Parent category ID, null for root categories"`
	Order       int         `json:"order"       doc:"Display position among siblings"`
	ImageID     string      `json:"image_id"    doc:"Image file ID"`
	ImageURL    string      `json:"image_url"   doc:"Resolved image URL"`
	CreatedAt   common.Time `json:"created_at"  doc:"Creation time"`
	UpdatedAt   common.Time `json:"updated_at"  doc:"Last update time"`
}

// DeleteResult confirms a successful delete.
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
}

func toHTTPCategory(c *categorysvc.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		Order:       c.Order,
		ImageID:     c.ImageID,
		ImageURL:    c.ImageURL,
		CreatedAt:   common.Time{Time: c.CreatedAt},
		UpdatedAt:   common.Time{Time: c.UpdatedAt},
	}
}

func toHTTPCategories(items []categorysvc.Category) []Category {
	out := make([]Category, 0, len(items))
	for i := range items {
		out = append(out, toHTTPCategory(&items[i]))
	}
	return out
}
