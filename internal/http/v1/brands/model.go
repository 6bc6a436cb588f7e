package brands

import (
	"github.com/mockmart/catalog-api/internal/common"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
)

// Brand is the HTTP representation of a brand.
type Brand struct {
	ID          string      `json:"id"          doc:"Brand ID"          example:"b9f1c8e2-1a2b-4c3d-8e4f-5a6b7c8d9e0f"`
	Name        string      `json:"name"        doc:"Brand name"        example:"Acme"`
	Description string      `json:"description" doc:"Brand description" example:"Household everything"`
	ImageID     string      `json:"image_id"    doc:"Logo file ID"`
	ImageURL    string      `json:"image_url"   doc:"Resolved logo URL"`
	CreatedAt   common.Time `json:"created_at"  doc:"Creation time"`
	UpdatedAt   common.Time `json:"updated_at"  doc:"Last update time"`
}

// DeleteResult confirms a successful delete.
type DeleteResult struct {
	Status string `json:"status" example:"deleted"`
}

func toHTTPBrand(b *brandsvc.Brand) Brand {
	return Brand{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		ImageID:     b.ImageID,
		ImageURL:    b.ImageURL,
		CreatedAt:   common.Time{Time: b.CreatedAt},
		UpdatedAt:   common.Time{Time: b.UpdatedAt},
	}
}

func toHTTPBrands(items []brandsvc.Brand) []Brand {
	out := make([]Brand, 0, len(items))
	for i := range items {
		out = append(out, toHTTPBrand(&items[i]))
	}
	return out
}
