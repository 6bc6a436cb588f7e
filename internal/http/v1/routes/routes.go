// Package routes wires every v1 endpoint into the API.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/http/v1/brands"
	"github.com/mockmart/catalog-api/internal/http/v1/categories"
	"github.com/mockmart/catalog-api/internal/http/v1/files"
	"github.com/mockmart/catalog-api/internal/http/v1/health"
	"github.com/mockmart/catalog-api/internal/http/v1/products"
	"github.com/mockmart/catalog-api/internal/http/v1/stores"
	"github.com/mockmart/catalog-api/internal/http/v1/warehouses"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
	storesvc "github.com/mockmart/catalog-api/internal/service/store"
	warehousesvc "github.com/mockmart/catalog-api/internal/service/warehouse"
)

// Services bundles every service the routes need.
type Services struct {
	Products   productsvc.Service
	Stores     storesvc.Service
	Categories categorysvc.Service
	Brands     brandsvc.Service
	Warehouses warehousesvc.Service
	Files      filesvc.Service
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svcs Services) {
	health.Register(api)
	products.Register(api, svcs.Products)
	stores.Register(api, svcs.Stores)
	categories.Register(api, svcs.Categories)
	brands.Register(api, svcs.Brands)
	warehouses.Register(api, svcs.Warehouses)
	files.Register(api, svcs.Files)
}
