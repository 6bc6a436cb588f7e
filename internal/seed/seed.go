// Package seed populates the database with linked synthetic catalog data on
// first boot.
package seed

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mockmart/catalog-api/internal/common"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
	storesvc "github.com/mockmart/catalog-api/internal/service/store"
	warehousesvc "github.com/mockmart/catalog-api/internal/service/warehouse"
)

const (
	brandCount     = 8
	rootCount      = 5
	childrenPer    = 3
	storeCount     = 6
	warehouseCount = 4
	imageCount     = 12
	productCount   = 50
)

// Marker records whether seeding has already happened, so restarts don't
// duplicate data.
type Marker interface {
	Seeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

// FirestoreMarker keeps the sentinel in a meta/seed document.
type FirestoreMarker struct {
	client *firestore.Client
}

// NewFirestoreMarker creates a marker backed by the meta collection.
func NewFirestoreMarker(client *firestore.Client) *FirestoreMarker {
	return &FirestoreMarker{client: client}
}

func (m *FirestoreMarker) Seeded(ctx context.Context) (bool, error) {
	_, err := m.client.Collection("meta").Doc("seed").Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read seed sentinel: %w", err)
	}
	return true, nil
}

func (m *FirestoreMarker) MarkSeeded(ctx context.Context) error {
	_, err := m.client.Collection("meta").Doc("seed").Set(ctx, map[string]any{
		"seeded_at": common.Now(),
	})
	if err != nil {
		return fmt.Errorf("write seed sentinel: %w", err)
	}
	return nil
}

// Services bundles everything Bootstrap writes through.
type Services struct {
	Brands     brandsvc.Service
	Categories categorysvc.Service
	Stores     storesvc.Service
	Warehouses warehousesvc.Service
	Files      filesvc.Service
	Products   productsvc.Service
}

var bootstrapMu sync.Mutex

// Bootstrap seeds the catalog once. The marker makes it idempotent across
// restarts; the package mutex keeps it from running twice in-process.
func Bootstrap(ctx context.Context, marker Marker, svcs Services) error {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()

	done, err := marker.Seeded(ctx)
	if err != nil {
		return err
	}
	if done {
		common.Logger().Info("seed already present, skipping")
		return nil
	}

	faker := gofakeit.New(0)

	images, err := seedFiles(ctx, svcs.Files, faker)
	if err != nil {
		return fmt.Errorf("seed files: %w", err)
	}
	brands, err := seedBrands(ctx, svcs.Brands, faker, images)
	if err != nil {
		return fmt.Errorf("seed brands: %w", err)
	}
	categories, err := seedCategories(ctx, svcs.Categories, faker, images)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedStores(ctx, svcs.Stores, faker); err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	if err := seedWarehouses(ctx, svcs.Warehouses, faker); err != nil {
		return fmt.Errorf("seed warehouses: %w", err)
	}
	if err := seedProducts(ctx, svcs.Products, faker, brands, categories, images); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	if err := marker.MarkSeeded(ctx); err != nil {
		return err
	}
	common.Logger().Info("seeded catalog",
		zap.Int("brands", len(brands)),
		zap.Int("categories", len(categories)),
		zap.Int("products", productCount),
	)
	return nil
}

func seedFiles(ctx context.Context, svc filesvc.Service, faker *gofakeit.Faker) ([]filesvc.File, error) {
	files := make([]filesvc.File, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		name := fmt.Sprintf("%s-%d.jpg", faker.Word(), i)
		f, err := svc.Create(ctx, filesvc.CreateParams{
			Filename:    name,
			URL:         fmt.Sprintf("https://picsum.photos/seed/%s/640/480", name),
			ContentType: "image/jpeg",
			Size:        int64(faker.Number(20_000, 400_000)),
		})
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}

func seedBrands(ctx context.Context, svc brandsvc.Service, faker *gofakeit.Faker, images []filesvc.File) ([]brandsvc.Brand, error) {
	brands := make([]brandsvc.Brand, 0, brandCount)
	seen := map[string]bool{}
	for len(brands) < brandCount {
		name := faker.Company()
		if seen[name] {
			continue
		}
		seen[name] = true
		b, err := svc.Create(ctx, brandsvc.CreateParams{
			Name:        name,
			Description: faker.Sentence(8),
			ImageID:     images[len(brands)%len(images)].ID,
		})
		if err != nil {
			return nil, err
		}
		brands = append(brands, *b)
	}
	return brands, nil
}

func seedCategories(ctx context.Context, svc categorysvc.Service, faker *gofakeit.Faker, images []filesvc.File) ([]categorysvc.Category, error) {
	var all []categorysvc.Category
	seen := map[string]bool{}
	uniqueName := func() string {
		for {
			name := faker.ProductCategory()
			if !seen[name] {
				seen[name] = true
				return name
			}
			// Exhausted the generator's category list; extend with a word.
			name = name + " " + faker.Word()
			if !seen[name] {
				seen[name] = true
				return name
			}
		}
	}
	for i := 0; i < rootCount; i++ {
		root, err := svc.Create(ctx, categorysvc.CreateParams{
			Name:        uniqueName(),
			Description: faker.Sentence(6),
			ImageID:     images[i%len(images)].ID,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, *root)
		for j := 0; j < childrenPer; j++ {
			child, err := svc.Create(ctx, categorysvc.CreateParams{
				Name:        uniqueName(),
				Description: faker.Sentence(6),
				ParentID:    &root.ID,
				ImageID:     images[(i+j)%len(images)].ID,
			})
			if err != nil {
				return nil, err
			}
			all = append(all, *child)
		}
	}
	return all, nil
}

func seedStores(ctx context.Context, svc storesvc.Service, faker *gofakeit.Faker) error {
	for i := 0; i < storeCount; i++ {
		addr := faker.Address()
		_, err := svc.Create(ctx, storesvc.CreateParams{
			Name:     faker.Company() + " " + faker.City(),
			Address:  addr.Address,
			Phone:    faker.Phone(),
			IsActive: i%5 != 0,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedWarehouses(ctx context.Context, svc warehousesvc.Service, faker *gofakeit.Faker) error {
	for i := 0; i < warehouseCount; i++ {
		_, err := svc.Create(ctx, warehousesvc.CreateParams{
			Name:     fmt.Sprintf("%s DC %d", faker.City(), i+1),
			Location: faker.City(),
			Capacity: faker.Number(1_000, 50_000),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, svc productsvc.Service, faker *gofakeit.Faker, brands []brandsvc.Brand, categories []categorysvc.Category, images []filesvc.File) error {
	for i := 0; i < productCount; i++ {
		primary := images[i%len(images)]
		gallery := []string{images[(i+1)%len(images)].ID}
		_, err := svc.Create(ctx, productsvc.CreateParams{
			Name:           faker.ProductName(),
			Description:    faker.Sentence(12),
			SKU:            fmt.Sprintf("SKU-%05d", i+1),
			Price:          faker.Price(1, 2_000),
			Stock:          faker.Number(0, 500),
			BrandID:        brands[i%len(brands)].ID,
			CategoryID:     categories[i%len(categories)].ID,
			Tags:           []string{faker.Word(), faker.Word()},
			IsActive:       i%7 != 0,
			PrimaryImageID: primary.ID,
			ImageIDs:       gallery,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
