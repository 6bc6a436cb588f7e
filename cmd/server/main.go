package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mockmart/catalog-api/internal/common"
	"github.com/mockmart/catalog-api/internal/firebase"
	"github.com/mockmart/catalog-api/internal/http/v1/routes"
	appmiddleware "github.com/mockmart/catalog-api/internal/middleware"
	"github.com/mockmart/catalog-api/internal/respond"
	"github.com/mockmart/catalog-api/internal/seed"
	brandsvc "github.com/mockmart/catalog-api/internal/service/brand"
	categorysvc "github.com/mockmart/catalog-api/internal/service/category"
	filesvc "github.com/mockmart/catalog-api/internal/service/file"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
	storesvc "github.com/mockmart/catalog-api/internal/service/store"
	warehousesvc "github.com/mockmart/catalog-api/internal/service/warehouse"
	"github.com/mockmart/catalog-api/internal/upload"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		appmiddleware.LogWarn(context.Background(), "failed to load .env", zap.Error(err))
	}

	ctx := context.Background()
	respond.Install()

	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	})
	if err != nil {
		appmiddleware.LogFatal(ctx, "firestore init failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			appmiddleware.LogError(context.Background(), "firestore close error", err)
		}
	}()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		appmiddleware.LogFatal(ctx, "upload dir init failed", err)
	}

	fileService := filesvc.NewFirestoreStore(clients.Firestore)
	brandService := brandsvc.NewFirestoreStore(clients.Firestore, fileService)
	categoryService := categorysvc.NewFirestoreStore(clients.Firestore, fileService)
	storeService := storesvc.NewFirestoreStore(clients.Firestore)
	warehouseService := warehousesvc.NewFirestoreStore(clients.Firestore)
	productService := productsvc.NewFirestoreStore(clients.Firestore, brandService, categoryService, fileService)

	if os.Getenv("SKIP_SEED") == "" {
		err := seed.Bootstrap(ctx, seed.NewFirestoreMarker(clients.Firestore), seed.Services{
			Brands:     brandService,
			Categories: categoryService,
			Stores:     storeService,
			Warehouses: warehouseService,
			Files:      fileService,
			Products:   productService,
		})
		if err != nil {
			appmiddleware.LogFatal(ctx, "seeding failed", err)
		}
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs", upload.StaticPrefix),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		appmiddleware.RequestContext(),
		// RequestSize limits request body size; uploads carry images so the cap
		// matches the multipart bound.
		chimiddleware.RequestSize(upload.MaxUploadBytes),
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	cfg := huma.DefaultConfig("Catalog API", Version)
	cfg.DocsPath = "/api-docs"
	// The $schema link transformer would add a key beside data/meta; response
	// bodies carry exactly the documented envelope.
	cfg.Transformers = nil
	api := humachi.New(router, cfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, routes.Services{
		Products:   productService,
		Stores:     storeService,
		Categories: categoryService,
		Brands:     brandService,
		Warehouses: warehouseService,
		Files:      fileService,
	})

	// Multipart upload and static serving sit outside the Huma API.
	router.Method(http.MethodPost, "/files/upload", upload.NewHandler(uploadDir, fileService))
	router.Handle(upload.StaticPrefix+"*", upload.Static(uploadDir))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appmiddleware.LogError(shutdownCtx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}
