package products

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/mockmart/catalog-api/internal/api"
	appmiddleware "github.com/mockmart/catalog-api/internal/middleware"
	"github.com/mockmart/catalog-api/internal/respond"
	productsvc "github.com/mockmart/catalog-api/internal/service/product"
)

func newTestRouter(svc productsvc.Service) chi.Router {
	respond.Install()
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.Use(
		appmiddleware.RequestContext(),
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("ProductsTest", "test")
	cfg.Transformers = nil
	api := humachi.New(router, cfg)
	Register(api, svc)
	return router
}

func seedOne(t *testing.T, svc *productsvc.MockProductService) *productsvc.Product {
	t.Helper()
	p, err := svc.Create(context.Background(), productsvc.CreateParams{
		Name:     "Wireless Keyboard",
		SKU:      "KB-1042",
		Price:    59.90,
		Stock:    12,
		Tags:     []string{"peripherals"},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta api.Meta        `json:"meta"`
}

func TestListProductsEnvelope(t *testing.T) {
	svc := productsvc.NewMockProductService()
	seedOne(t, svc)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products?page=1&limit=10", nil)
	req.RemoteAddr = "192.0.2.4:9999"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Meta.Message != "products.list.success" {
		t.Errorf("expected message products.list.success, got %q", env.Meta.Message)
	}
	if env.Meta.Status != "success" || env.Meta.Code != "200" {
		t.Errorf("expected success/200 meta, got %q/%q", env.Meta.Status, env.Meta.Code)
	}
	if env.Meta.Method == nil || *env.Meta.Method != http.MethodGet {
		t.Errorf("expected method GET, got %v", env.Meta.Method)
	}
	if env.Meta.Path == nil || *env.Meta.Path != "/products" {
		t.Errorf("expected path /products, got %v", env.Meta.Path)
	}
	if env.Meta.Query == nil || *env.Meta.Query != "page=1&limit=10" {
		t.Errorf("expected query echoed, got %v", env.Meta.Query)
	}

	p := env.Meta.Pagination
	if p == nil {
		t.Fatal("expected pagination block")
	}
	if p.Page != 1 || p.Limit != 10 || p.Total != 1 || p.TotalPages != 1 || p.HasNext || p.HasPrevious {
		t.Fatalf("unexpected pagination for single item: %+v", p)
	}

	var items []Product
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].SKU != "KB-1042" {
		t.Fatalf("expected seeded product, got %+v", items)
	}
}

func TestListProductsPageBeyondEnd(t *testing.T) {
	svc := productsvc.NewMockProductService()
	seedOne(t, svc)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products?page=5&limit=10", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	var items []Product
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
	if env.Meta.Pagination == nil || env.Meta.Pagination.Total != 1 || env.Meta.Pagination.Page != 5 {
		t.Fatalf("expected pagination to keep reporting totals, got %+v", env.Meta.Pagination)
	}
	if env.Meta.Pagination.HasNext {
		t.Fatal("page beyond the end must not report has_next")
	}
}

func TestListProductsLimitTooLargeRejected(t *testing.T) {
	svc := productsvc.NewMockProductService()
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products?limit=101", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	var body api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body.Message != "validation.error" {
		t.Fatalf("expected validation.error, got %q", body.Message)
	}
	found := false
	for _, d := range body.Errors {
		if d.Field == "limit" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a detail naming limit, got %+v", body.Errors)
	}
}

func TestCreateProductSuccess(t *testing.T) {
	svc := productsvc.NewMockProductService()
	router := newTestRouter(svc)

	body := `{"name":"USB Hub","sku":"HUB-7","price":24.5,"stock":3,"is_active":true}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Meta.Message != "products.create.success" || env.Meta.Code != "201" {
		t.Fatalf("expected create meta, got %q/%q", env.Meta.Message, env.Meta.Code)
	}
	var created Product
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if created.ID == "" || created.SKU != "HUB-7" {
		t.Fatalf("expected created product with ID, got %+v", created)
	}
}

func TestCreateProductMissingName(t *testing.T) {
	svc := productsvc.NewMockProductService()
	router := newTestRouter(svc)

	body := `{"sku":"HUB-7","price":24.5}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	var errBody api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if errBody.Code != 422 || errBody.Message != "validation.error" {
		t.Fatalf("expected flat 422 validation.error, got %+v", errBody)
	}
	found := false
	for _, d := range errBody.Errors {
		if d.Field == "name" && d.Message == "Field required" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected {name, Field required} detail, got %+v", errBody.Errors)
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	svc := productsvc.NewMockProductService()
	seedOne(t, svc)
	router := newTestRouter(svc)

	body := `{"name":"Another Keyboard","sku":"KB-1042","price":10}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	var errBody api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	found := false
	for _, d := range errBody.Errors {
		if d.Field == "sku" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a detail naming sku, got %+v", errBody.Errors)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := productsvc.NewMockProductService()
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	var errBody api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if errBody.Code != 404 || errBody.Message != "product not found" {
		t.Fatalf("expected flat 404 body, got %+v", errBody)
	}
	if errBody.Errors == nil {
		t.Fatal("expected errors array, got null")
	}
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	svc := productsvc.NewMockProductService()
	p := seedOne(t, svc)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/products/"+p.ID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Meta.Message != "products.delete.success" {
		t.Errorf("expected delete message, got %q", env.Meta.Message)
	}
	var result DeleteResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if result.Status != "deleted" {
		t.Fatalf("expected status deleted, got %q", result.Status)
	}

	// The record is hidden from listings but still retrievable by ID.
	listReq := httptest.NewRequest(http.MethodGet, "/products", nil)
	listResp := httptest.NewRecorder()
	router.ServeHTTP(listResp, listReq)
	var listEnv envelope
	if err := json.Unmarshal(listResp.Body.Bytes(), &listEnv); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	var items []Product
	if err := json.Unmarshal(listEnv.Data, &items); err != nil {
		t.Fatalf("data unmarshal: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected soft-deleted product hidden, got %+v", items)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/products/"+p.ID, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected soft-deleted product retrievable by ID, got %d", getResp.Code)
	}
}

func TestCorrelationIDEcho(t *testing.T) {
	svc := productsvc.NewMockProductService()
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(appmiddleware.HeaderCorrelationID, "test-correlation-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get(appmiddleware.HeaderCorrelationID); got != "test-correlation-42" {
		t.Fatalf("expected correlation header echoed, got %q", got)
	}
	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Meta.CorrelationID == nil || *env.Meta.CorrelationID != "test-correlation-42" {
		t.Fatalf("expected correlation ID in meta, got %v", env.Meta.CorrelationID)
	}
}
