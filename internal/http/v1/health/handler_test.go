package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/mockmart/catalog-api/internal/api"
	appmiddleware "github.com/mockmart/catalog-api/internal/middleware"
	"github.com/mockmart/catalog-api/internal/respond"
)

func TestHealthCheck(t *testing.T) {
	respond.Install()
	router := chi.NewRouter()
	router.Use(appmiddleware.RequestContext())
	cfg := huma.DefaultConfig("HealthTest", "test")
	cfg.Transformers = nil
	Register(humachi.New(router, cfg))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var env struct {
		Data Status   `json:"data"`
		Meta api.Meta `json:"meta"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if env.Data.Status != "ok" {
		t.Fatalf("expected status ok, got %q", env.Data.Status)
	}
	if env.Meta.Message != "health.check.success" {
		t.Fatalf("expected health.check.success, got %q", env.Meta.Message)
	}
	if env.Meta.Query != nil {
		t.Fatalf("expected null query, got %v", env.Meta.Query)
	}
}
