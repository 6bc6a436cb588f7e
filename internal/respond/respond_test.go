package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	appmiddleware "github.com/mockmart/catalog-api/internal/middleware"
)

func contextWithInfo() context.Context {
	var ctx context.Context
	handler := appmiddleware.RequestContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	req := httptest.NewRequest(http.MethodGet, "/products?page=1&limit=10", nil)
	req.RemoteAddr = "198.51.100.7:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return ctx
}

func TestMetaFromRequestContext(t *testing.T) {
	ctx := contextWithInfo()
	meta := Meta(ctx, "products.list.success", "200", nil)

	if meta.Message != "products.list.success" || meta.Status != api.StatusSuccess || meta.Code != "200" {
		t.Fatalf("unexpected meta header fields: %+v", meta)
	}
	if meta.TraceID == nil || meta.CorrelationID == nil || meta.RequestID == nil {
		t.Fatal("expected identifiers to be populated")
	}
	if meta.Method == nil || *meta.Method != http.MethodGet {
		t.Fatalf("expected method GET, got %v", meta.Method)
	}
	if meta.Path == nil || *meta.Path != "/products" {
		t.Fatalf("expected path /products, got %v", meta.Path)
	}
	if meta.Query == nil || *meta.Query != "page=1&limit=10" {
		t.Fatalf("expected query echoed, got %v", meta.Query)
	}
	if meta.Host == nil || *meta.Host != "198.51.100.7" {
		t.Fatalf("expected client host, got %v", meta.Host)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", meta.Timestamp); err != nil {
		t.Fatalf("expected microsecond UTC timestamp, got %q: %v", meta.Timestamp, err)
	}
	if meta.Additional == nil {
		t.Fatal("expected additional map to be present")
	}
}

func TestMetaOmitsEmptyQuery(t *testing.T) {
	var ctx context.Context
	handler := appmiddleware.RequestContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	meta := Meta(ctx, "health.check.success", "200", nil)
	if meta.Query != nil {
		t.Fatalf("expected nil query for bare path, got %q", *meta.Query)
	}
}

func TestSuccessCreatedPageCodes(t *testing.T) {
	ctx := contextWithInfo()
	if env := Success(ctx, "x", "things.get.success"); env.Meta.Code != "200" {
		t.Fatalf("expected code 200, got %q", env.Meta.Code)
	}
	if env := Created(ctx, "x", "things.create.success"); env.Meta.Code != "201" {
		t.Fatalf("expected code 201, got %q", env.Meta.Code)
	}
	env := Page(ctx, []string{"x"}, "things.list.success", api.NewPagination(1, 1, 10))
	if env.Meta.Pagination == nil {
		t.Fatal("expected pagination block")
	}
	if p := env.Meta.Pagination; p.Total != 1 || p.Page != 1 || p.Limit != 10 || p.TotalPages != 1 || p.HasNext || p.HasPrevious {
		t.Fatalf("unexpected pagination for total=1 page=1 limit=10: %+v", p)
	}
}

func TestMessageForStatus(t *testing.T) {
	cases := []struct {
		status int
		msg    string
		want   string
	}{
		{http.StatusUnprocessableEntity, "anything", "validation.error"},
		{http.StatusUnprocessableEntity, "", "validation.error"},
		{http.StatusNotFound, "product not found", "product not found"},
		{http.StatusNotFound, "", "Not Found"},
		{http.StatusInternalServerError, "", "internal.server.error"},
		{http.StatusInternalServerError, "internal error", "internal.server.error"},
		{http.StatusBadGateway, "  ", "internal.server.error"},
		{http.StatusBadGateway, "upstream exploded", "internal.server.error"},
	}
	for _, tc := range cases {
		if got := messageForStatus(tc.status, tc.msg); got != tc.want {
			t.Errorf("messageForStatus(%d, %q): expected %q, got %q", tc.status, tc.msg, got, tc.want)
		}
	}
}

func TestFieldFromLocation(t *testing.T) {
	cases := map[string]string{
		"body.name":       "name",
		"body.image_id":   "image_id",
		"query.limit":     "limit",
		"path.id":         "id",
		"body":            "",
		"query":           "",
		"header.X-Custom": "header.X-Custom",
	}
	for location, want := range cases {
		if got := fieldFromLocation(location); got != want {
			t.Errorf("fieldFromLocation(%q): expected %q, got %q", location, want, got)
		}
	}
}

func TestDetailsFromErrorsNormalizesRequiredProperty(t *testing.T) {
	details := detailsFromErrors([]error{
		&huma.ErrorDetail{Location: "body", Message: "expected required property name to be present"},
	})
	if len(details) != 1 {
		t.Fatalf("expected one detail, got %d", len(details))
	}
	if details[0].Field != "name" || details[0].Message != "Field required" {
		t.Fatalf("expected {name, Field required}, got %+v", details[0])
	}
}

func TestDetailsFromErrorsKeepsFieldLocations(t *testing.T) {
	details := detailsFromErrors([]error{
		&huma.ErrorDetail{Location: "body.price", Message: "expected number >= 0"},
		errors.New("free-form failure"),
	})
	if len(details) != 2 {
		t.Fatalf("expected two details, got %d", len(details))
	}
	if details[0].Field != "price" {
		t.Fatalf("expected field price, got %q", details[0].Field)
	}
	if details[1].Field != "" || details[1].Message != "free-form failure" {
		t.Fatalf("expected bare message detail, got %+v", details[1])
	}
}

func TestStatusErrorBodyShape(t *testing.T) {
	se := statusError(context.Background(), http.StatusUnprocessableEntity, "", &huma.ErrorDetail{
		Location: "body",
		Message:  "expected required property name to be present",
	})
	body, ok := se.(*statusErrorBody)
	if !ok {
		t.Fatalf("expected *statusErrorBody, got %T", se)
	}
	if body.GetStatus() != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", body.GetStatus())
	}

	raw, err := json.Marshal(body.ErrorResponse)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Code != 422 || decoded.Message != "validation.error" {
		t.Fatalf("expected 422 validation.error, got %d %q", decoded.Code, decoded.Message)
	}
	if len(decoded.Errors) != 1 || decoded.Errors[0].Field != "name" || decoded.Errors[0].Message != "Field required" {
		t.Fatalf("expected missing-name detail, got %+v", decoded.Errors)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", decoded.Timestamp); err != nil {
		t.Fatalf("expected microsecond timestamp, got %q", decoded.Timestamp)
	}
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	NotFoundHandler()(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != 404 || body.Message != "Not Found" {
		t.Fatalf("expected flat 404 body, got %+v", body)
	}
	if body.Errors == nil {
		t.Fatal("expected errors array, got null")
	}
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("db password hunter2 leaked in panic")
	}))
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body api.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Message != "internal.server.error" {
		t.Fatalf("expected internal.server.error, got %q", body.Message)
	}
	if len(body.Errors) != 0 {
		t.Fatalf("expected opaque 500 body, got errors %+v", body.Errors)
	}
	raw := resp.Body.String()
	for _, leak := range []string{"hunter2", "goroutine", "runtime/debug"} {
		if strings.Contains(raw, leak) {
			t.Fatalf("panic detail leaked into response: %s", raw)
		}
	}
}

func TestStatusErrorServerErrorIsOpaque(t *testing.T) {
	se := statusError(context.Background(), http.StatusInternalServerError, "internal error",
		errors.New("firestore: rpc error connecting to 10.0.0.5:443"))
	body, ok := se.(*statusErrorBody)
	if !ok {
		t.Fatalf("expected *statusErrorBody, got %T", se)
	}
	if body.Message != "internal.server.error" {
		t.Fatalf("expected internal.server.error, got %q", body.Message)
	}
	if len(body.Errors) != 0 {
		t.Fatalf("expected no cause in 500 body, got %+v", body.Errors)
	}

	raw, err := json.Marshal(body.ErrorResponse)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "10.0.0.5") {
		t.Fatalf("cause leaked into response: %s", raw)
	}
	if !strings.Contains(string(raw), `"errors":[]`) {
		t.Fatalf("expected empty errors array, got %s", raw)
	}
}
