package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runRequestContext(t *testing.T, mutate func(*http.Request)) (*httptest.ResponseRecorder, *RequestInfo) {
	t.Helper()
	var captured *RequestInfo
	handler := RequestContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = InfoFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/products?page=2&limit=5", nil)
	req.RemoteAddr = "203.0.113.9:54321"
	if mutate != nil {
		mutate(req)
	}
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if captured == nil {
		t.Fatal("expected request info in context")
	}
	return resp, captured
}

func TestRequestContextGeneratesIdentifiers(t *testing.T) {
	resp, info := runRequestContext(t, nil)

	if info.CorrelationID == "" || info.TraceID == "" || info.RequestID == "" {
		t.Fatalf("expected all identifiers set, got %+v", info)
	}
	if info.TraceID == info.RequestID || info.TraceID == info.CorrelationID || info.RequestID == info.CorrelationID {
		t.Fatalf("expected distinct identifiers, got %+v", info)
	}
	if info.Method != http.MethodGet || info.Path != "/products" || info.Query != "page=2&limit=5" {
		t.Fatalf("expected request snapshot, got %+v", info)
	}
	if info.Host != "203.0.113.9" {
		t.Fatalf("expected client host without port, got %q", info.Host)
	}

	for header, want := range map[string]string{
		HeaderCorrelationID: info.CorrelationID,
		HeaderTraceID:       info.TraceID,
		HeaderRequestID:     info.RequestID,
	} {
		if got := resp.Header().Get(header); got != want {
			t.Errorf("expected %s header %q, got %q", header, want, got)
		}
	}
}

func TestRequestContextEchoesValidCorrelationID(t *testing.T) {
	resp, info := runRequestContext(t, func(r *http.Request) {
		r.Header.Set(HeaderCorrelationID, "client-supplied-1")
	})
	if info.CorrelationID != "client-supplied-1" {
		t.Fatalf("expected inbound correlation ID to be reused, got %q", info.CorrelationID)
	}
	if got := resp.Header().Get(HeaderCorrelationID); got != "client-supplied-1" {
		t.Fatalf("expected correlation header echoed, got %q", got)
	}
}

func TestRequestContextReplacesInvalidCorrelationID(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"control bytes": "bad\x00id",
		"non-ascii":     "id-é",
		"too long":      strings.Repeat("a", maxCorrelationIDLength+1),
	}
	for name, inbound := range cases {
		t.Run(name, func(t *testing.T) {
			_, info := runRequestContext(t, func(r *http.Request) {
				if inbound != "" {
					r.Header.Set(HeaderCorrelationID, inbound)
				}
			})
			if info.CorrelationID == inbound {
				t.Fatalf("expected invalid correlation ID %q to be replaced", inbound)
			}
			if !isValidCorrelationID(info.CorrelationID) {
				t.Fatalf("expected generated correlation ID to be valid, got %q", info.CorrelationID)
			}
		})
	}
}

func TestRequestContextIdentifierUniqueness(t *testing.T) {
	seen := make(map[string]bool, 30000)
	for i := 0; i < 10000; i++ {
		_, info := runRequestContext(t, nil)
		for _, id := range []string{info.CorrelationID, info.TraceID, info.RequestID} {
			if seen[id] {
				t.Fatalf("identifier collision after %d requests: %s", i, id)
			}
			seen[id] = true
		}
	}
}
