package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/google/uuid"
)

// Response headers carrying the per-request identifiers.
const (
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderTraceID       = "X-Trace-ID"
	HeaderRequestID     = "X-Request-ID"
)

// maxCorrelationIDLength bounds caller-supplied correlation IDs.
const maxCorrelationIDLength = 128

type ctxRequestInfoKey struct{}

// RequestInfo is the request context snapshot consumed by the envelope
// builder. It is immutable after the middleware constructs it.
type RequestInfo struct {
	CorrelationID string
	TraceID       string
	RequestID     string
	Method        string
	Path          string
	Query         string
	Host          string
}

// isValidCorrelationID accepts only printable ASCII of bounded length so a
// caller-supplied value is safe to echo in headers and logs.
func isValidCorrelationID(id string) bool {
	if len(id) == 0 || len(id) > maxCorrelationIDLength {
		return false
	}
	for i := range len(id) {
		c := id[i]
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// RequestContext returns middleware that assigns the per-request identifiers
// and captures the request context for response metadata. A valid inbound
// X-Correlation-ID is propagated instead of generated; trace and request IDs
// are always fresh UUIDv4 values. All three are set as response headers
// before the handler runs, so every terminal path carries them.
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(HeaderCorrelationID)
			if !isValidCorrelationID(correlationID) {
				correlationID = uuid.NewString()
			}

			info := &RequestInfo{
				CorrelationID: correlationID,
				TraceID:       uuid.NewString(),
				RequestID:     uuid.NewString(),
				Method:        r.Method,
				Path:          r.URL.Path,
				Query:         r.URL.RawQuery,
				Host:          clientHost(r),
			}

			h := w.Header()
			h.Set(HeaderCorrelationID, info.CorrelationID)
			h.Set(HeaderTraceID, info.TraceID)
			h.Set(HeaderRequestID, info.RequestID)

			ctx := context.WithValue(r.Context(), ctxRequestInfoKey{}, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientHost reports the connecting client's address without the port.
// Run RealIP earlier in the chain when behind a trusted proxy.
func clientHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// InfoFromContext returns the request info snapshot, or nil outside a request.
func InfoFromContext(ctx context.Context) *RequestInfo {
	if ctx == nil {
		return nil
	}
	if info, ok := ctx.Value(ctxRequestInfoKey{}).(*RequestInfo); ok {
		return info
	}
	return nil
}
