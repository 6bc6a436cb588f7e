package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware with permissive defaults suitable for a mock
// backend consumed by arbitrary frontend origins. The identifier headers are
// exposed so browser clients can read them.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			HeaderCorrelationID,
		},
		ExposedHeaders: []string{
			HeaderCorrelationID,
			HeaderTraceID,
			HeaderRequestID,
		},
		MaxAge: 300,
	})
}
