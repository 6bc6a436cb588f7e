// Package health exposes the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mockmart/catalog-api/internal/api"
	"github.com/mockmart/catalog-api/internal/respond"
)

// Status is the health check payload.
type Status struct {
	Status string `json:"status" example:"ok"`
}

// HealthOutput for GET /health
type HealthOutput struct {
	Body api.Envelope[Status]
}

// Register registers the health endpoint.
func Register(humaAPI huma.API) {
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{
			Body: respond.Success(ctx, Status{Status: "ok"}, "health.check.success"),
		}, nil
	})
}
