package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
)

// RouteRepository defines the interface for scheduled route queries
type RouteRepository interface {
	FindFlights(ctx context.Context, query entity.RouteQuery) ([]entity.FlightPath, string, error)
}
