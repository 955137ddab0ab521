package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/pkg/utils"
)

// AirportRepository defines the interface for airport reference queries.
// Each method also returns a description of the statement it ran.
type AirportRepository interface {
	Search(ctx context.Context, query utils.AirportQuery) ([]entity.Airport, string, error)
	ResolveCodes(ctx context.Context, fromName, toName string) ([]entity.ResolvedAirport, string, error)
}
