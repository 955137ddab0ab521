package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
)

// HotelRepository defines the interface for hotel search and field lookups
type HotelRepository interface {
	Search(ctx context.Context, query entity.SearchQuery, limit int) ([]entity.SearchHit, string, error)
	LookupFields(ctx context.Context, id string) (*entity.Hotel, error)
}
