package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
)

// BookingRepository defines the interface for tenant-scoped booking documents
type BookingRepository interface {
	Upsert(ctx context.Context, tenant string, booking *entity.Booking) (string, error)
	Get(ctx context.Context, tenant, id string) (*entity.Booking, string, error)
}
