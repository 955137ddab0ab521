package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
)

// UserRepository defines the interface for tenant-scoped user documents
type UserRepository interface {
	// Create inserts a new user and fails with ErrAlreadyExists if the key is taken
	Create(ctx context.Context, tenant string, user *entity.User) (string, error)
	// GetPassword reads only the password field
	GetPassword(ctx context.Context, tenant, username string) (string, string, error)
	// GetBookings reads only the bookings field; a missing field yields an empty list
	GetBookings(ctx context.Context, tenant, username string) ([]string, string, error)
	// AppendBooking atomically pushes a booking key, creating the array if needed
	AppendBooking(ctx context.Context, tenant, username, bookingID string) (string, error)
}
