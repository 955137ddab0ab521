package repository

import (
	"context"
	"fmt"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements BookingRepository with one bookings collection per tenant
type MongoBookingRepository struct {
	db *mongo.Database
}

// NewMongoBookingRepository creates a new booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &MongoBookingRepository{
		db: db,
	}
}

// Upsert stores the booking under its ID
func (r *MongoBookingRepository) Upsert(ctx context.Context, tenant string, booking *entity.Booking) (string, error) {
	coll := tenantCollection(r.db, tenant, "bookings")
	desc := fmt.Sprintf("KV upsert - scoped to %s: document %s", coll.Name(), booking.ID)

	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking, opts); err != nil {
		return desc, wrapMongoError("upsert booking", err)
	}
	return desc, nil
}

// Get fetches a full booking document
func (r *MongoBookingRepository) Get(ctx context.Context, tenant, id string) (*entity.Booking, string, error) {
	coll := tenantCollection(r.db, tenant, "bookings")
	desc := fmt.Sprintf("KV get - scoped to %s: document %s", coll.Name(), id)

	var booking entity.Booking
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, desc, wrapMongoError("get booking", err)
	}
	return &booking, desc, nil
}
