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

// MongoUserRepository implements UserRepository with one users collection per tenant
type MongoUserRepository struct {
	db *mongo.Database
}

// NewMongoUserRepository creates a new user repository
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &MongoUserRepository{
		db: db,
	}
}

// Create inserts the user document; InsertOne never overwrites, so a taken key fails
func (r *MongoUserRepository) Create(ctx context.Context, tenant string, user *entity.User) (string, error) {
	coll := tenantCollection(r.db, tenant, "users")
	desc := fmt.Sprintf("KV insert - scoped to %s: document %s", coll.Name(), user.ID)

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return desc, wrapMongoError("create user", err)
	}
	return desc, nil
}

// GetPassword reads only the password field of the user document
func (r *MongoUserRepository) GetPassword(ctx context.Context, tenant, username string) (string, string, error) {
	coll := tenantCollection(r.db, tenant, "users")
	desc := fmt.Sprintf("KV get - scoped to %s: for password field in document %s", coll.Name(), username)

	var doc struct {
		Password *string `bson:"password"`
	}
	opts := options.FindOne().SetProjection(bson.M{"password": 1})
	if err := coll.FindOne(ctx, bson.M{"_id": username}, opts).Decode(&doc); err != nil {
		return "", desc, wrapMongoError("get password", err)
	}
	if doc.Password == nil {
		return "", desc, fmt.Errorf("get password: field missing: %w", repository.ErrNotFound)
	}
	return *doc.Password, desc, nil
}

// GetBookings reads only the bookings field; a user without the field has no bookings
func (r *MongoUserRepository) GetBookings(ctx context.Context, tenant, username string) ([]string, string, error) {
	coll := tenantCollection(r.db, tenant, "users")
	desc := fmt.Sprintf("KV get - scoped to %s: for %s bookings in document %s", coll.Name(), username, username)

	var doc struct {
		Bookings []string `bson:"bookings"`
	}
	opts := options.FindOne().SetProjection(bson.M{"bookings": 1})
	if err := coll.FindOne(ctx, bson.M{"_id": username}, opts).Decode(&doc); err != nil {
		return nil, desc, wrapMongoError("get bookings", err)
	}
	if doc.Bookings == nil {
		return []string{}, desc, nil
	}
	return doc.Bookings, desc, nil
}

// AppendBooking pushes the key in a single update; $push creates the array when absent
func (r *MongoUserRepository) AppendBooking(ctx context.Context, tenant, username, bookingID string) (string, error) {
	coll := tenantCollection(r.db, tenant, "users")
	desc := fmt.Sprintf("KV update - scoped to %s: for bookings subdocument in document %s", coll.Name(), username)

	result, err := coll.UpdateOne(
		ctx,
		bson.M{"_id": username},
		bson.M{"$push": bson.M{"bookings": bookingID}},
	)
	if err != nil {
		return desc, wrapMongoError("append booking", err)
	}
	if result.MatchedCount == 0 {
		return desc, fmt.Errorf("append booking: no user %s: %w", username, repository.ErrNotFound)
	}
	return desc, nil
}
