package repository

import (
	"context"
	"fmt"
	"regexp"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hotelDisplayFields is the projection used for per-hit lookups
var hotelDisplayFields = bson.M{
	"name":           1,
	"description":    1,
	"address":        1,
	"city":           1,
	"state":          1,
	"country":        1,
	"free_breakfast": 1,
	"free_internet":  1,
	"free_parking":   1,
	"pets_ok":        1,
	"vacancy":        1,
}

// MongoHotelRepository implements HotelRepository over the shared hotels collection
type MongoHotelRepository struct {
	collection *mongo.Collection
}

// NewMongoHotelRepository creates a new hotel repository
func NewMongoHotelRepository(db *mongo.Database) repository.HotelRepository {
	collection := db.Collection("hotels")

	// Index on name for the result ordering
	ctx := context.Background()
	nameIndex := mongo.IndexModel{
		Keys: bson.M{"name": 1},
	}
	collection.Indexes().CreateOne(ctx, nameIndex)

	return &MongoHotelRepository{
		collection: collection,
	}
}

// BuildSearchFilter turns a conjunction of disjunctions into a Mongo filter.
// Each phrase is matched literally and case-insensitively inside its field.
func BuildSearchFilter(query entity.SearchQuery) bson.M {
	and := bson.A{}
	for _, disjunction := range query.Conjuncts {
		or := bson.A{}
		for _, match := range disjunction {
			or = append(or, bson.M{match.Field: primitive.Regex{
				Pattern: regexp.QuoteMeta(match.Phrase),
				Options: "i",
			}})
		}
		and = append(and, bson.M{"$or": or})
	}
	return bson.M{"$and": and}
}

// Search returns the ids of matching hotels, at most limit of them
func (r *MongoHotelRepository) Search(ctx context.Context, query entity.SearchQuery, limit int) ([]entity.SearchHit, string, error) {
	filter := BuildSearchFilter(query)

	desc := fmt.Sprintf("Search query - scoped to %s (limit %d)", r.collection.Name(), limit)
	if raw, err := bson.MarshalExtJSON(filter, false, false); err == nil {
		desc = fmt.Sprintf("%s: %s", desc, raw)
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, desc, wrapMongoError("search hotels", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, desc, wrapMongoError("search hotels", err)
	}

	hits := make([]entity.SearchHit, 0, len(rows))
	for _, row := range rows {
		hits = append(hits, entity.SearchHit{ID: row.ID})
	}
	return hits, desc, nil
}

// LookupFields fetches only the display fields of one hotel
func (r *MongoHotelRepository) LookupFields(ctx context.Context, id string) (*entity.Hotel, error) {
	var hotel entity.Hotel
	opts := options.FindOne().SetProjection(hotelDisplayFields)
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&hotel); err != nil {
		return nil, wrapMongoError("lookup hotel", err)
	}
	return &hotel, nil
}
