package repository

import (
	"context"
	"errors"
	"fmt"

	"travel-sample-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// wrapMongoError maps driver failures onto repository errors
func wrapMongoError(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, repository.ErrAlreadyExists)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %v", op, repository.ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// tenantCollection returns the collection holding one tenant's documents of a kind
func tenantCollection(db *mongo.Database, tenant, kind string) *mongo.Collection {
	return db.Collection(tenant + "." + kind)
}
