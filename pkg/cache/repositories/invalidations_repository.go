package cacherepositories

import (
	"context"
	"errors"

	dbconnections "github.com/xingzheai/tss-annotator/pkg/cache/repositories/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const invalidationsCollection = "invalidations"

type invalidationRepository struct {
	conn dbconnections.CacheDBConnection
}

var _ InvalidationsRepository = (*invalidationRepository)(nil)

func NewInvalidationsRepository(conn dbconnections.CacheDBConnection) InvalidationsRepository {
	return &invalidationRepository{conn}
}

func (r *invalidationRepository) CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error {
	if len(invalidation.RequestedInvalidations) == 0 {
		return ErrNoModulesRequested
	}

	coll := r.conn.Collection(invalidationsCollection)
	_, err := coll.InsertOne(ctx, invalidation)
	return err
}

// GetLatestInvalidation returns the newest invalidation that completed for module.
func (r *invalidationRepository) GetLatestInvalidation(ctx context.Context, module string) (InvalidationModel, error) {
	if module == "" {
		return InvalidationModel{}, ErrModuleNameNotAllowed
	}

	coll := r.conn.Collection(invalidationsCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "invalidationDate", Value: -1}})
	result := coll.FindOne(ctx, bson.D{{Key: "doneInvalidations", Value: module}}, opts)

	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return InvalidationModel{}, ErrInvalidationNotFound
		}

		return InvalidationModel{}, result.Err()
	}

	var invalidation InvalidationModel
	err := result.Decode(&invalidation)
	return invalidation, err
}

var (
	ErrNoModulesRequested   = errors.New("invalidation must name at least one module")
	ErrModuleNameNotAllowed = errors.New("this module name is not allowed")
	ErrInvalidationNotFound = errors.New("invalidation not found")
)
