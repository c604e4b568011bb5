package cacherepositories

import (
	"context"
	"errors"

	dbconnections "github.com/xingzheai/tss-annotator/pkg/cache/repositories/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const artifactsCollection = "cachedArtifacts"

type cachedArtifactsRepository struct {
	conn dbconnections.CacheDBConnection
}

var _ CachedArtifactsRepository = (*cachedArtifactsRepository)(nil)

func NewCachedArtifactsRepository(conn dbconnections.CacheDBConnection) CachedArtifactsRepository {
	return &cachedArtifactsRepository{conn}
}

func (repo *cachedArtifactsRepository) CreateCachedArtifactInfo(ctx context.Context, info CachedArtifactModel) error {
	collection := repo.conn.Collection(artifactsCollection)

	result := collection.FindOne(ctx, bson.M{"signature": info.Signature, "module": info.Module})
	if result.Err() == nil {
		return ErrCachedArtifactAlreadyExists
	}
	if result.Err() != mongo.ErrNoDocuments {
		return result.Err()
	}

	_, err := collection.InsertOne(ctx, info)
	return err
}

func (repo *cachedArtifactsRepository) DeleteCachedArtifactInfo(ctx context.Context, signature, module string) error {
	collection := repo.conn.Collection(artifactsCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"signature": signature, "module": module})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrCachedArtifactNotFound
	}

	return nil
}

func (repo *cachedArtifactsRepository) GetCachedArtifactInfo(ctx context.Context, signature, module string) (CachedArtifactModel, error) {
	collection := repo.conn.Collection(artifactsCollection)

	var info CachedArtifactModel
	filter := bson.M{"signature": signature, "module": module}
	if err := collection.FindOne(ctx, filter).Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return CachedArtifactModel{}, ErrCachedArtifactNotFound
		}

		return CachedArtifactModel{}, err
	}

	return info, nil
}

func (repo *cachedArtifactsRepository) GetCachedArtifactInfosOfModule(ctx context.Context, module string) ([]CachedArtifactModel, error) {
	collection := repo.conn.Collection(artifactsCollection)

	cursor, err := collection.Find(ctx, bson.M{"module": module})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	infos := []CachedArtifactModel{}
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, err
	}

	return infos, nil
}

var (
	ErrCachedArtifactNotFound      = errors.New("cached artifact not found")
	ErrCachedArtifactAlreadyExists = errors.New("cached artifact already exists")
)
