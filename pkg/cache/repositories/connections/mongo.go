package dbconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "annotator"

type CacheDBConfig struct {
	ConnectionString string
}

type CacheDBProductionConnection struct {
	config CacheDBConfig
	client *mongo.Client
}

var _ CacheDBConnection = (*CacheDBProductionConnection)(nil)

func NewCacheDBProductionConnection(ctx context.Context, config CacheDBConfig) (*CacheDBProductionConnection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return &CacheDBProductionConnection{
		config: config,
		client: client,
	}, nil
}

func (c *CacheDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database(databaseName).Collection(collectionName)
}

func (c *CacheDBProductionConnection) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
