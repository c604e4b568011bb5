package dbconnections

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CacheDBTestingConnection points at a throwaway database dropped on cleanup.
type CacheDBTestingConnection struct {
	databaseName string
	client       *mongo.Client
}

var _ CacheDBConnection = (*CacheDBTestingConnection)(nil)

func NewCacheDBTestingConnection(t *testing.T) *CacheDBTestingConnection {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := os.Getenv("ANNOTATOR_MONGO_CONNECTION_STRING")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("cannot connect to mongodb: %v", err)
	}

	conn := &CacheDBTestingConnection{
		databaseName: "annotator-test-" + uuid.NewString(),
		client:       client,
	}

	t.Cleanup(func() {
		ctx := context.Background()
		if err := client.Database(conn.databaseName).Drop(ctx); err != nil {
			t.Errorf("cannot drop testing database %q: %v", conn.databaseName, err)
		}
		client.Disconnect(ctx)
	})

	return conn
}

func (c *CacheDBTestingConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.databaseName).Collection(name)
}
