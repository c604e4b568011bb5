package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type MinioBlockStorageTestingConnection struct {
	*MinioBlockStorageProductionConnection
}

// NewMinioBlockStorageTestingConnection connects to the MinIO server named by
// ANNOTATOR_TEST_MINIO_ENDPOINT using a fresh bucket dropped on cleanup.
func NewMinioBlockStorageTestingConnection(t *testing.T) *MinioBlockStorageTestingConnection {
	endpoint := os.Getenv("ANNOTATOR_TEST_MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultTestingServerEndpoint
	}

	conn, err := NewMinioBlockStorageProductionConnection(context.Background(), MinioBlockStorageConfig{
		Endpoint:  endpoint,
		AccessKey: testingServerAccessKey,
		SecretKey: testingServerSecretKey,
		Bucket:    uuid.New().String() + "-testing-bucket",
		Location:  "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatalf("cannot connect to minio block storage: %v", err)
	}

	testingConn := &MinioBlockStorageTestingConnection{conn}
	t.Cleanup(testingConn.dropTestBucket)

	return testingConn
}

func (c *MinioBlockStorageTestingConnection) dropTestBucket() {
	ctx := context.Background()
	for object := range c.client.ListObjects(ctx, c.config.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			continue
		}
		c.client.RemoveObject(ctx, c.config.Bucket, object.Key, minio.RemoveObjectOptions{})
	}

	c.client.RemoveBucket(ctx, c.config.Bucket)
}

const (
	defaultTestingServerEndpoint = "IntegrationTests.Annotator.Minio:9000"
	testingServerAccessKey       = "minio"
	testingServerSecretKey       = "minio123"
)
