package cacherepositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	dbconnections "github.com/xingzheai/tss-annotator/pkg/cache/repositories/connections"
)

type cachedArtifactsStorage struct {
	conn dbconnections.MinioBlockStorageConnection
}

var _ CachedArtifactsStorage = (*cachedArtifactsStorage)(nil)

func NewCachedArtifactsStorage(conn dbconnections.MinioBlockStorageConnection) CachedArtifactsStorage {
	return &cachedArtifactsStorage{conn}
}

func (s *cachedArtifactsStorage) Save(ctx context.Context, signature, module, mimeType string, data []byte) error {
	resourceID := s.makeResourceID(signature, module)
	exists, err := s.conn.ObjectExists(ctx, resourceID)
	if err != nil {
		return err
	}
	if exists {
		return ErrArtifactAlreadyExists
	}

	return s.conn.PutObject(ctx, resourceID, int64(len(data)), mimeType, bytes.NewReader(data))
}

func (s *cachedArtifactsStorage) Get(ctx context.Context, signature, module string) ([]byte, error) {
	resourceID := s.makeResourceID(signature, module)
	object, err := s.conn.GetObject(ctx, resourceID)
	if err != nil {
		return nil, s.convertToKnownError(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, s.convertToKnownError(err)
	}

	return data, nil
}

func (s *cachedArtifactsStorage) Delete(ctx context.Context, signature, module string) error {
	resourceID := s.makeResourceID(signature, module)
	exists, err := s.conn.ObjectExists(ctx, resourceID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrArtifactNotFound
	}

	return s.conn.DeleteObject(ctx, resourceID)
}

func (s *cachedArtifactsStorage) convertToKnownError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrArtifactNotFound
	}

	return err
}

func (s *cachedArtifactsStorage) makeResourceID(signature, module string) string {
	return url.PathEscape(module) + "/" + url.PathEscape(signature)
}

var (
	ErrArtifactAlreadyExists = errors.New("artifact already exists")
	ErrArtifactNotFound      = errors.New("artifact not found")
)
