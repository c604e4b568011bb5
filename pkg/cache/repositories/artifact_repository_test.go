package cacherepositories

import (
	"context"
	"testing"
	"time"

	dbconnections "github.com/xingzheai/tss-annotator/pkg/cache/repositories/connections"
)

func newTestingArtifactInfo(signature, module string) CachedArtifactModel {
	return CachedArtifactModel{
		Signature: signature,
		Module:    module,
		Strategy:  StrategyLocal,
		MimeType:  "image/png",
		Size:      1024,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestCachedArtifactsRepositoryIntegration_CreatesCachedArtifact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cachedArtifactsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	info := newTestingArtifactInfo("abc", "invert")
	repo := NewCachedArtifactsRepository(dbconnections.NewCacheDBTestingConnection(t))

	if err := repo.CreateCachedArtifactInfo(ctx, info); err != nil {
		t.Fatalf("Error creating cached artifact info: %s", err)
	}

	infoFromDB, err := repo.GetCachedArtifactInfo(ctx, info.Signature, info.Module)
	if err != nil {
		t.Fatalf("Error getting cached artifact info: %s", err)
	}

	if !infoFromDB.CreatedAt.Equal(info.CreatedAt) {
		t.Errorf("Expected creation date %v, got %v", info.CreatedAt, infoFromDB.CreatedAt)
	}

	infoFromDB.CreatedAt = info.CreatedAt
	if infoFromDB != info {
		t.Errorf("Cached artifact info from DB does not match the created one: %+v", infoFromDB)
	}
}

func TestCachedArtifactsRepositoryIntegration_ReturnsErrorWhenCachedArtifactAlreadyExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cachedArtifactsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	info := newTestingArtifactInfo("abc", "invert")
	repo := NewCachedArtifactsRepository(dbconnections.NewCacheDBTestingConnection(t))

	if err := repo.CreateCachedArtifactInfo(ctx, info); err != nil {
		t.Fatalf("Error creating cached artifact info: %s", err)
	}

	if err := repo.CreateCachedArtifactInfo(ctx, info); err != ErrCachedArtifactAlreadyExists {
		t.Errorf("Expected ErrCachedArtifactAlreadyExists, got: %v", err)
	}
}

func TestCachedArtifactsRepositoryIntegration_DeletesCachedArtifact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cachedArtifactsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	info := newTestingArtifactInfo("abc", "invert")
	repo := NewCachedArtifactsRepository(dbconnections.NewCacheDBTestingConnection(t))

	if err := repo.CreateCachedArtifactInfo(ctx, info); err != nil {
		t.Fatalf("Error creating cached artifact info: %s", err)
	}

	if err := repo.DeleteCachedArtifactInfo(ctx, info.Signature, info.Module); err != nil {
		t.Fatalf("Error deleting cached artifact info: %s", err)
	}

	if _, err := repo.GetCachedArtifactInfo(ctx, info.Signature, info.Module); err != ErrCachedArtifactNotFound {
		t.Errorf("Expected ErrCachedArtifactNotFound, got: %v", err)
	}

	if err := repo.DeleteCachedArtifactInfo(ctx, info.Signature, info.Module); err != ErrCachedArtifactNotFound {
		t.Errorf("Expected ErrCachedArtifactNotFound on second delete, got: %v", err)
	}
}

func TestCachedArtifactsRepositoryIntegration_ListsArtifactsOfModule(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cachedArtifactsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := NewCachedArtifactsRepository(dbconnections.NewCacheDBTestingConnection(t))
	for _, info := range []CachedArtifactModel{
		newTestingArtifactInfo("a", "invert"),
		newTestingArtifactInfo("b", "invert"),
		newTestingArtifactInfo("c", "canny"),
	} {
		if err := repo.CreateCachedArtifactInfo(ctx, info); err != nil {
			t.Fatalf("Error creating cached artifact info: %s", err)
		}
	}

	infos, err := repo.GetCachedArtifactInfosOfModule(ctx, "invert")
	if err != nil {
		t.Fatalf("Error listing cached artifact infos: %s", err)
	}

	if len(infos) != 2 {
		t.Fatalf("Expected 2 artifacts of module invert, got %d", len(infos))
	}

	for _, info := range infos {
		if info.Module != "invert" {
			t.Errorf("Unexpected module %q in result", info.Module)
		}
	}
}
