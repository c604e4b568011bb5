package cache

import (
	"context"
	"image"

	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
)

// CacheService memoizes annotation results keyed by their input signature.
type CacheService interface {
	Get(ctx context.Context, signature, module string) (image.Image, error)
	Save(ctx context.Context, info cacherepositories.CachedArtifactModel, img image.Image) error
	InvalidateModule(ctx context.Context, module string) ([]cacherepositories.CachedArtifactModel, error)
}

type InvalidationService interface {
	GetLastKnownInvalidation(ctx context.Context, module string) (cacherepositories.InvalidationModel, error)
	Invalidate(ctx context.Context, modules []string) (cacherepositories.InvalidationModel, error)
}
