package dispatch

import (
	"context"
	"image"
	"log/slog"

	"github.com/xingzheai/tss-annotator/pkg/cache"
	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
)

const (
	cacheStrategyLocal  = cacherepositories.StrategyLocal
	cacheStrategyRemote = cacherepositories.StrategyRemote
)

// memoizer serves results from the result cache. Cache failures never fail
// an annotation: they are logged and the work is done again.
type memoizer struct {
	cacheService cache.CacheService
}

func newMemoizer(cacheService cache.CacheService) *memoizer {
	return &memoizer{cacheService}
}

// do returns the cached result for key and images, or calls run and stores
// its image when run reports it as storable.
func (m *memoizer) do(
	ctx context.Context,
	key cache.Key,
	images []image.Image,
	run func() (img image.Image, storable bool, err error),
) (image.Image, bool, error) {
	if m.cacheService == nil {
		img, _, err := run()
		return img, false, err
	}

	signature := cache.Signature(key, images...)

	cached, err := m.cacheService.Get(ctx, signature, key.Module)
	if err == nil {
		slog.Debug("annotation served from cache", "module", key.Module, "signature", signature)
		return cached, true, nil
	}
	if err != cache.ErrEntryNotFound {
		slog.Warn("result cache lookup failed", "module", key.Module, "error", err)
	}

	img, storable, err := run()
	if err != nil || !storable || img == nil {
		return img, false, err
	}

	info := cacherepositories.CachedArtifactModel{
		Signature: signature,
		Module:    key.Module,
		Strategy:  key.Strategy,
	}
	if err := m.cacheService.Save(ctx, info, img); err != nil && err != cache.ErrEntryAlreadyExists {
		slog.Warn("cannot save annotation in result cache", "module", key.Module, "error", err)
	}

	return img, false, nil
}
