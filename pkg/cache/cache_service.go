package cache

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
)

const artifactMimeType = "image/png"

type cacheService struct {
	artifactsRepository cacherepositories.CachedArtifactsRepository
	artifactsStorage    cacherepositories.CachedArtifactsStorage
	now                 func() time.Time
}

var _ CacheService = (*cacheService)(nil)

func NewCacheService(
	artifactsRepository cacherepositories.CachedArtifactsRepository,
	artifactsStorage cacherepositories.CachedArtifactsStorage,
) CacheService {
	return &cacheService{
		artifactsRepository: artifactsRepository,
		artifactsStorage:    artifactsStorage,
		now:                 time.Now,
	}
}

func (s *cacheService) Get(ctx context.Context, signature, module string) (image.Image, error) {
	data, err := s.artifactsStorage.Get(ctx, signature, module)
	if err != nil {
		if err == cacherepositories.ErrArtifactNotFound {
			return nil, ErrEntryNotFound
		}

		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorruptedEntry
	}

	return img, nil
}

// Save stores img as PNG. Metadata is written first and removed again when
// the blob cannot be stored.
func (s *cacheService) Save(ctx context.Context, info cacherepositories.CachedArtifactModel, img image.Image) error {
	var buff bytes.Buffer
	if err := imaging.Encode(&buff, img, imaging.PNG); err != nil {
		return err
	}

	info.MimeType = artifactMimeType
	info.Size = int64(buff.Len())
	if info.CreatedAt.IsZero() {
		info.CreatedAt = s.now()
	}

	if err := s.artifactsRepository.CreateCachedArtifactInfo(ctx, info); err != nil {
		if err == cacherepositories.ErrCachedArtifactAlreadyExists {
			return ErrEntryAlreadyExists
		}

		return err
	}

	if err := s.artifactsStorage.Save(ctx, info.Signature, info.Module, info.MimeType, buff.Bytes()); err != nil {
		s.artifactsRepository.DeleteCachedArtifactInfo(ctx, info.Signature, info.Module)
		s.artifactsStorage.Delete(ctx, info.Signature, info.Module)
		return err
	}

	return nil
}

func (s *cacheService) InvalidateModule(ctx context.Context, module string) (removedEntries []cacherepositories.CachedArtifactModel, err error) {
	entries, err := s.artifactsRepository.GetCachedArtifactInfosOfModule(ctx, module)
	if err != nil {
		return
	}

	for _, entry := range entries {
		err = s.artifactsRepository.DeleteCachedArtifactInfo(ctx, entry.Signature, entry.Module)
		if err != nil {
			return
		}

		err = s.artifactsStorage.Delete(ctx, entry.Signature, entry.Module)
		if err == cacherepositories.ErrArtifactNotFound {
			slog.Warn("cached artifact blob already gone", "module", module, "signature", entry.Signature)
			err = nil
		}
		if err != nil {
			return
		}

		removedEntries = append(removedEntries, entry)
	}

	return
}

var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrEntryAlreadyExists = errors.New("entry already exists")
	ErrCorruptedEntry     = errors.New("cached entry cannot be decoded")
)
