package cache

import (
	"context"
	"log/slog"
	"time"

	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
)

type InvalidationServiceImplementation struct {
	invalidationsRepository cacherepositories.InvalidationsRepository
	cacheService            CacheService
	now                     func() time.Time
}

var _ InvalidationService = (*InvalidationServiceImplementation)(nil)

func NewInvalidationService(invalidationsRepository cacherepositories.InvalidationsRepository, cacheService CacheService) InvalidationService {
	return &InvalidationServiceImplementation{invalidationsRepository, cacheService, time.Now}
}

func (s *InvalidationServiceImplementation) GetLastKnownInvalidation(ctx context.Context, module string) (cacherepositories.InvalidationModel, error) {
	if module == "" {
		return cacherepositories.InvalidationModel{}, cacherepositories.ErrModuleNameNotAllowed
	}

	return s.invalidationsRepository.GetLatestInvalidation(ctx, module)
}

// Invalidate drops cached results of every module in order and records the
// outcome. It stops at the first module that cannot be invalidated.
func (s *InvalidationServiceImplementation) Invalidate(ctx context.Context, modules []string) (cacherepositories.InvalidationModel, error) {
	if len(modules) == 0 {
		return cacherepositories.InvalidationModel{}, cacherepositories.ErrNoModulesRequested
	}

	for _, module := range modules {
		if module == "" {
			return cacherepositories.InvalidationModel{}, cacherepositories.ErrModuleNameNotAllowed
		}
	}

	invalidationInfo := cacherepositories.InvalidationModel{
		RequestedInvalidations: modules,
		DoneInvalidations:      []string{},
		InvalidatedArtifacts:   []cacherepositories.CachedArtifactModel{},
	}

	var invalidationError error

	for _, module := range modules {
		invalidatedEntries, err := s.cacheService.InvalidateModule(ctx, module)
		invalidationInfo.InvalidatedArtifacts = append(invalidationInfo.InvalidatedArtifacts, invalidatedEntries...)

		if err != nil {
			invalidationError = err
			errText := err.Error()
			invalidationInfo.InvalidationError = &errText
			slog.Error("cache invalidation failed", "module", module, "error", err)
			break
		}

		invalidationInfo.DoneInvalidations = append(invalidationInfo.DoneInvalidations, module)
	}

	invalidationInfo.InvalidationDate = s.now()
	if err := s.invalidationsRepository.CreateInvalidation(ctx, invalidationInfo); err != nil {
		return invalidationInfo, err
	}

	slog.Info("cache invalidated",
		"modules", invalidationInfo.DoneInvalidations,
		"artifacts", len(invalidationInfo.InvalidatedArtifacts))

	return invalidationInfo, invalidationError
}
