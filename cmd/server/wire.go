//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/xingzheai/tss-annotator/pkg/cache"
	cacherepositories "github.com/xingzheai/tss-annotator/pkg/cache/repositories"
	"github.com/xingzheai/tss-annotator/pkg/config"
	"github.com/xingzheai/tss-annotator/pkg/dispatch"
	"github.com/xingzheai/tss-annotator/pkg/tasks"
)

func InitializeCache(ctx context.Context, cfg config.Config) cacheServices {
	wire.Build(
		InitializeMinioConnectionConfig,
		InitializeMinioConnection,
		cacherepositories.NewCachedArtifactsStorage,

		InitializeMongoConnectionConfig,
		InitializeMongoConnection,
		cacherepositories.NewCachedArtifactsRepository,
		cacherepositories.NewInvalidationsRepository,

		cache.NewCacheService,
		cache.NewInvalidationService,
		wire.Struct(new(cacheServices), "*"),
	)

	return cacheServices{}
}

func InitializeAnnotator(cfg config.Config, cacheService cache.CacheService, invalidator cache.InvalidationService) *annotatorHandler {
	wire.Build(
		InitializeCredentialStore,
		InitializeTokenProvider,
		InitializeTSSClient,
		InitializeCatalog,

		InitializeUploader,
		InitializeSubmitter,
		InitializePoller,
		tasks.NewRunner,
		InitializeFetcher,
		dispatch.NewRemoteStrategy,

		InitializeRegistry,
		dispatch.NewLocalStrategy,

		InitializeFinalizer,
		InitializeMode,
		InitializeDispatcherConfig,
		dispatch.NewDispatcher,

		newAnnotatorHandler,
	)

	return &annotatorHandler{}
}
