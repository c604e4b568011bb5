package main

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/xingzheai/tss-annotator/pkg/artifact"
	"github.com/xingzheai/tss-annotator/pkg/auth"
	"github.com/xingzheai/tss-annotator/pkg/cache"
	dbconnections "github.com/xingzheai/tss-annotator/pkg/cache/repositories/connections"
	"github.com/xingzheai/tss-annotator/pkg/catalog"
	"github.com/xingzheai/tss-annotator/pkg/config"
	"github.com/xingzheai/tss-annotator/pkg/dispatch"
	"github.com/xingzheai/tss-annotator/pkg/postprocess"
	"github.com/xingzheai/tss-annotator/pkg/processor"
	"github.com/xingzheai/tss-annotator/pkg/tasks"
	"github.com/xingzheai/tss-annotator/pkg/tss"
	"github.com/xingzheai/tss-annotator/pkg/upload"
)

type cacheServices struct {
	Cache       cache.CacheService
	Invalidator cache.InvalidationService
}

func InitializeMongoConnectionConfig(cfg config.Config) dbconnections.CacheDBConfig {
	connectionConfig := dbconnections.CacheDBConfig{
		ConnectionString: cfg.Cache.MongoConnectionString,
	}

	parsedConnectionString, err := url.Parse(connectionConfig.ConnectionString)
	if err != nil {
		log.Panicf("Error ocurred when parsing ANNOTATOR_MONGO_CONNECTION_STRING: %s", err)
	}

	if parsedConnectionString.User == nil {
		log.Panicf("ANNOTATOR_MONGO_CONNECTION_STRING must contain credentials")
	}

	return connectionConfig
}

func InitializeMongoConnection(ctx context.Context, mongoConfig dbconnections.CacheDBConfig) dbconnections.CacheDBConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	cacheDbConnection, err := dbconnections.NewCacheDBProductionConnection(ctx, mongoConfig)
	if err != nil {
		log.Panicf("Error ocurred when initializing MongoDB connection: %s", err)
	}

	return cacheDbConnection
}

func InitializeMinioConnectionConfig(cfg config.Config) dbconnections.MinioBlockStorageConfig {
	connectionConfig := dbconnections.MinioBlockStorageConfig{
		Endpoint:  cfg.Cache.MinioEndpoint,
		AccessKey: cfg.Cache.MinioAccessKey,
		SecretKey: cfg.Cache.MinioSecretKey,
		Bucket:    cfg.Cache.MinioBucket,
		Location:  cfg.Cache.MinioLocation,
		UseSSL:    cfg.Cache.MinioSSL,
	}

	if connectionConfig.AccessKey == "" {
		log.Panic("ANNOTATOR_MINIO_ACCESS_KEY is required when the result cache is enabled")
	}

	if connectionConfig.SecretKey == "" {
		log.Panic("ANNOTATOR_MINIO_SECRET_KEY is required when the result cache is enabled")
	}

	return connectionConfig
}

func InitializeMinioConnection(ctx context.Context, minioConfig dbconnections.MinioBlockStorageConfig) dbconnections.MinioBlockStorageConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	minioBlockStorageConnection, err := dbconnections.NewMinioBlockStorageProductionConnection(ctx, minioConfig)
	if err != nil {
		log.Panicf("Error ocurred when initializing Minio connection: %s", err)
	}

	return minioBlockStorageConnection
}

// InitializeCredentialStore seeds the process-wide credential from the
// environment. The host may replace it later.
func InitializeCredentialStore(cfg config.Config) *auth.Store {
	store := auth.NewStore()
	if credential, found := cfg.Credential(); found {
		store.Set(credential)
	}

	return store
}

func InitializeTokenProvider(store *auth.Store) auth.TokenProvider {
	return auth.NewTokenProvider(store)
}

func InitializeTSSClient(cfg config.Config, tokens auth.TokenProvider) *tss.Client {
	return tss.NewClient(tss.Config{Host: cfg.Host, Bucket: cfg.Bucket}, tokens)
}

func InitializeCatalog(client *tss.Client) catalog.Cache {
	return catalog.NewCache(client)
}

func InitializeUploader(client *tss.Client) upload.Uploader {
	return upload.NewUploader(client)
}

func InitializeSubmitter(client *tss.Client) tasks.Submitter {
	return tasks.NewSubmitter(client)
}

func InitializePoller(cfg config.Config, client *tss.Client) tasks.Poller {
	pollerConfig := tasks.DefaultPollerConfig()
	pollerConfig.Interval = cfg.PollInterval
	pollerConfig.Timeout = cfg.JobTimeout
	return tasks.NewPoller(client, pollerConfig)
}

func InitializeFetcher(cfg config.Config, client *tss.Client) artifact.Fetcher {
	return artifact.NewFetcher(client, artifact.FetcherConfig{
		TempDir:        cfg.TempDir,
		AllowedDomains: cfg.ArtifactDomains,
	})
}

func InitializeRegistry() *processor.Registry {
	return processor.NewDefaultRegistry()
}

func InitializeFinalizer() postprocess.Finalizer {
	return postprocess.NewFinalizer(postprocess.NopPoseEditor{})
}

func InitializeMode(cfg config.Config) dispatch.Mode {
	return dispatch.Mode{RemoteEnabled: cfg.RemoteEnabled, Worker: cfg.Worker}
}

func InitializeDispatcherConfig(cfg config.Config, mode dispatch.Mode) dispatch.Config {
	return dispatch.Config{
		Mode:                 mode,
		ModelFree:            processor.ModelFreeSet(cfg.ModelFree),
		IgnoreNonInpaintMask: cfg.IgnoreNonInpaintMask,
	}
}
