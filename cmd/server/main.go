package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/xingzheai/tss-annotator/pkg/cache"
	"github.com/xingzheai/tss-annotator/pkg/config"
)

const catalogWarmupTimeout = 30 * time.Second

func main() {
	envFile := flag.String("env", "", "path to an env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("error ocurred when loading configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cacheService cache.CacheService
	var invalidator cache.InvalidationService
	if cfg.Cache.Enabled() {
		log.Println("initializing result cache")
		services := InitializeCache(ctx, cfg)
		cacheService, invalidator = services.Cache, services.Invalidator
	} else {
		log.Println("result cache not configured, running without it")
	}

	log.Println("initializing annotator")
	annotator := InitializeAnnotator(cfg, cacheService, invalidator)

	if annotator.mode.Remote() {
		warmupCtx, cancelWarmup := context.WithTimeout(ctx, catalogWarmupTimeout)
		if err := annotator.catalog.Warmup(warmupCtx); err != nil {
			log.Printf("catalog warmup failed, continuing: %v", err)
		}
		cancelWarmup()
	}

	log.Printf("listening on %s", cfg.Server.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.Server.ListenAddr, newRouter(annotator, cfg.Server)))
}

func newRouter(annotator *annotatorHandler, serverConfig config.ServerConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: serverConfig.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/annotate", annotator.Annotate)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/modules", annotator.ListModules)
		r.Get("/models", annotator.ListModels)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireBearer(serverConfig.InvalidateSecurityToken))
		r.Delete("/cache", annotator.InvalidateCache)
		r.Get("/cache/invalidations", annotator.LatestInvalidation)
	})

	return r
}
