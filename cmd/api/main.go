package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attentionops/backend/internal/api"
	"attentionops/backend/internal/catalog"
	"attentionops/backend/internal/config"
	"attentionops/backend/internal/db"
	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/observability"
	"attentionops/backend/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger("api")
	metrics := observability.NewAPIMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fail := func(step string, err error) {
		logger.Error("startup_failed", observability.Fields{
			"step":  step,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	bank := mission.DefaultBank()
	if cfg.PhrasebankFile != "" {
		loaded, err := mission.LoadBankFile(cfg.PhrasebankFile, bank)
		if err != nil {
			fail("load_phrasebank", err)
		}
		bank = loaded
	}

	var pool *pgxpool.Pool
	if cfg.MissionStore == store.DriverPostgres || cfg.CatalogSource == catalog.SourcePostgres {
		var err error
		pool, err = db.ConnectWithOptions(ctx, cfg.DatabaseURL, db.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
		if err != nil {
			fail("db_connect", err)
		}
		defer pool.Close()

		applied, err := db.RunMigrations(ctx, pool, cfg.MigrationsDir)
		if err != nil {
			fail("run_migrations", err)
		}
		if len(applied) > 0 {
			logger.Info("migrations_applied", observability.Fields{"versions": applied})
		}
	}

	pingers := map[string]store.Pinger{}
	var redisClient *redis.Client
	if cfg.MissionStore == store.DriverRedis {
		var err error
		redisClient, err = store.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			fail("redis_connect", err)
		}
		defer redisClient.Close()
		pingers["redis"] = store.NewRedisStore(redisClient, cfg.RedisKeyPrefix)
	}

	missions, err := store.New(store.Options{
		Driver:      cfg.MissionStore,
		DB:          pool,
		Redis:       redisClient,
		RedisPrefix: cfg.RedisKeyPrefix,
		Observer:    metrics,
	})
	if err != nil {
		fail("mission_store", err)
	}

	var content catalog.Catalog
	switch cfg.CatalogSource {
	case catalog.SourcePostgres:
		content = catalog.NewPostgresCatalog(pool)
	case catalog.SourceStatic, "":
		content = catalog.NewStaticCatalog()
	default:
		fail("catalog_source", errors.New("unknown catalog source "+cfg.CatalogSource))
	}

	server := api.New(cfg, api.Deps{
		Logger:   logger,
		Metrics:  metrics,
		Composer: mission.NewComposer(bank, nil),
		Missions: missions,
		Catalog:  content,
		DB:       pool,
		Pingers:  pingers,
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.APIReadTimeout,
		WriteTimeout:      cfg.APIWriteTimeout,
		IdleTimeout:       cfg.APIIdleTimeout,
	}
	serverErrCh := make(chan error, 1)

	go func() {
		logger.Info("api_listening", observability.Fields{
			"addr":           ":" + cfg.Port,
			"mission_store":  cfg.MissionStore,
			"catalog_source": cfg.CatalogSource,
			"bank_version":   bank.Version(),
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErrCh:
		logger.Error("http_server_failed", observability.Fields{"error": err.Error()})
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful_shutdown_failed", observability.Fields{"error": err.Error()})
	}
	logger.Info("api_stopped", nil)
}
