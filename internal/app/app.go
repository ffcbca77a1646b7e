package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/opsrig/hostdec/internal/config"
	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/httpserver"
	"github.com/opsrig/hostdec/internal/httpserver/deps"
	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
	"github.com/opsrig/hostdec/internal/redis"
	"github.com/opsrig/hostdec/internal/scheduler"
	"github.com/opsrig/hostdec/internal/sources/catalog"
	redisstore "github.com/opsrig/hostdec/internal/store/redis"
	"github.com/opsrig/hostdec/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	reloader    *scheduler.InventoryReloader
	gc          *scheduler.GarbageCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Build the decoder, with catalog overrides when configured
	decoder := buildDecoder(cfg, loggerClient)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Initialize memory index
	memIndex := index.NewMemoryIndex()

	// Initialize Redis store
	store := redisstore.NewStore(redisClient)

	// Try to sync hosts from Redis to memory on startup
	syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync from redis on startup, will load from inventory",
			logger.Error(err))
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	// Initialize inventory reloader
	reloader := scheduler.NewInventoryReloader(
		cfg.InventoryFile,
		decoder,
		store,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Initialize garbage collector
	gc := scheduler.NewGarbageCollector(
		store,
		memIndex,
		loggerClient,
		cfg.GCInterval,
		scheduler.DefaultGCThreshold,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		InventoryFile:   cfg.InventoryFile,
		RedisClient:     redisClient,
		MemoryIndex:     memIndex,
		Decoder:         decoder,
		BatchWorkers:    cfg.BatchWorkers,
		BatchMaxNames:   cfg.BatchMaxNames,
		ReloadTrigger:   reloadTrigger,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		reloader:    reloader,
		gc:          gc,
	}
}

// buildDecoder creates the decoder from the built-in tables, layered with
// the optional catalog file when one is configured.
func buildDecoder(cfg *config.Config, loggerClient logger.Logger) *domain.Decoder {
	if cfg.CatalogFile == "" {
		loggerClient.Info("no catalog file configured, using built-in naming tables")
		return domain.NewDecoder(nil)
	}

	loggerClient.Info("loading naming catalog overrides",
		logger.String("file", cfg.CatalogFile))

	catalogConfig, err := catalog.NewLoader(cfg.CatalogFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load catalog file: %v", err)
		os.Exit(1)
	}

	tables := catalog.NewMapper().MapTables(catalogConfig)
	return domain.NewDecoder(tables)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Hostdec v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Hostdec %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start inventory reloader (loads hosts and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start inventory reloader: %w", err)
	}
	a.logger.Info("inventory reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop reloader
	a.reloader.Stop()

	// Stop garbage collector
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Hostdec stopped cleanly")
	return nil
}
