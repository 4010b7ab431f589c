package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkvault/linkvault/internal/auth"
	"github.com/linkvault/linkvault/internal/avatar"
	"github.com/linkvault/linkvault/internal/config"
	"github.com/linkvault/linkvault/internal/httpserver"
	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/importer"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/redis"
	"github.com/linkvault/linkvault/internal/scheduler"
	redisstore "github.com/linkvault/linkvault/internal/store/redis"
	"github.com/linkvault/linkvault/internal/store/sqlite"
	"github.com/linkvault/linkvault/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	store       *sqlite.Store
	redisClient *goredis.Client
	seeder      *importer.Seeder
	maintenance *scheduler.Maintenance
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the bookmark store early - fail fast if unavailable
	loggerClient.Infof("Opening database at %s", cfg.DBPath)
	store, err := sqlite.Open(cfg.DBPath, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}

	// Initialize Redis - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Avatar uploads are optional; without an endpoint they are skipped.
	var avatars avatar.Uploader
	if cfg.AvatarUploadURL != "" {
		avatars = avatar.NewHostClient(cfg.AvatarUploadURL, cfg.AvatarAPIKey, cfg.AvatarTimeout)
		loggerClient.Info("avatar uploads enabled",
			logger.String("endpoint", cfg.AvatarUploadURL))
	} else {
		loggerClient.Info("avatar upload endpoint not configured, avatars disabled")
	}

	var seeder *importer.Seeder
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured",
			logger.String("file", cfg.SeedFile))
		seeder = importer.NewSeeder(cfg.SeedFile, store, loggerClient)
	}

	maintenance := scheduler.NewMaintenance(store, loggerClient, cfg.MaintenanceInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		Store:           store,
		Cache:           redisstore.NewCache(redisClient),
		RedisClient:     redisClient,
		Tokens:          tokens,
		Avatars:         avatars,
		SearchCacheTTL:  cfg.SearchCacheTTL,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		store:       store,
		redisClient: redisClient,
		seeder:      seeder,
		maintenance: maintenance,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkVault v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("LinkVault %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Import seed bookmarks before serving traffic
	if a.seeder != nil {
		if err := a.seeder.Run(ctx); err != nil {
			a.logger.Warn("seed import failed", logger.Error(err))
		}
	}

	if err := a.maintenance.Start(ctx); err != nil {
		return fmt.Errorf("failed to start maintenance scheduler: %w", err)
	}
	a.logger.Info("maintenance scheduler started",
		logger.Duration("interval", a.cfg.MaintenanceInterval))

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

	a.maintenance.Stop()

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

	a.store.Close()

	a.logger.Info("✅ LinkVault stopped cleanly")
	return nil
}
