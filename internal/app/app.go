package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/bookshelf/internal/config"
	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	"github.com/MrSnakeDoc/bookshelf/internal/redis"
	"github.com/MrSnakeDoc/bookshelf/internal/scheduler"
	"github.com/MrSnakeDoc/bookshelf/internal/sources/seed"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
	"github.com/MrSnakeDoc/bookshelf/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	books       *index.BookIndex
	gc          *scheduler.GarbageCollector
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without an address the shelf runs without counters.
	var redisClient *goredis.Client
	if cfg.RedisEnabled() {
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
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
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = client
		loggerClient.Info("Redis initialized successfully")
	} else {
		loggerClient.Info("redis address not configured, operation counters disabled")
	}

	books := index.NewBookIndex()

	if cfg.SeedFile != "" {
		file, err := seed.NewLoader(cfg.SeedFile).Load()
		if err != nil {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			return nil, fmt.Errorf("failed to load seed file %s: %w", cfg.SeedFile, err)
		}
		added := seed.NewSeeder(books, domain.NewBookID, time.Now, loggerClient).Apply(file)
		loggerClient.Info("shelf seeded",
			logger.String("file", cfg.SeedFile),
			logger.Int("books", added),
			logger.Int("skipped", len(file.Books)-added))
	}

	messages := domain.NewMessages(cfg.Locale)
	if !strings.EqualFold(string(messages.Locale()), strings.TrimSpace(cfg.Locale)) {
		loggerClient.Warn("unknown locale, falling back",
			logger.String("requested", cfg.Locale),
			logger.String("locale", string(messages.Locale())))
	}

	stats := redisstore.NewStore(redisClient)
	gc := scheduler.NewGarbageCollector(stats, books, loggerClient, cfg.GCInterval)

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		NewID:        domain.NewBookID,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		CORSOrigins:  cfg.CORSOrigins,
		Books:        books,
		Stats:        stats,
		Messages:     messages,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		books:       books,
		gc:          gc,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)
	a.logger.Info("shelf ready", logger.Int("books", a.books.Count()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}

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
		a.gc.Stop()
		a.closeRedis()
		return err
	}

	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeRedis()

	a.logger.Info("✅ bookshelf stopped cleanly", logger.Int("books_dropped", a.books.Count()))
	_ = a.logger.Sync()
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
	} else {
		a.logger.Info("✅ Redis closed cleanly")
	}
}
