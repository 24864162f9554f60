package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	_ "github.com/reviewlens/review-sentiment-api/docs"
	"github.com/reviewlens/review-sentiment-api/internal/config"
	"github.com/reviewlens/review-sentiment-api/internal/database"
	"github.com/reviewlens/review-sentiment-api/internal/handler"
	"github.com/reviewlens/review-sentiment-api/internal/middleware"
	"github.com/reviewlens/review-sentiment-api/internal/migration"
	"github.com/reviewlens/review-sentiment-api/internal/repository"
	"github.com/reviewlens/review-sentiment-api/internal/routes"
	"github.com/reviewlens/review-sentiment-api/internal/service"
	"github.com/reviewlens/review-sentiment-api/pkg/datecodec"
	"github.com/reviewlens/review-sentiment-api/pkg/i18n"
	pkglogger "github.com/reviewlens/review-sentiment-api/pkg/logger"
	pkgredis "github.com/reviewlens/review-sentiment-api/pkg/redis"
)

// @title           Review Sentiment API
// @version         1.0.0
// @description     Customer review storage with automatic sentiment analysis.
//
// @license.name    MIT
//
// @BasePath        /

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath(env string) string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func appEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "local"
}

func main() {
	if err := run(); err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	env := appEnv()
	dotenvFiles := config.LoadDotEnv(env)

	// 설정 로드
	configPath := getConfigPath(env)
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 로거 초기화
	pkglogger.InitStructured(pkglogger.Options{
		Env:        cfg.Environment,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	pkglogger.Info("APP_ENV=%s, loaded env files: %v, config: %s", env, dotenvFiles, configPath)
	config.LogResolved(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// DB 연결 + 스키마
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	if err := migration.Run(db); err != nil {
		return err
	}
	pkglogger.Info("Connected to %s, schema ready", cfg.Database.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if sqlDB, err := db.DB(); err == nil {
		go middleware.WatchDBConnections(ctx, sqlDB, 15*time.Second)
	}

	// Redis (optional, rate limiting only)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(ctx, pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without rate limiting)", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			pkglogger.Info("Connected to Redis")
		}
	}

	classifier, err := service.NewLLMClassifier(cfg.AI)
	if err != nil {
		return err
	}

	// i18n Bundle
	messages := i18n.NewDefaultBundle()
	if cfg.App.I18nDir != "" {
		if err := messages.LoadDir(cfg.App.I18nDir); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	reviewService := service.NewReviewService(
		repository.NewReviewRepository(db),
		classifier,
		datecodec.New(loc),
		service.PageConfig{DefaultSize: cfg.App.DefaultPageSize, MaxSize: cfg.App.MaxPageSize},
	)

	// Gin 라우터 생성
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORS)))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.I18n(messages))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())

	var writeLimiter gin.HandlerFunc
	if redisClient != nil {
		writeLimiter = middleware.RateLimit(redisClient, middleware.RateLimitConfig{
			RequestsPerMinute: cfg.Redis.RequestsPerMinute,
			KeyPrefix:         middleware.DefaultRateLimitConfig().KeyPrefix,
			Messages:          messages,
		})
	}

	routes.SetupSystem(router, handler.NewHealthHandler(db))
	routes.Setup(router, handler.NewReviewHandler(reviewService, messages), writeLimiter)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		pkglogger.Info("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	pkglogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	pkglogger.Info("Server exited")
	return nil
}

// corsConfig allows every origin when "*" is configured
func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	origins := c.Origins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
