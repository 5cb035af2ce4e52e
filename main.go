package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/apaudel/folio/handlers"
	"github.com/apaudel/folio/internal/config"
	"github.com/apaudel/folio/internal/content/repository"
	"github.com/apaudel/folio/internal/content/service"
	"github.com/apaudel/folio/internal/database"
	"github.com/apaudel/folio/internal/sessions"
	"github.com/apaudel/folio/internal/storage"
	"github.com/apaudel/folio/pkg/logger"
	"github.com/apaudel/folio/pkg/metrics"
	"github.com/apaudel/folio/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v static=%q",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.Server.StaticDir)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Redis is optional; when present it hosts sessions (shared across
	// processes) and the login limiter window.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Content repository: MongoDB in production, in-memory fallback so
	// the site still runs locally without a database.
	var contentRepo repository.Repository
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() { _ = client.Disconnect(ctx) }()
		col := client.Database(cfg.MongoDB.Database).Collection("portfolio")
		contentRepo = repository.NewMongoRepository(col)
	} else {
		logger.Warnf("MONGODB_URI not set; content lives in process memory and dies with it")
		contentRepo = repository.NewMemoryRepository()
	}
	contentSvc := service.NewService(contentRepo)

	// Sessions: Redis-backed when available, otherwise in-process.
	var sessionRepo sessions.Repository
	if redisClient != nil {
		sessionRepo = sessions.NewRedisRepository(redisClient, "")
		logger.Infof("using Redis for session storage")
	} else {
		sessionRepo = sessions.NewMemoryRepository()
	}
	signer := sessions.NewSigner(cfg.Admin.SessionSecret)
	sessionSvc := sessions.NewService(sessionRepo, signer, cfg.Admin.SessionTTL)

	var loginLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			loginLimiter = middleware.RedisLoginRateLimit(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			loginLimiter = middleware.LoginRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	api := r.Group("/api")
	handlers.NewContentHandler(contentSvc).Register(api)
	handlers.NewAdminHandler(&cfg.Admin, contentSvc, sessionSvc).Register(api, loginLimiter)

	// Uploads need MinIO; without it the route is absent and the admin
	// pastes image URLs by hand.
	if cfg.MinIO.Endpoint != "" {
		store, err := storage.NewMinIOStorage(&cfg.MinIO)
		if err != nil {
			logger.Fatalf("minio init failed: %v", err)
		}
		handlers.NewUploadHandler(store, sessionSvc, cfg.Upload.MaxBytes).Register(api)
	} else {
		logger.Warnf("MINIO_ENDPOINT not set; image upload endpoint disabled")
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{
			"content":  contentRepo != nil,
			"sessions": sessionRepo != nil,
			"redis":    cfg.Redis.Host == "" || redisClient != nil,
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Server.StaticDir != "" {
		r.NoRoute(handlers.StaticPages(cfg.Server.StaticDir))
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("portfolio service listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
