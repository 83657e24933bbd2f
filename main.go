package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/autohandel/backoffice/handlers"
	"github.com/autohandel/backoffice/internal/backoffice"
	"github.com/autohandel/backoffice/internal/config"
	"github.com/autohandel/backoffice/internal/database"
	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/autohandel/backoffice/pkg/logger"
	"github.com/autohandel/backoffice/pkg/metrics"
	"github.com/autohandel/backoffice/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: backend=%s fallback=%s redis=%v mongo=%v",
		cfg.Storage.Backend, cfg.Storage.FallbackPath, cfg.Redis.Host != "", cfg.MongoDB.URI != "")

	ctx := context.Background()

	stores, err := database.OpenStores(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open storage: %v", err)
	}
	defer stores.Close()
	store, redisClient := stores.KV, stores.Redis

	sessionsSvc := sessions.NewService(sessions.NewKVRepository(store), cfg.Session.Secret)
	svc := backoffice.NewService(store)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := newRouter(cfg, store, redisClient, sessionsSvc, svc)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Starting back-office service on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server failed: %v", err)
	}
}

// newRouter wires middleware and routes. The rate limiter runs after
// SessionMiddleware on the API so signed-in users are limited per account
// rather than per address.
func newRouter(cfg *config.Config, store *kv.Store, redisClient *redis.Client, sessionsSvc *sessions.Service, svc *backoffice.Service) *gin.Engine {
	r := gin.New()

	// Lightweight CORS middleware: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	var limit []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		useRedis := cfg.RateLimit.UseRedis && redisClient != nil
		if useRedis {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			limit = append(limit, middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			limit = append(limit, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		logger.Infof("rate limiter enabled: rps=%.1f burst=%d redis=%v", cfg.RateLimit.RPS, cfg.RateLimit.Burst, useRedis)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the local store is always there, so only a configured but
	// unreachable primary reports degraded.
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"local":   true,
			"primary": store.HasPrimary() || cfg.Storage.Backend == config.BackendNone,
		}
		if cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
		}
		ready := true
		for _, ok := range deps {
			ready = ready && ok
		}
		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.RegisterSwagger(r)
	handlers.NewAuthHandler(sessionsSvc).Register(r.Group("/", limit...))

	api := r.Group("/api/v1", append([]gin.HandlerFunc{middleware.SessionMiddleware(sessionsSvc)}, limit...)...)
	handlers.NewBackofficeHandler(svc).Register(api)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
