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

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/handlers"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/catalog"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/config"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/database"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/storage"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/errreport"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/metrics"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/middleware"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Server.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v sentry=%v strict_ids=%v",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.Sentry.DSN != "", cfg.StrictIDMatch)

	if err := errreport.Init(cfg.Sentry.DSN, cfg.Server.Environment, cfg.Sentry.Release); err != nil {
		logger.Warnf("sentry disabled: %v", err)
	}
	defer errreport.Flush(2 * time.Second)

	if err := validation.Register(); err != nil {
		logger.Fatalf("failed to register validators: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(errreport.Middleware(), logger.Middleware(), gin.Recovery())

	// Lightweight CORS middleware: the back-office UI is served from another origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, X-Total-Count")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	deps := map[string]handlers.Probe{"redis": nil, "storage": nil}

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr(), err)
		} else {
			logger.Infof("connected to Redis: %s", cfg.Redis.Addr())
		}
		deps["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter: redis, %v rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: memory, %v rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	opts := catalog.Options{StrictIDMatch: cfg.StrictIDMatch}
	if cfg.MinIO.Endpoint != "" {
		videos, err := storage.NewMinIOStorage(ctx, &storage.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
			Region:    cfg.MinIO.Region,
			TTL:       cfg.MinIO.URLTTL,
		})
		if err != nil {
			logger.Warnf("media storage unavailable, video URLs disabled: %v", err)
		} else {
			opts.Videos = videos
			deps["storage"] = videos.Ping
			logger.Infof("media storage: %s/%s", cfg.MinIO.Endpoint, videos.Bucket())
		}
	}

	var cat *catalog.Catalog
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, database.DefaultRetry)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		cat = catalog.NewMongo(client.Database(cfg.MongoDB.Database), opts)
		logger.Infof("store: mongodb database %s", cfg.MongoDB.Database)
	} else {
		cat = catalog.NewMemory(opts)
		logger.Warnf("MONGODB_URI not set, records are kept in memory only")
		if cfg.Server.Environment == "development" {
			if err := catalog.Seed(ctx, cat, false); err != nil {
				logger.Warnf("seeding memory store: %v", err)
			}
		}
	}
	deps["store"] = cat.Ping

	cat.Register(r, cfg.Server.StoreTimeout)
	handlers.RegisterSwagger(r)
	handlers.RegisterHealth(r, deps)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Starting jazflix back-office API on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
