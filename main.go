package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/handlers"
	"github.com/lessonhub/lessonhub/internal/config"
	"github.com/lessonhub/lessonhub/internal/database"
	lessonrepo "github.com/lessonhub/lessonhub/internal/lesson/repository"
	lessonservice "github.com/lessonhub/lessonhub/internal/lesson/service"
	orderrepo "github.com/lessonhub/lessonhub/internal/order/repository"
	orderservice "github.com/lessonhub/lessonhub/internal/order/service"
	"github.com/lessonhub/lessonhub/internal/storage"
	"github.com/lessonhub/lessonhub/pkg/logger"
	"github.com/lessonhub/lessonhub/pkg/metrics"
	"github.com/lessonhub/lessonhub/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v images=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Images.Dir)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	// On exhaustion the service runs degraded on in-memory repositories so
	// the surface stays probeable.
	var client *mongo.Client
	const maxAttempts = 5
	backoff := time.Second
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	var lessons lessonrepo.Repository
	var orders orderrepo.Repository
	if client != nil {
		defer func() { _ = client.Disconnect(ctx) }()
		db := client.Database(cfg.MongoDB.Database)
		lessons = lessonrepo.NewMongoRepo(db.Collection("lessons"))
		orders = orderrepo.NewMongoRepo(db.Collection("orders"))
		logger.Infof("Using MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warnf("could not connect to MongoDB after %d attempts — using in-memory repositories", maxAttempts)
		lessons = lessonrepo.NewMemoryRepo()
		orders = orderrepo.NewMemoryRepo()
	}

	// Optional MinIO-backed image bucket; local IMAGE_DIR otherwise.
	var images *storage.ImageStore
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		images, err = storage.NewImageStore(mcfg)
		if err != nil {
			logger.Warnf("image bucket unavailable, serving from %s: %v", cfg.Images.Dir, err)
			images = nil
		}
	}

	api := handlers.NewAPI(lessonservice.NewService(lessons), orderservice.NewService(orders))
	api.Register(r)
	handlers.RegisterImageRoutes(r, cfg.Images.Dir, images)
	handlers.RegisterSwagger(r)
	handlers.RegisterHealth(r, func() map[string]bool {
		deps := map[string]bool{"mongo": client != nil}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil
		}
		return deps
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting lessonhub api on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
