package di

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-service/cmd/api/infrastructure"
	"bookmark-service/internal/adapter/db/postgres"
	ginhandler "bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/internal/adapter/gin/router"
	"bookmark-service/internal/config"
	"bookmark-service/internal/usecase/auth"
	"bookmark-service/internal/usecase/bookmark"
	"bookmark-service/internal/usecase/user"
	redisclient "bookmark-service/pkg/redis"
	"bookmark-service/pkg/security"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	SQLDB       *sql.DB
	RedisClient *redisclient.Client
	AuthUC      auth.Usecase
	UserUC      user.Usecase
	BookmarkUC  bookmark.Usecase
	RateLimiter *middleware.RateLimiter
	Gate        *middleware.Gate
	Handlers    router.Handlers
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: l,
		DB:     db,
		SQLDB:  sqlDB,
	}

	// Redis backs the rate limiter only
	var limiterClient *goredis.Client
	if cfg.RateLimit.Enabled {
		rdb, err := infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
		limiterClient = rdb.Client
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepoPG(db, l)
	bookmarkRepo := postgres.NewBookmarkRepoPG(db, l)

	// Initialize use cases
	hasher := security.NewPasswordHasher(security.DefaultArgon2Params)
	tokens := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTTTLMinutes)*time.Minute)

	c.AuthUC = auth.New(userRepo, hasher, tokens, l)
	c.UserUC = user.New(userRepo, l)
	c.BookmarkUC = bookmark.New(bookmarkRepo, l)

	// Initialize HTTP layer
	errs := ginhandler.NewErrorResponder(cfg.App.ConflictAsForbidden, l)

	c.RateLimiter = middleware.NewRateLimiter(
		limiterClient,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)
	c.Gate = middleware.NewGate(c.AuthUC, errs, l)
	c.Handlers = router.Handlers{
		Auth:     ginhandler.NewAuthHandler(c.AuthUC, errs, l),
		User:     ginhandler.NewUserHandler(c.UserUC, errs, l),
		Bookmark: ginhandler.NewBookmarkHandler(c.BookmarkUC, errs, l),
	}

	return c, nil
}

// Router builds the Gin engine for the container's handlers
func (c *Container) Router() *gin.Engine {
	var cache router.CachePinger
	if c.RedisClient != nil {
		cache = c.RedisClient
	}
	return router.SetupRouter(c.Handlers, c.Gate, c.RateLimiter, c.SQLDB, cache, c.Logger)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
