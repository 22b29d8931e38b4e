package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"bookmark-service/api"
	"bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/pkg/logger"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger reports whether the rate limiter's Redis is reachable
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Bookmark *handler.BookmarkHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	gate *middleware.Gate,
	rateLimiter *middleware.RateLimiter,
	db Pinger,
	cache CachePinger,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	router.NoRoute(func(c *gin.Context) {
		handler.Abort(c, http.StatusNotFound, "route not found")
	})

	router.GET("/health", health(db, cache, log))

	// API documentation
	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", api.OpenAPI)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))

	authRoutes := router.Group("/auth", rateLimiter.Handler())
	{
		authRoutes.POST("/sign-up", h.Auth.Signup)
		authRoutes.POST("/login", h.Auth.Login)
	}

	users := router.Group("/users")
	{
		users.GET("/me", gate.Require(h.User.GetMe))
		users.PATCH("", gate.Require(h.User.EditMe))
	}

	bookmarks := router.Group("/bookmarks")
	{
		bookmarks.POST("", gate.Require(h.Bookmark.Create))
		bookmarks.GET("", gate.Require(h.Bookmark.List))
		bookmarks.GET("/:id", gate.Require(h.Bookmark.GetByID))
		bookmarks.PATCH("/:id", gate.Require(h.Bookmark.Edit))
		bookmarks.DELETE("/:id", gate.Require(h.Bookmark.Delete))
	}

	return router
}

// health fails on the database only. A nil cache is skipped, and an
// unreachable one degrades the report since the rate limiter fails open.
func health(db Pinger, cache CachePinger, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.WithContext(ctx, log).Error("health check failed", zap.Error(err))
			handler.Abort(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		resp := gin.H{
			"status":  "healthy",
			"service": "bookmark-service",
		}
		if cache != nil {
			resp["redis"] = "up"
			if err := cache.Ping(ctx); err != nil {
				logger.WithContext(ctx, log).Warn("redis health check failed", zap.Error(err))
				resp["status"] = "degraded"
				resp["redis"] = "down"
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
