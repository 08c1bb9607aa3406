// Package devserver is a local stand-in for the recipe backend: the same
// endpoint contract the production service exposes, with canned generation,
// bcrypt credentials, and a pluggable daily-usage store.
package devserver

import (
	"time"

	"fridgechef/internal/devserver/store"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter builds the dev server's gin engine.
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(recovery())
	router.Use(requestLogger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := store.NewMemoryUsers()

	var usage store.UsageStore
	if cfg.Redis.Enabled {
		redisUsage, err := store.NewRedisUsage(cfg.Redis.Addr)
		if err != nil {
			// A broken redis should not block local development.
			common.LogWarn("redis unavailable, falling back to in-memory usage store",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err),
			)
			usage = store.NewMemoryUsage()
		} else {
			usage = redisUsage
		}
	} else {
		usage = store.NewMemoryUsage()
	}

	handler := NewHandler(cfg, users, usage)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/me", handler.Me)
		api.POST("/signup", handler.Signup)
		api.POST("/login", handler.Login)
		api.POST("/logout", handler.Logout)
		api.POST("/generate", handler.Generate)
	}

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.Int("daily_limit", cfg.Quota.DailyLimit),
		zap.Bool("redis", cfg.Redis.Enabled),
	)

	return router, nil
}
