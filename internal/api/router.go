package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/mood-community/config"
	"github.com/d60-Lab/mood-community/internal/api/handler"
)

const serviceName = "mood-community"

// NewRouter 组装中间件与全部路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware(serviceName))
	}
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.POST("/moods", h.CreateMood)
		api.GET("/moods/public", h.PublicFeed)
		api.GET("/moods/user/:userId", h.UserFeed)
		api.POST("/moods/:moodId/like", h.ToggleLike)
		api.POST("/moods/:moodId/comments", h.AddComment)
		api.GET("/moods/:moodId/comments", h.ListComments)
		api.GET("/moods/:moodId/like-status/:userId", h.LikeStatus)
		api.PUT("/moods/:moodId/privacy", h.UpdatePrivacy)
		api.GET("/stats", h.GetStats)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
