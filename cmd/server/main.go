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

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/mood-community/config"
	_ "github.com/d60-Lab/mood-community/docs"
	"github.com/d60-Lab/mood-community/internal/api"
	"github.com/d60-Lab/mood-community/internal/api/handler"
	"github.com/d60-Lab/mood-community/internal/cache"
	"github.com/d60-Lab/mood-community/internal/repository"
	"github.com/d60-Lab/mood-community/internal/service"
	"github.com/d60-Lab/mood-community/pkg/database"
	"github.com/d60-Lab/mood-community/pkg/logger"
	"github.com/d60-Lab/mood-community/pkg/tracing"
)

// @title mood-community API
// @description 心情社区后端：发布心情、点赞、评论与全站统计
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Mode); err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry 初始化失败", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := tracing.Init(context.Background(), cfg, "mood-community")
	if err != nil {
		logger.Error("tracing 初始化失败", zap.Error(err))
		os.Exit(1)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("数据库初始化失败", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("数据库连接成功", zap.String("driver", cfg.Database.Driver), zap.String("dsn", cfg.Database.DSN))

	// redis 未启用时 feedCache 保持 nil，各服务自动退化为直查
	var feedCache *cache.FeedCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		feedCache = cache.New(rdb, cfg.Redis.TTL)
		logger.Info("feed 缓存已启用", zap.String("addr", cfg.Redis.Addr))
	}

	userRepo := repository.NewUserRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	h := handler.New(
		service.NewUserService(userRepo),
		service.NewMoodService(moodRepo, feedCache),
		service.NewLikeService(likeRepo, feedCache),
		service.NewCommentService(commentRepo, feedCache),
		service.NewStatsService(statsRepo, feedCache),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.NewRouter(cfg, h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务异常退出", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("收到退出信号，开始关闭", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP 关闭失败", zap.Error(err))
	}
	// 最后关数据库，保证在途写入落盘
	if err := database.Close(db); err != nil {
		logger.Error("关闭数据库连接失败", zap.Error(err))
	} else {
		logger.Info("数据库连接已关闭")
	}
	if err := shutdownTracing(context.Background()); err != nil {
		logger.Warn("tracing 关闭失败", zap.Error(err))
	}
}
