package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/waleedthermon/Doctracking/internal/config"
	"github.com/waleedthermon/Doctracking/internal/handler"
	"github.com/waleedthermon/Doctracking/internal/middleware"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/waleedthermon/Doctracking/internal/service"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting drawing tracking service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("data_dir", cfg.Data.Dir),
	)

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		zapLogger.Fatal("Failed to create data directory", zap.Error(err))
	}

	repos := repository.NewRepositories(cfg.Data)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func registerRoutes(r *gin.Engine, h *handler.Handlers) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 团队名册
		team := v1.Group("/team")
		{
			team.GET("", h.Roster.List)
			team.GET("/:name", h.Roster.Get)
		}

		// 图纸登记表
		drawings := v1.Group("/drawings")
		{
			drawings.GET("", h.Drawing.List)
			drawings.POST("", h.Drawing.Create)
		}

		// 当前用户视图
		users := v1.Group("/users")
		{
			users.GET("/:name/drawings", h.Drawing.ListAssigned)
			users.GET("/:name/notifications", h.Drawing.Notifications)
			users.GET("/:name/drawings/export", h.Drawing.Export)
		}

		// 文档登记表
		documents := v1.Group("/documents")
		{
			documents.GET("", h.Document.List)
			documents.POST("/import", h.Document.Import)
			documents.GET("/template", h.Document.Template)
		}

		// 图表
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/charts", h.Dashboard.Charts)
		}
	}
}
