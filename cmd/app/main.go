package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"fulfillment/cmd"
	api "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redisgate"
	"fulfillment/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := logger.Init(config.Environment, config.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(config.Database.DSN(), gormlogger.Default.LogMode(gormlogger.Warn))
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := postgres.Migrate(gormDB); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}

	redisClient, err := redisgate.NewClient(config.Redis.URL)
	if err != nil {
		zlog.Fatal("Failed to configure Redis", zap.Error(err))
	}
	defer redisClient.Close()
	if err := redisgate.NewGate(redisClient, 0).Ping(ctx); err != nil {
		zlog.Fatal("Failed to reach Redis", zap.Error(err))
	}

	app, err := cmd.NewCompositionRoot(*config, gormDB, redisClient, zlog)
	if err != nil {
		zlog.Fatal("Failed to build application", zap.Error(err))
	}

	jobManager := app.JobManager()
	if err := jobManager.StartAll(); err != nil {
		zlog.Fatal("Failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, config, zlog)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, config *cmd.Config, zlog *zap.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)

	api.NewServer(app.Handlers(), zlog).Register(e)

	go func() {
		zlog.Info("HTTP server starting", zap.Int("port", config.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%d", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("HTTP server shutdown failed", zap.Error(err))
	}
	zlog.Info("HTTP server stopped")
}
