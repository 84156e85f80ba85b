package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/surfsup-app/surfsup/internal/pkg/config"
	"github.com/surfsup-app/surfsup/internal/pkg/database"
	"github.com/surfsup-app/surfsup/internal/pkg/health"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/middleware"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	natspkg "github.com/surfsup-app/surfsup/internal/pkg/nats"
	"github.com/surfsup-app/surfsup/internal/pkg/retry"
	"github.com/surfsup-app/surfsup/internal/pkg/server"
	checkingw "github.com/surfsup-app/surfsup/services/checkin/gateway"
	checkinhandler "github.com/surfsup-app/surfsup/services/checkin/handler"
	checkinrepo "github.com/surfsup-app/surfsup/services/checkin/repository"
	checkinuc "github.com/surfsup-app/surfsup/services/checkin/usecase"
	spotshandler "github.com/surfsup-app/surfsup/services/spots/handler"
	spotsrepo "github.com/surfsup-app/surfsup/services/spots/repository"
	spotsuc "github.com/surfsup-app/surfsup/services/spots/usecase"
)

const serviceName = "checkind"

func main() {
	cfg := config.InitConfig(".env")

	zl, err := logger.InitFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer zl.Close()

	zl.Info("Starting service",
		logger.String("service", serviceName),
		logger.String("environment", cfg.App.Environment))

	shutdownManager := server.NewShutdownManager(zl)
	retrier := retry.New(retry.DefaultConfig(), zl)

	postgres := initPostgres(cfg, retrier, zl)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgres.Close()
	})

	redisClient := initRedis(cfg, retrier, zl)
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	natsClient := initNATS(cfg, retrier, zl)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})

	// Check-in service wiring
	registry := checkinrepo.NewCheckInRegistry()
	state := checkinrepo.NewSpotStateStore(redisClient)
	history := checkinrepo.NewHistoryRepository(postgres.GetDB())
	gw := checkingw.NewCheckInGW(natsClient)

	uc := checkinuc.NewCheckInUC(cfg, registry, history, state, gw)

	sweepCtx, cancelSweeper := context.WithCancel(context.Background())
	go uc.StartSweeper(sweepCtx)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelSweeper()
		return nil
	})

	checkinHandler, err := checkinhandler.NewHandler(uc, natsClient, cfg)
	if err != nil {
		zl.Fatal("Failed to initialize check-in handler", logger.Err(err))
	}

	// Spot directory wiring
	spotRepo := spotsrepo.NewSpotRepo(postgres.GetDB(), redisClient)
	spotUC := spotsuc.NewSpotUC(spotRepo)
	spotHandler := spotshandler.NewHandler(spotUC, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zl))
	e.Use(logger.EchoMiddleware(zl))

	health.RegisterHealthEndpoints(e, serviceName)
	checkinHandler.RegisterRoutes(e)
	spotHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zl, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zl.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)
}

func initPostgres(cfg *models.Config, retrier *retry.Retrier, zl *logger.ZapLogger) *database.PostgresClient {
	var client *database.PostgresClient
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		var err error
		client, err = database.NewPostgresClient(cfg.Database)
		return err
	})
	if err != nil {
		zl.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	return client
}

func initRedis(cfg *models.Config, retrier *retry.Retrier, zl *logger.ZapLogger) *database.RedisClient {
	var client *database.RedisClient
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		var err error
		client, err = database.NewRedisClient(cfg.Redis)
		return err
	})
	if err != nil {
		zl.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	return client
}

func initNATS(cfg *models.Config, retrier *retry.Retrier, zl *logger.ZapLogger) *natspkg.Client {
	var client *natspkg.Client
	err := retrier.Execute(context.Background(), func(ctx context.Context) error {
		var err error
		client, err = natspkg.NewClient(cfg.NATS.URL)
		return err
	})
	if err != nil {
		zl.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	return client
}
