package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/health"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/messaging"
	"github.com/piresc/freightdesk/internal/pkg/middleware"
	nsqpkg "github.com/piresc/freightdesk/internal/pkg/nsq"
	"github.com/piresc/freightdesk/internal/pkg/otpcache"
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/internal/pkg/storage"
	"github.com/piresc/freightdesk/internal/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if configs.Database.AutoMigrate {
		if err := postgresClient.Migrate(ctx); err != nil {
			postgresClient.Close()
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	e := newEcho()
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	// Redis only backs the OTP store
	var redisClient *database.RedisClient
	if strings.EqualFold(configs.OTP.Store, otpcache.StoreRedis) {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			srv.Close()
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	}

	fileStore, err := storage.New(ctx, configs.Storage)
	if err != nil {
		srv.Close()
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}
	if closer, ok := fileStore.(interface{ Close() error }); ok {
		srv.OnShutdown(func(context.Context) error { return closer.Close() })
	}

	sender, err := messaging.New(configs.Messaging, zapLogger)
	if err != nil {
		srv.Close()
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}

	otpStore, err := otpcache.New(configs.OTP, redisClient)
	if err != nil {
		srv.Close()
		return fmt.Errorf("failed to initialize OTP store: %w", err)
	}
	if memStore, ok := otpStore.(*otpcache.MemoryStore); ok {
		memStore.StartSweeper(ctx, configs.OTP.SweepInterval)
	}

	publisher, err := nsqpkg.NewPublisher(configs.Events.NSQAddress)
	if err != nil {
		srv.Close()
		return fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	srv.OnShutdown(func(context.Context) error {
		publisher.Stop()
		return nil
	})

	if local, ok := fileStore.(*storage.LocalStore); ok {
		e.Static(configs.Storage.PublicBaseURL, local.Dir())
	}

	healthSvc := health.NewService(appName)
	healthSvc.AddChecker("postgres", postgresClient)
	if redisClient != nil {
		healthSvc.AddChecker("redis", redisClient)
	}
	health.RegisterHealthEndpoints(e, healthSvc)

	groups := server.NewRouteGroups(e, configs.JWT)
	for _, svc := range buildServices(postgresClient.GetDB(), fileStore, otpStore, sender, publisher, configs) {
		svc.RegisterRoutes(groups)
	}

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)
	return srv.Run(ctx)
}

// newEcho builds the router with the shared middleware chain
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = configs.App.Debug
	e.Validator = validation.New()

	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.BodyLimit(configs.Server.BodyLimit))
	return e
}
