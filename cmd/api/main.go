package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/role-gate/internal/api/http"
	"github.com/spec-kit/role-gate/internal/api/http/handlers"
	"github.com/spec-kit/role-gate/internal/auth"
	"github.com/spec-kit/role-gate/internal/config"
	"github.com/spec-kit/role-gate/internal/observability"
	"github.com/spec-kit/role-gate/internal/persistence"
	"github.com/spec-kit/role-gate/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(ctx, cfg.Redis, cfg.Cache, logger)
	defer redis.Close()

	store := repository.NewAccountRepository(pg.PoolHandle())
	accounts := repository.NewCachedAccountRepository(
		store,
		redis.Client,
		cfg.Cache.AccountTTL(),
		logger,
	)
	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	dependencies := map[string]handlers.Pinger{"postgres": pg}
	if redis.Enabled() {
		dependencies["redis"] = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
		Auth:        handlers.NewAuthHandler(accounts, store, cfg.Auth.BcryptCost),
		Users:       handlers.NewUsersHandler(accounts),
		Tokens:      codec,
		TokenHeader: cfg.Auth.TokenHeader,
		Accounts:    accounts,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
