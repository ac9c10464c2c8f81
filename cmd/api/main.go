package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/attendance-service/internal/api/http"
	"github.com/spec-kit/attendance-service/internal/api/http/handlers"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/observability"
	"github.com/spec-kit/attendance-service/internal/persistence"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/repository/memory"
	"github.com/spec-kit/attendance-service/internal/roblox"
	"github.com/spec-kit/attendance-service/internal/service"
	"github.com/spec-kit/attendance-service/internal/worker"
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

	if pg.PoolHandle() != nil && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		staffRepo    repository.StaffRepository
		entryRepo    repository.TimeEntryRepository
		settingsRepo repository.QuotaSettingsRepository
		strikeRepo   repository.StrikeRepository
		adminRepo    repository.AdminRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		staffRepo = repository.NewStaffRepository(pool)
		entryRepo = repository.NewTimeEntryRepository(pool)
		settingsRepo = repository.NewQuotaSettingsRepository(pool)
		strikeRepo = repository.NewStrikeRepository(pool)
		adminRepo = repository.NewAdminRepository(pool)
	} else {
		staffRepo = memory.NewStaffRepository()
		entryRepo = memory.NewTimeEntryRepository()
		settingsRepo = memory.NewQuotaSettingsRepository()
		strikeRepo = memory.NewStrikeRepository()
		adminRepo = memory.NewAdminRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	loc := cfg.App.Location()

	robloxClient := roblox.NewClient(cfg.Roblox, redis, logger)

	aggregationService := service.NewAggregationService(service.AggregationDependencies{
		StaffRepo:    staffRepo,
		EntryRepo:    entryRepo,
		SettingsRepo: settingsRepo,
		StrikeRepo:   strikeRepo,
	}, loc, logger)
	trackingService := service.NewTrackingService(staffRepo, entryRepo, dispatcher, logger)
	leaderboardService := service.NewLeaderboardService(staffRepo, settingsRepo, aggregationService, loc)
	quotaService := service.NewQuotaService(settingsRepo, aggregationService, dispatcher, logger)
	strikeService := service.NewStrikeService(staffRepo, strikeRepo, settingsRepo, dispatcher, loc, logger)
	rosterService := service.NewRosterService(staffRepo, robloxClient, dispatcher, logger)
	authService := service.NewAuthService(*cfg, adminRepo, logger)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		logger.Fatal("failed to seed default admin", zap.Error(err))
	}

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(aggregationService),
		Staff:          handlers.NewStaffHandler(rosterService, aggregationService, trackingService),
		Leaderboard:    handlers.NewLeaderboardHandler(leaderboardService),
		Quota:          handlers.NewQuotaHandler(quotaService),
		Strikes:        handlers.NewStrikesHandler(strikeService),
		Tracking:       handlers.NewTrackingHandler(trackingService),
		Avatar:         handlers.NewAvatarHandler(robloxClient),
		AuthMiddleware: authMiddleware,
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
