package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hydration-service/internal/config"
	domainservice "hydration-service/internal/domain/service"
	cronpkg "hydration-service/internal/infrastructure/cron"
	"hydration-service/internal/infrastructure/notify"
	"hydration-service/internal/infrastructure/sqlite"
	"hydration-service/internal/logger"
	"hydration-service/internal/service"
	transport "hydration-service/internal/transport/http"
	"hydration-service/internal/transport/http/middleware"

	"go.uber.org/zap"
)

// App represents the application
type App struct {
	config     *config.Config
	log        *zap.Logger
	store      *sqlite.Store
	httpServer *transport.Server
	scheduler  *cronpkg.ReminderScheduler
	limiter    *middleware.RateLimiter
}

// New creates a new application
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Service.Name, cfg.Service.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	// Open the SQLite store; the file is created on first run.
	ctx := context.Background()
	store := sqlite.NewStore()
	if err := store.Open(ctx, cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	log.Info("store opened", zap.String("path", cfg.Database.Path))

	// Initialize repositories
	profileRepo := sqlite.NewProfileRepository(store)
	containerRepo := sqlite.NewContainerTypeRepository(store)
	eventRepo := sqlite.NewEventRepository(store)
	onboardingRepo := sqlite.NewOnboardingRepository(store)

	// Initialize reminder scheduler (if enabled)
	var scheduler *cronpkg.ReminderScheduler
	if cfg.Scheduler.Enabled {
		var notifier notify.Notifier
		if cfg.SMTP.Host != "" {
			notifier = notify.NewSMTPNotifier(&cfg.SMTP)
		} else {
			notifier = notify.NewNoopNotifier(log)
		}
		scheduler = cronpkg.NewReminderScheduler(notifier, log)
		log.Info("reminder scheduler initialized")
	} else {
		log.Info("reminder scheduler is disabled in configuration")
	}

	// A typed nil pointer inside the interface would defeat the service's
	// nil check, so only assign when the scheduler exists.
	var schedulerIface domainservice.ReminderScheduler
	if scheduler != nil {
		schedulerIface = scheduler
	}

	// Initialize services
	hydrationService := service.NewHydrationService(
		profileRepo, containerRepo, eventRepo, onboardingRepo, schedulerIface, log,
	)
	log.Info("services initialized")

	// Restore the reminder set for an already onboarded user.
	if scheduler != nil {
		profile, err := profileRepo.GetLatest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		if profile != nil {
			if err := scheduler.Reschedule(profile.DailyGoal); err != nil {
				return nil, fmt.Errorf("failed to schedule reminders: %w", err)
			}
		}
	}

	// Initialize HTTP transport
	handler := transport.NewHydrationHandler(hydrationService)
	limiter := middleware.NewRateLimiter(120)
	router := transport.NewRouter(handler, limiter, log)
	httpServer := transport.NewServer(router.Setup(), cfg.HTTP.Port, log)

	return &App{
		config:     cfg,
		log:        log,
		store:      store,
		httpServer: httpServer,
		scheduler:  scheduler,
		limiter:    limiter,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	// Setup signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if a.scheduler != nil {
		a.scheduler.Start()
	}
	a.limiter.StartCleanup()

	// Start HTTP server in a goroutine
	go func() {
		if err := a.httpServer.Start(); err != nil {
			a.log.Error("HTTP server error", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	a.log.Info("service started",
		zap.String("name", a.config.Service.Name),
		zap.Int("port", a.config.HTTP.Port))

	// Wait for interrupt signal
	<-quit
	a.log.Info("shutting down")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Warn("HTTP shutdown error", zap.Error(err))
	}

	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	a.limiter.Stop()

	if err := a.store.Close(); err != nil {
		a.log.Warn("store close error", zap.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
