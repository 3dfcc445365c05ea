package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lushstays/staygo/internal/cart"
	"github.com/lushstays/staygo/internal/config"
	"github.com/lushstays/staygo/internal/flow"
	"github.com/lushstays/staygo/internal/mail"
	"github.com/lushstays/staygo/internal/postgres"
	"github.com/lushstays/staygo/internal/pricing"
	"github.com/lushstays/staygo/internal/redis"
	postgresrepo "github.com/lushstays/staygo/internal/repository/postgres"
	redisrepo "github.com/lushstays/staygo/internal/repository/redis"
	"github.com/lushstays/staygo/internal/service"
	"github.com/lushstays/staygo/internal/session"
	httpgin "github.com/lushstays/staygo/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	sessions   *session.Manager
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redis.New(context.Background(), redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisrepo.NewBookingsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "book", 10, 1*time.Minute)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)

	// Initialize mail delivery
	mailer := mail.NewSMTPSender(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		From:     cfg.SMTP.From,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		Enabled:  cfg.SMTP.Enabled,
	})

	// Initialize services
	pricingCfg := pricing.Config{AllowZeroNights: cfg.Booking.AllowZeroNights}
	services := service.NewServices(store, cache, pubsub, mailer, service.Config{
		Pricing: pricingCfg,
	})

	// Initialize the session registry; every session submits through the
	// booking service
	menu := cart.DefaultMenu()
	sessions := session.NewManager(cfg.Booking.SessionTTL, func() *flow.Session {
		return flow.NewSession(services.Booking, menu, flow.Config{Pricing: pricingCfg})
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, sessions, menu, idempotencyStore, limiter, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Evict idle booking sessions
	g.Go(func() error {
		if err := a.sessions.Sweep(gCtx); err != nil && err != context.Canceled {
			return fmt.Errorf("session sweeper stopped: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
