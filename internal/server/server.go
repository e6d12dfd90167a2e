// Package server boots the application: config, datastores, workers,
// dependency wiring, and the HTTP listen/serve lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/controllers"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/jobs"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/repositories"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/routes"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/config"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/auth"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/cache"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/database"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/mailer"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/metrics"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/middleware"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/payments"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/queue"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/reqid"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/router"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/storage"
)

// Start boots everything and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	secret := config.AccessTokenSecret()
	if secret == "" {
		return errors.New("server: ACCESS_TOKEN_SECRET is not set, refusing to start")
	}
	authority, err := auth.NewAuthority([]byte(secret))
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := database.Connect(ctx)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	defer conn.Close(context.Background()) //nolint:errcheck

	// In production, tee logs into Mongo alongside stdout.
	if config.AppEnv() == "production" {
		mongoHandler := logger.NewMongoHandler(conn.DB.Collection("logs"))
		defer mongoHandler.Close()
		jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
		logger.Use(slog.New(logger.NewMultiHandler(jsonHandler, mongoHandler)))
	}

	// Redis is optional: without it the menu cache is a no-op and the
	// queue falls back to in-process memory.
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, continuing without cache", "error", err)
		queue.SetDriver(queue.NewMemoryDriver())
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.Client()))
	}

	if mg, err := mailer.NewMailgun(); err != nil {
		logger.Warn("mailgun not configured, confirmation mails disabled", "error", err)
	} else {
		jobs.UseMailer(mg)
	}
	queue.Register("*jobs.OrderConfirmationJob", func() queue.Job { return &jobs.OrderConfirmationJob{} })
	queue.StartWorkers(ctx, 2)

	var gateway payments.Gateway
	if stripe, err := payments.NewStripe(config.StripeSecretKey()); err != nil {
		logger.Warn("stripe not configured, checkout disabled", "error", err)
		gateway = disabledGateway{}
	} else {
		gateway = stripe
	}

	disk, err := storage.Open()
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	userRepo := repositories.NewUserRepository(conn.DB)
	menuRepo := repositories.NewMenuRepository(conn.DB)
	cartRepo := repositories.NewCartRepository(conn.DB)
	reviewRepo := repositories.NewReviewRepository(conn.DB)
	paymentRepo := repositories.NewPaymentRepository(conn.DB)

	userService := services.NewUserService(userRepo)
	paymentService := services.NewPaymentService(paymentRepo, cartRepo, gateway, config.PaymentCurrency())
	statsService := services.NewStatsService(userRepo, menuRepo, paymentRepo)

	r := NewRouter(routes.Controllers{
		Auth:    controllers.NewAuthController(authority),
		User:    controllers.NewUserController(userService),
		Menu:    controllers.NewMenuController(menuRepo, disk),
		Cart:    controllers.NewCartController(cartRepo),
		Review:  controllers.NewReviewController(reviewRepo),
		Payment: controllers.NewPaymentController(paymentService),
		Stats:   controllers.NewStatsController(statsService),
	}, routes.Guards{
		Authenticate: middleware.Authenticate(authority),
		RequireAdmin: middleware.RequireAdmin(userService),
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// NewRouter assembles the global middleware stack and mounts the API.
// Split out from Start so the route table can be inspected without booting.
func NewRouter(c routes.Controllers, g routes.Guards) *router.Router {
	r := router.New()

	// Outermost to innermost: metrics first for accurate total latency,
	// recovery before anything that can panic, request id before anything
	// that logs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, c, g)
	return r
}

// disabledGateway stands in when STRIPE_SECRET_KEY is unset so the rest of
// the API keeps working.
type disabledGateway struct{}

func (disabledGateway) CreateIntent(int64, string) (string, error) {
	return "", errors.New("payment gateway is not configured")
}
