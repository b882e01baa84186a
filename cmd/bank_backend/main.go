package main

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

	"github.com/SscSPs/bank_backoffice_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/bank_backoffice_app/internal/adapters/storage/gcs"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/core/services"
	"github.com/SscSPs/bank_backoffice_app/internal/handlers"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/SscSPs/bank_backoffice_app/internal/scheduler"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/SscSPs/bank_backoffice_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"
)

const shutdownTimeout = 10 * time.Second

// @title Bank Back-Office API
// @version 1.0
// @description Customer onboarding, transaction approvals, loans and interest for a bank back office.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	var attachments portssvc.AttachmentStore
	if cfg.GCSBucket != "" {
		var opts []option.ClientOption
		if cfg.GCSCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
		}
		store, err := gcs.NewReceiptStore(ctx, cfg.GCSBucket, cfg.GCSPrefix, opts...)
		if err != nil {
			return fmt.Errorf("initialize receipt store: %w", err)
		}
		defer store.Close(context.Background())
		attachments = store
		logger.Info("Receipt storage ready", slog.String("bucket", cfg.GCSBucket), slog.String("prefix", cfg.GCSPrefix))
	}

	redisClient := newRedisClient(ctx, cfg.RedisURL, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, "login", redisClient)
	if err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, services.Dependencies{
		Attachments: attachments,
		Events:      posthogClient,
	})

	if cfg.InterestSweepCron != "" {
		sweep, err := scheduler.NewInterestSweep(cfg.InterestSweepCron, serviceContainer.Interest, logger)
		if err != nil {
			return err
		}
		sweep.Start(ctx)
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := sweep.Stop(stopCtx); err != nil {
				logger.Warn("Interest sweep did not stop in time", slog.String("error", err.Error()))
			}
		}()
	} else {
		logger.Info("INTEREST_SWEEP_CRON is empty, in-process interest sweep disabled")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		LoginLimit: middleware.RateLimit(loginLimiter),
		DB:         dbPool,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	logger.Info("HTTP server shutdown successfully")
	return nil
}

// newRedisClient connects to REDIS_URL. It returns nil when the URL is empty
// or the server is unreachable, in which case rate limits are kept in memory.
func newRedisClient(ctx context.Context, redisURL string, logger *slog.Logger) *redis.Client {
	if redisURL == "" {
		logger.Info("REDIS_URL not set, using in-memory rate limiting")
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, using in-memory rate limiting", slog.String("error", err.Error()))
		return nil
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unreachable, using in-memory rate limiting", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	return client
}
