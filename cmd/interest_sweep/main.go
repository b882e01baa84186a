// Command interest_sweep credits yearly savings interest to every customer once
// and exits. It suits an external scheduler such as a Kubernetes CronJob.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/bank_backoffice_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/bank_backoffice_app/internal/core/services"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/SscSPs/bank_backoffice_app/internal/scheduler"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/SscSPs/bank_backoffice_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("job", "interest_sweep"))
	slog.SetDefault(logger)
	os.Exit(run(logger))
}

// run returns the process exit code: 0 on success, 1 when the sweep could not
// run, 2 when some customers failed and need another pass.
func run(logger *slog.Logger) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return 1
	}
	defer database.ClosePgxPool(dbPool)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), services.Dependencies{
		Events: posthogClient,
	})

	summary, err := scheduler.RunSweep(middleware.WithLogger(ctx, logger), container.Interest)
	if err != nil {
		return 1
	}
	if summary.Failed > 0 {
		return 2
	}
	return 0
}
