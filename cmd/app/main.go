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

	"kakanin/cmd"
	"kakanin/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn("No .env file found (using environment variables)")
	}
	config := cmd.LoadConfig(os.Getenv)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// run wires the application and serves until ctx is cancelled. Everything that
// can fail is built before the scheduled jobs start, so an early return never
// leaves a job running.
func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	gormDB, err := postgres.Open(config.ConnectionConfig())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer sqlDB.Close()

	if err = postgres.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB)
	if err = app.EnsureAdminUser(ctx, logger); err != nil {
		return fmt.Errorf("creating administrator: %w", err)
	}

	router, err := app.CreateRouter(logger)
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	logger.InfoContext(ctx, "Server listening", "port", config.HTTPPort, "driver", config.DBDriver)
	return startWebServer(ctx, router, config.HTTPPort)
}

// startWebServer serves until ctx is cancelled, then shuts down gracefully.
func startWebServer(ctx context.Context, e *echo.Echo, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
