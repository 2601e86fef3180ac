package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/adapter/api"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/catalog"
	calculatorservice "github.com/burenotti/go_fitness_backend/internal/app/calculator"
	plannerservice "github.com/burenotti/go_fitness_backend/internal/app/planner"
	"github.com/burenotti/go_fitness_backend/internal/config"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/leporo/sqlf"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workouts, err := loadCatalog(ctx, cfg)
	if err != nil {
		panic("failed to load workout catalog: " + err.Error())
	}
	logger.Info("workout catalog loaded",
		"source", cfg.Catalog.Source,
		"combinations", len(workouts.Combinations()),
	)

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.CalculatorService(calculatorservice.New(logger, calculatorservice.Options{
			Delay:             cfg.Calculator.Delay,
			ValidateConverted: cfg.Calculator.ValidateConverted,
		})),
		api.PlannerService(plannerservice.New(logger, workouts, cfg.Planner.Delay)),
	)

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}
	logger.Info("server shutdown")
}

func loadCatalog(ctx context.Context, cfg *config.Config) (workout.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogEmbedded:
		return catalog.Embedded()
	case config.CatalogFile:
		return catalog.LoadFile(cfg.Catalog.Path)
	case config.CatalogPostgres:
		sqlf.SetDialect(sqlf.PostgreSQL)

		db, err := storage.Open(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
		// Read once at startup.
		defer db.Close()

		return catalog.NewPostgresStorage(db).Load(ctx)
	}
	return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
