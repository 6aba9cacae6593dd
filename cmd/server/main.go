package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkazakov/gotodo/internal/config"
	"github.com/vkazakov/gotodo/internal/server"
	"github.com/vkazakov/gotodo/internal/storage"
	"github.com/vkazakov/gotodo/internal/storage/boltdb"
	"github.com/vkazakov/gotodo/internal/storage/sqlite"
	"github.com/vkazakov/gotodo/internal/todo"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию из окружения
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.SessionSecret == config.DevSessionSecret {
		logger.Warn("using development session secret, set GOTODO_SESSION_SECRET in production")
	}

	// Контекст завершается по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем хранилище по выбранному драйверу
	store, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	logger.Info("storage opened",
		slog.String("driver", cfg.Driver),
		slog.String("path", cfg.DBPath))

	service := todo.NewService(logger, store)

	srv := server.New(cfg, logger, service, Version)
	return srv.Run(ctx)
}

// openStorage создает реализацию UserStorage по конфигурации
func openStorage(ctx context.Context, cfg *config.Config) (storage.UserStorage, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		return boltdb.New(ctx, cfg.DBPath)
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}

func printVersion() {
	fmt.Printf("GoTodo Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
