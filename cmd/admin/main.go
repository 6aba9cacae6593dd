package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/vkazakov/gotodo/internal/config"
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
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	driver := flag.String("driver", config.DefaultDriver, "Storage driver: bolt or sqlite")
	dbPath := flag.String("db", config.DefaultDBPath, "Path to the database file")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Логи админской утилиты не нужны в stdout — только ошибки
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Открываем хранилище
	store, err := openStorage(ctx, *driver, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", err)
		}
	}()

	service := todo.NewService(logger, store)

	// Выполняем команду
	switch command {
	case "create-user":
		if err := runCreateUser(ctx, service, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "stats":
		if err := runStats(ctx, service, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runCreateUser создает пользователя, запрашивая пароль с терминала
func runCreateUser(ctx context.Context, service *todo.Service, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gotodo-admin create-user <username>")
	}
	username := args[0]

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := service.Register(ctx, username, password); err != nil {
		return err
	}

	fmt.Printf("User %q created\n", username)
	return nil
}

// runStats печатает счетчики задач пользователя
func runStats(ctx context.Context, service *todo.Service, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gotodo-admin stats <username>")
	}
	username := args[0]

	stats, err := service.GetStats(ctx, username)
	if err != nil {
		return err
	}

	fmt.Printf("User:      %s\n", username)
	fmt.Printf("Active:    %d\n", stats.ActiveCount)
	fmt.Printf("Completed: %d\n", stats.CompletedCount)
	return nil
}

// readPassword читает пароль с терминала без эха
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// openStorage создает реализацию UserStorage по флагам
func openStorage(ctx context.Context, driver, dbPath string) (storage.UserStorage, error) {
	switch driver {
	case config.DriverBolt:
		return boltdb.New(ctx, dbPath)
	case config.DriverSQLite:
		return sqlite.New(ctx, dbPath)
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
}

func printUsage() {
	fmt.Println("GoTodo admin utility")
	fmt.Println()
	fmt.Println("Usage: gotodo-admin [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create-user <username>   Create a user (prompts for password)")
	fmt.Println("  stats <username>         Show task counters for a user")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Printf("GoTodo Admin\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
