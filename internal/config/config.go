package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Драйверы хранилища
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Значения по умолчанию
const (
	DefaultAddr       = ":8080"
	DefaultDriver     = DriverBolt
	DefaultDBPath     = "gotodo.db"
	DefaultSessionTTL = 24 * time.Hour
	DefaultLogLevel   = "info"

	// DevSessionSecret используется только если GOTODO_SESSION_SECRET не задан.
	// В production секрет обязан приходить из окружения.
	DevSessionSecret = "dev-secret-key-change-in-production"
)

// Config содержит конфигурацию сервера.
// Собирается один раз при старте процесса из переменных окружения
// и дальше не мутируется.
type Config struct {
	Addr          string        // адрес HTTP сервера (GOTODO_ADDR)
	Driver        string        // драйвер хранилища: bolt | sqlite (GOTODO_DB_DRIVER)
	DBPath        string        // путь к файлу БД (GOTODO_DB_PATH)
	SessionSecret string        // ключ подписи session cookie (GOTODO_SESSION_SECRET)
	LogLevel      string        // уровень логирования: debug|info|warn|error (GOTODO_LOG_LEVEL)
	SessionTTL    time.Duration // время жизни сессии (GOTODO_SESSION_TTL, duration string)
}

// Load собирает конфигурацию из переменных окружения с дефолтами
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("GOTODO_ADDR", DefaultAddr),
		Driver:        getEnv("GOTODO_DB_DRIVER", DefaultDriver),
		DBPath:        getEnv("GOTODO_DB_PATH", DefaultDBPath),
		SessionSecret: getEnv("GOTODO_SESSION_SECRET", DevSessionSecret),
		LogLevel:      getEnv("GOTODO_LOG_LEVEL", DefaultLogLevel),
		SessionTTL:    DefaultSessionTTL,
	}

	if ttl := os.Getenv("GOTODO_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid GOTODO_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Driver != DriverBolt && c.Driver != DriverSQLite {
		return fmt.Errorf("unknown db driver %q (expected %q or %q)", c.Driver, DriverBolt, DriverSQLite)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel преобразует LogLevel в slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// getEnv возвращает значение переменной окружения или дефолт
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
