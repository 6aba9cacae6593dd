package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DriverBolt, cfg.Driver)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DevSessionSecret, cfg.SessionSecret)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GOTODO_ADDR", ":9090")
	t.Setenv("GOTODO_DB_DRIVER", "sqlite")
	t.Setenv("GOTODO_DB_PATH", "/var/lib/gotodo/data.db")
	t.Setenv("GOTODO_SESSION_SECRET", "super-secret")
	t.Setenv("GOTODO_SESSION_TTL", "1h30m")
	t.Setenv("GOTODO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/var/lib/gotodo/data.db", cfg.DBPath)
	assert.Equal(t, "super-secret", cfg.SessionSecret)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("GOTODO_SESSION_TTL", "not-a-duration")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("GOTODO_DB_DRIVER", "postgres")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Addr:          ":8080",
		Driver:        DriverBolt,
		DBPath:        "test.db",
		SessionSecret: "secret",
		SessionTTL:    time.Hour,
		LogLevel:      "info",
	}

	tests := []struct {
		mutate  func(c *Config)
		name    string
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "sqlite driver", mutate: func(c *Config) { c.Driver = DriverSQLite }, wantErr: false},
		{name: "unknown driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: true},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = "" }, wantErr: true},
		{name: "empty secret", mutate: func(c *Config) { c.SessionSecret = "" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.SessionTTL = 0 }, wantErr: true},
		{name: "negative ttl", mutate: func(c *Config) { c.SessionTTL = -time.Hour }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
		wantErr  bool
	}{
		{name: "debug", level: "debug", expected: slog.LevelDebug},
		{name: "info", level: "info", expected: slog.LevelInfo},
		{name: "warn", level: "warn", expected: slog.LevelWarn},
		{name: "error", level: "error", expected: slog.LevelError},
		{name: "unknown", level: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}

			level, err := cfg.SlogLevel()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
