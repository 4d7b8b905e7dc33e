package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/just-nibble/snapvcs/pkg/validator"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultHistoryDepth caps how many commits a log walk visits.
	DefaultHistoryDepth = 50
)

type Config struct {
	HTTP     HTTPConfig     `toml:"http"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	History  HistoryConfig  `toml:"history"`
}

type HTTPConfig struct {
	Addr string `toml:"addr" validate:"required"`
}

// DatabaseConfig selects the backing store. Postgres fields are only read
// when Driver is "postgres", SQLitePath only when it is "sqlite".
type DatabaseConfig struct {
	Driver     string `toml:"driver" validate:"required,oneof=postgres sqlite"`
	Host       string `toml:"host" validate:"required_if=Driver postgres"`
	Port       string `toml:"port" validate:"required_if=Driver postgres"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	Name       string `toml:"name" validate:"required_if=Driver postgres"`
	SSLMode    string `toml:"sslmode"`
	SQLitePath string `toml:"sqlite_path" validate:"required_if=Driver sqlite"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format" validate:"omitempty,oneof=console json"`
}

type HistoryConfig struct {
	MaxDepth int `toml:"max_depth" validate:"gt=0"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{Addr: ":8080"},
		Database: DatabaseConfig{
			Driver:  DriverPostgres,
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "snapvcs",
			SSLMode: "disable",
		},
		Log:     LogConfig{Level: "info", Format: "json"},
		History: HistoryConfig{MaxDepth: DefaultHistoryDepth},
	}
}

// Load reads defaults, then the TOML file at path (if not empty), then
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := validator.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", cfg.HTTP.Addr)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.SQLitePath = getEnv("SQLITE_PATH", cfg.Database.SQLitePath)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	if v, err := strconv.Atoi(getEnv("HISTORY_MAX_DEPTH", "")); err == nil {
		cfg.History.MaxDepth = v
	}
}

// DSN returns the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Helper function to fetch environment variables with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
