package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Console  ConsoleConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AuditRetention  time.Duration
	AutoMigrate     bool
}

type ConsoleConfig struct {
	IdleTTL      time.Duration
	HandleTTL    time.Duration
	HandleSecret []byte
	Issuer       string
	PhoneRegion  string
}

type SecurityConfig struct {
	RateLimitPerSecond      int
	RateLimitBurst          int
	LoginRateLimitPerSecond float64
	LoginRateLimitBurst     int
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load builds the configuration from environment variables.
// Values missing from the environment fall back to development defaults.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Backend: BackendConfig{
			URL:     strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:8000"), "/"),
			Timeout: getDurationEnv("BACKEND_TIMEOUT", 0),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "console_audit.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "console_user"),
			Password:        getEnv("DB_PASSWORD", "console_password"),
			Name:            getEnv("DB_NAME", "console_audit"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AuditRetention:  getDurationEnv("AUDIT_RETENTION", 90*24*time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Console: ConsoleConfig{
			IdleTTL:     getDurationEnv("CONSOLE_IDLE_TTL", 8*time.Hour),
			HandleTTL:   getDurationEnv("CONSOLE_HANDLE_TTL", 24*time.Hour),
			Issuer:      getEnv("CONSOLE_ISSUER", "lookup-console"),
			PhoneRegion: strings.ToUpper(getEnv("PHONE_REGION", "GT")),
		},
		Security: SecurityConfig{
			RateLimitPerSecond:      getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:          getIntEnv("RATE_LIMIT_BURST", 40),
			LoginRateLimitPerSecond: getFloatEnv("LOGIN_RATE_LIMIT_PER_SECOND", 0.2),
			LoginRateLimitBurst:     getIntEnv("LOGIN_RATE_LIMIT_BURST", 5),
		},
	}

	if config.Database.Driver != DriverSQLite && config.Database.Driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected %s or %s)", config.Database.Driver, DriverSQLite, DriverPostgres)
	}

	secret, err := config.loadHandleSecret()
	if err != nil {
		return nil, err
	}
	config.Console.HandleSecret = secret

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the golang-migrate database URL for postgres
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadHandleSecret loads the HMAC secret used to sign console handles
// Priority order:
// 1. CONSOLE_HANDLE_SECRET (base64) is used in all environments
// 2. In production a missing secret is an error
// 3. Elsewhere a random secret is generated; handles then die with the process
func (c *Config) loadHandleSecret() ([]byte, error) {
	if encoded := os.Getenv("CONSOLE_HANDLE_SECRET"); encoded != "" {
		secret, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode CONSOLE_HANDLE_SECRET: %w", err)
		}
		if len(secret) < 32 {
			return nil, fmt.Errorf("CONSOLE_HANDLE_SECRET must decode to at least 32 bytes, got %d", len(secret))
		}
		return secret, nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("CONSOLE_HANDLE_SECRET environment variable must be set in production environments")
	}

	slog.Info("generating console handle secret (set CONSOLE_HANDLE_SECRET to keep consoles valid across restarts)",
		"environment", c.Server.Environment)
	return GenerateSecret()
}

// GenerateSecret returns 32 random bytes
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate handle secret: %w", err)
	}
	return secret, nil
}
