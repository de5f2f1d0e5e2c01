// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Logging  LoggingConfig
	Airports AirportsConfig
	Booking  BookingConfig
	Mail     MailConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AirportsConfig holds the airport reference dataset settings.
type AirportsConfig struct {
	// Source is a local file path or an http(s) URL to the airports CSV.
	Source string `env:"AIRPORTS_SOURCE" envDefault:"data/airports.csv"`

	// SearchLimit caps the suggestion list.
	SearchLimit int `env:"AIRPORTS_SEARCH_LIMIT" envDefault:"10"`
}

// BookingConfig holds booking submission settings.
type BookingConfig struct {
	// WhatsAppNumber is the deep link destination, digits only.
	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"2347032615370"`

	// EmailTimeout bounds the asynchronous confirmation email send.
	EmailTimeout time.Duration `env:"BOOKING_EMAIL_TIMEOUT" envDefault:"15s"`
}

// MailConfig holds outbound email settings. An empty APIKey switches the
// mailer into mock mode: messages are logged instead of sent.
type MailConfig struct {
	APIKey       string `env:"MAIL_API_KEY"`
	From         string `env:"MAIL_FROM" envDefault:"SN-SP Travel <noreply@snsp.com>"`
	SupportEmail string `env:"MAIL_SUPPORT_EMAIL" envDefault:"info@snsp.com"`
	// OperatorEmail receives the worker's new-booking notifications.
	OperatorEmail string `env:"MAIL_OPERATOR_EMAIL" envDefault:"bookings@snsp.com"`
}

// AdminConfig holds the back-office credentials and session settings.
type AdminConfig struct {
	Email      string        `env:"ADMIN_EMAIL" envDefault:"admin@snsp.com"`
	Password   string        `env:"ADMIN_PASSWORD"`
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"12h"`

	// SessionStore selects the session backend: memory or redis.
	SessionStore string `env:"ADMIN_SESSION_STORE" envDefault:"memory"`
}

// StorageConfig selects and configures the booking store.
type StorageConfig struct {
	// Driver is memory or postgres.
	Driver string `env:"STORAGE_DRIVER" envDefault:"memory"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"travel"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// DSN builds the Postgres connection string.
func (s StorageConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, s.SSLMode)
}

// RedisConfig holds Redis settings for the session store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// KafkaConfig holds the booking event pipeline settings. No brokers means
// the pipeline is disabled and events are discarded.
type KafkaConfig struct {
	Brokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	BookingsTopic string   `env:"KAFKA_BOOKINGS_TOPIC" envDefault:"bookings.created"`
	GroupID       string   `env:"KAFKA_GROUP_ID" envDefault:"travel-booking-worker"`
}

// Enabled reports whether the event pipeline is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Airports.Source == "" {
		return fmt.Errorf("AIRPORTS_SOURCE must not be empty")
	}
	if cfg.Airports.SearchLimit < 1 {
		return fmt.Errorf("AIRPORTS_SEARCH_LIMIT must be at least 1, got %d", cfg.Airports.SearchLimit)
	}

	if strings.TrimSpace(cfg.Booking.WhatsAppNumber) == "" {
		return fmt.Errorf("WHATSAPP_NUMBER must not be empty")
	}
	for _, ch := range cfg.Booking.WhatsAppNumber {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("WHATSAPP_NUMBER must contain digits only, got %q", cfg.Booking.WhatsAppNumber)
		}
	}
	if cfg.Booking.EmailTimeout <= 0 {
		return fmt.Errorf("BOOKING_EMAIL_TIMEOUT must be positive")
	}

	if cfg.Admin.SessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL must be positive")
	}

	validStores := map[string]bool{"memory": true, "redis": true}
	if !validStores[cfg.Admin.SessionStore] {
		return fmt.Errorf("ADMIN_SESSION_STORE must be one of: memory, redis; got %q", cfg.Admin.SessionStore)
	}

	validDrivers := map[string]bool{"memory": true, "postgres": true}
	if !validDrivers[cfg.Storage.Driver] {
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, postgres; got %q", cfg.Storage.Driver)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Production must not run with an empty admin password.
	if cfg.App.Env == "production" && cfg.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set in production")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
