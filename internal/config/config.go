package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBDSN      string `env:"DB_DSN,required,notEmpty"`
	DBLogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`

	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	PasswordMinLength int           `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`

	// admin bawaan, dibuat saat start jika belum ada admin sama sekali
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@jasa-service.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"Admin123!"`

	OTELEndpoint    string `env:"OTEL_ENDPOINT"`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"jasa-service"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.PasswordMinLength < 1 {
		return nil, fmt.Errorf("PASSWORD_MIN_LENGTH must be positive, got %d", cfg.PasswordMinLength)
	}

	return &cfg, nil
}
