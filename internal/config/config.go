package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"tuipay"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tuipay"`
	}

	Auth struct {
		// JWTSecret verifies the payer token issued by the gateway.
		JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret"`
		// InternalKey guards service-to-service endpoints.
		InternalKey string `envconfig:"INTERNAL_API_KEY" default:"dev-internal-key"`
	}

	Services struct {
		BillingURL   string        `envconfig:"BILLING_URL" default:"http://localhost:8082"`
		LedgerURL    string        `envconfig:"LEDGER_URL" default:"http://localhost:8083"`
		ChallengeURL string        `envconfig:"CHALLENGE_URL" default:"http://localhost:8084"`
		Timeout      time.Duration `envconfig:"SERVICE_TIMEOUT" default:"10s"`
	}

	Challenge struct {
		TTL           time.Duration `envconfig:"OTP_TTL" default:"5m"`
		Length        int           `envconfig:"OTP_LENGTH" default:"6"`
		SweepInterval time.Duration `envconfig:"OTP_SWEEP_INTERVAL" default:"1m"`
	}

	SMTP struct {
		Host     string `envconfig:"SMTP_HOST" default:"localhost"`
		Port     int    `envconfig:"SMTP_PORT" default:"587"`
		User     string `envconfig:"SMTP_USER" default:""`
		Password string `envconfig:"SMTP_PASSWORD" default:""`
		From     string `envconfig:"SMTP_FROM_EMAIL" default:"no-reply@tuipay.local"`
		FromName string `envconfig:"SMTP_FROM_NAME" default:"iBanking"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	// A missing .env is fine; real env vars take precedence anyway.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
