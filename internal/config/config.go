package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tillkeeper"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tillkeeper"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	// Variance holds the drawer-count classification cut-offs in minor units.
	// Policy, not behavior: changing them never changes a stored variance.
	Variance struct {
		BalancedCents int64 `envconfig:"VARIANCE_BALANCED_CENTS" default:"500"`
		MinorCents    int64 `envconfig:"VARIANCE_MINOR_CENTS" default:"1000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Thresholds converts the configured cut-offs into the session policy type.
func (c *Config) Thresholds() session.Thresholds {
	return session.Thresholds{
		Balanced: money.Money(c.Variance.BalancedCents),
		Minor:    money.Money(c.Variance.MinorCents),
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
