package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvProduction is the APP_ENV value that turns off the local listener
const EnvProduction = "production"

// Config holds everything read from the environment
type Config struct {
	MongoURI    string `env:"MONGODB_URI" envDefault:"mongodb://127.0.0.1:27017/portfolio_contacts"`
	Port        string `env:"PORT"        envDefault:"5000"`
	Environment string `env:"APP_ENV"     envDefault:"development"`
	CORSOrigin  string `env:"CORS_ORIGIN" envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	SendGridAPIKey  string `env:"SENDGRID_API_KEY"`
	NotifyEmail     string `env:"NOTIFY_EMAIL"`
	NotifyFromEmail string `env:"NOTIFY_FROM_EMAIL" envDefault:"no-reply@portfolio.local"`
}

// LoadConfig loads variables from a .env file if there is one, then parses
// the environment into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using default values or system environment variables")
	}
	return Parse()
}

// Parse reads the process environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Production reports whether the API runs behind an external host
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// NotificationsEnabled reports whether submission emails can be sent
func (c *Config) NotificationsEnabled() bool {
	return c.SendGridAPIKey != "" && c.NotifyEmail != ""
}
