package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/etnz/stockbook"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read by the configuration.
const envPrefix = "STOCKBOOK"

// Config holds runtime configuration for the application.
type Config struct {
	Password     string                    `envconfig:"PASSWORD" default:"password"`
	PasswordHash string                    `envconfig:"PASSWORD_HASH"` // bcrypt hash, wins over Password.
	CostMethod   stockbook.CostBasisMethod `envconfig:"COST_METHOD" default:"average"`
	Currency     string                    `envconfig:"CURRENCY"`
	LogFormat    string                    `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel     slog.Level                `envconfig:"LOG_LEVEL" default:"warn"`
	Plain        bool                      `envconfig:"PLAIN"`
}

// LoadConfig reads the optional dotenv files then the environment variables.
// Variables already set in the environment win over the dotenv files.
func LoadConfig(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load dotenv file: %w", err)
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that envconfig cannot check by itself.
func (c *Config) Validate() error {
	if c.Currency != "" {
		if err := stockbook.ValidateCurrency(c.Currency); err != nil {
			return err
		}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q: want text or json", c.LogFormat)
	}
	if c.Password == "" && c.PasswordHash == "" {
		return errors.New("a password or a password hash must be provided")
	}
	return nil
}

// NewLogger creates the logger described by cfg, writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if cfg != nil {
		opts.Level = cfg.LogLevel
	}
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
