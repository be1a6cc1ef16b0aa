package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/iyhunko/catalog-transformer/internal/model"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DiscountStrictEnv is the environment variable that enables rejecting discounts outside [0, 1].
	DiscountStrictEnv = "DISCOUNT_STRICT"

	// DefaultDiscountEnv is the environment variable for the discount used when none is given on the command line.
	DefaultDiscountEnv = "DEFAULT_DISCOUNT"

	// MetricsTextfileEnv is the environment variable for the Prometheus textfile path.
	MetricsTextfileEnv = "METRICS_TEXTFILE"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"
)

// Config represents the application configuration.
type Config struct {
	DebugMode bool
	Discount  Discount
	Metrics   Metrics
}

// Discount represents discount policy settings.
type Discount struct {
	Strict  bool
	Default decimal.Decimal
}

// Metrics represents metrics export settings. An empty TextfilePath disables the export.
type Metrics struct {
	TextfilePath string
}

func allDecimals(keyValues map[string]string) (map[string]decimal.Decimal, error) {
	parsed := make(map[string]decimal.Decimal, len(keyValues))
	for key, value := range keyValues {
		d, err := decimal.NewFromString(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return nil, fmt.Errorf("invalid decimal for key %s: %w", key, err)
		}
		parsed[key] = d
	}
	return parsed, nil
}

func (c *Config) validate() error {
	if err := model.ValidatePrecision(c.Discount.Default); err != nil {
		return fmt.Errorf("invalid %s: %w", DefaultDiscountEnv, err)
	}
	if c.Discount.Strict {
		if err := model.ValidateDiscount(c.Discount.Default); err != nil {
			return fmt.Errorf("invalid %s: %w", DefaultDiscountEnv, err)
		}
	}
	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Debug("failed to load from .env", slog.Any("err", err))
	}

	decimals, err := allDecimals(map[string]string{
		DefaultDiscountEnv: getEnvOrDefault(DefaultDiscountEnv, "0"),
	})
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		Discount: Discount{
			Strict:  getEnvAsBool(DiscountStrictEnv, true),
			Default: decimals[DefaultDiscountEnv],
		},
		Metrics: Metrics{
			TextfilePath: os.Getenv(MetricsTextfileEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
