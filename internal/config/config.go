package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CHECKOUT_"

type Config struct {
	SDK         SDKConfig         `koanf:"sdk"`
	HTTP        HTTPConfig        `koanf:"http"`
	Retry       RetryConfig       `koanf:"retry"`
	ThreeDS     ThreeDSConfig     `koanf:"threeds"`
	Fingerprint FingerprintConfig `koanf:"fingerprint"`
	Logger      LoggerConfig      `koanf:"logger"`
	Server      ServerConfig      `koanf:"server"`
}

// SDKConfig is everything a checkout session needs to talk to the backend.
type SDKConfig struct {
	APIKey         string `koanf:"api_key" validate:"required"`
	Mode           string `koanf:"mode" validate:"required,oneof=production sandbox stage development"`
	Language       string `koanf:"language" validate:"required,oneof=es en"`
	DevelopmentURL string `koanf:"development_url" validate:"required,url"`
}

type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries" validate:"gte=1"`
}

type ThreeDSConfig struct {
	MaxAttempts      int           `koanf:"max_attempts" validate:"gte=1"`
	ChallengeTimeout time.Duration `koanf:"challenge_timeout" validate:"required"`
}

type FingerprintPolicy string

const (
	// FingerprintContinue proceeds with an empty device session id when fingerprinting fails.
	FingerprintContinue FingerprintPolicy = "continue"
	// FingerprintAbort fails the checkout when fingerprinting fails.
	FingerprintAbort FingerprintPolicy = "abort"
)

type FingerprintConfig struct {
	Policy FingerprintPolicy `koanf:"policy" validate:"required,oneof=continue abort"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// ServerConfig only applies to the secure-token server. The secret key never
// leaves the merchant backend.
type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	SecretAPIKey string        `koanf:"secret_api_key"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"sdk.mode":                  "sandbox",
		"sdk.language":              "es",
		"sdk.development_url":       "http://localhost:8000",
		"http.timeout":              "30s",
		"retry.base_delay":          "500ms",
		"retry.max_retries":         3,
		"threeds.max_attempts":      5,
		"threeds.challenge_timeout": "10m",
		"fingerprint.policy":        string(FingerprintContinue),
		"logger.level":              "info",
		"logger.format":             "text",
		"server.port":               "8080",
		"server.read_timeout":       "10s",
		"server.write_timeout":      "10s",
		"server.idle_timeout":       "60s",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := Validate(mainConfig); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs the struct tags of cfg through the validator.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// NewLogger builds the process logger from the configured level and format.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
