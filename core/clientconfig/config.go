package clientconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// configFileName is the well-known config file under the user config dir.
const configFileName = "config.yaml"

// Config holds the client's connection settings. Environment variables
// override the config file, which overrides the defaults.
type Config struct {
	// BaseURL points at the API root.
	BaseURL string `env:"DATAFORGE_API_URL"`
	// Timeout bounds ordinary API calls.
	Timeout time.Duration `env:"DATAFORGE_TIMEOUT"`
	// UploadTimeout bounds upload calls, which include synchronous
	// server-side report generation.
	UploadTimeout time.Duration `env:"DATAFORGE_UPLOAD_TIMEOUT"`
	// TokenPath overrides the default token store location.
	TokenPath string `env:"DATAFORGE_TOKEN_PATH"`
	// LogLevel sets the logger verbosity (debug, info, warn, error).
	LogLevel string `env:"DATAFORGE_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:       "http://localhost:5000",
		Timeout:       30 * time.Second,
		UploadTimeout: 60 * time.Second,
		LogLevel:      "info",
	}
}

// DefaultPath returns the default config file location,
// e.g. ~/.config/dataforge/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "dataforge", configFileName), nil
}

// Load resolves the configuration from defaults, the config file at path (or
// the default location when path is empty), and the environment. A missing
// config file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	// Side effect only: populate the process env from .env when present.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	if err := applyFile(&cfg, path); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// fileConfig is the YAML layer. Durations are given as strings ("45s", "2m")
// and parsed on apply.
type fileConfig struct {
	APIURL        string `yaml:"api_url"`
	Timeout       string `yaml:"timeout"`
	UploadTimeout string `yaml:"upload_timeout"`
	TokenPath     string `yaml:"token_path"`
	LogLevel      string `yaml:"log_level"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.APIURL != "" {
		cfg.BaseURL = fc.APIURL
	}
	if fc.TokenPath != "" {
		cfg.TokenPath = fc.TokenPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in %s: %w", path, err)
		}
		cfg.Timeout = d
	}
	if fc.UploadTimeout != "" {
		d, err := time.ParseDuration(fc.UploadTimeout)
		if err != nil {
			return fmt.Errorf("invalid upload_timeout in %s: %w", path, err)
		}
		cfg.UploadTimeout = d
	}
	return nil
}
