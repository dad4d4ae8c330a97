package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/weddingsite/internal/pkg/sanitize"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
	} `yaml:"server"`

	// API describes the external wedding REST API every client call goes to
	API struct {
		BaseURL    string        `yaml:"base_url" env:"API_BASE_URL"`
		Timeout    time.Duration `yaml:"timeout" env:"API_TIMEOUT"`
		MaxRetries int           `yaml:"max_retries" env:"API_MAX_RETRIES"`
		RetryDelay time.Duration `yaml:"retry_delay" env:"API_RETRY_DELAY"`
	} `yaml:"api"`

	Snapshot struct {
		OutputPath string `yaml:"output_path" env:"SNAPSHOT_OUTPUT_PATH"`
	} `yaml:"snapshot"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env vars still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.API.BaseURL = "http://localhost:5000"
	config.API.Timeout = 15 * time.Second
	config.API.MaxRetries = 3
	config.API.RetryDelay = 500 * time.Millisecond

	config.Snapshot.OutputPath = "public/static-data.json"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if !sanitize.IsValidURL(config.API.BaseURL) {
		return fmt.Errorf("api base url must be an absolute http(s) url, got %q", config.API.BaseURL)
	}

	if config.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}

	if config.API.MaxRetries < 0 {
		return fmt.Errorf("api max retries cannot be negative")
	}

	if config.Snapshot.OutputPath == "" {
		return fmt.Errorf("snapshot output path is required")
	}

	return nil
}
