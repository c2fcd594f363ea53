package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weather-cli/datasource"
)

const (
	DefaultBaseURL           = datasource.DefaultBaseURL
	DefaultLocation          = "Pittsburgh"
	DefaultTimeout           = datasource.DefaultTimeout
	DefaultRequestsPerSecond = 1.0
	DefaultBurst             = 2
)

// ErrMissingAPIKey is returned by Load when no API key is configured.
var ErrMissingAPIKey = errors.New("API key is required (set API_KEY or api_key in the config file)")

// Error is returned for any configuration failure.
type Error struct {
	Path string // config file involved, if any
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Config struct {
	APIKey            string  `yaml:"api_key"`
	BaseURL           string  `yaml:"base_url"`
	Location          string  `yaml:"location"`
	Timeout           string  `yaml:"timeout"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	timeout time.Duration
}

// RequestTimeout returns the parsed HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return c.timeout
}

// DefaultPath returns the config file used when CONFIG_FILE is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "weather-cli", "config.yaml")
}

// Load reads .env into the environment, then the YAML config file. Values
// the file leaves empty are taken from the environment, then defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultPath()
	}

	var cfg Config
	var loadedFrom string
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		loadedFrom = configFile
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &Error{Path: configFile, Err: fmt.Errorf("failed to parse config file: %w", err)}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// The config file is optional; the environment may carry everything.
	default:
		return nil, &Error{Path: configFile, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("WEATHER_BASE_URL")
	}
	if cfg.Location == "" {
		cfg.Location = os.Getenv("WEATHER_LOCATION")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}

	if err := cfg.validate(); err != nil {
		return nil, &Error{Path: loadedFrom, Err: err}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	c.timeout = DefaultTimeout
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
		}
		c.timeout = d
	}

	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be positive, got %v", c.RequestsPerSecond)
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	}
	return nil
}
