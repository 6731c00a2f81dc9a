package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string `yaml:"addr"`
	// SeedFile replaces the embedded catalog when set.
	SeedFile      string `yaml:"seed_file"`
	DefaultLocale string `yaml:"default_locale"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`

	// RateLimit is the number of API requests one client IP may make per
	// RateLimitWindow. Zero disables limiting.
	RateLimit       int           `yaml:"rate_limit"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Server {
	return Server{
		Addr:              ":8080",
		DefaultLocale:     "en",
		LogLevel:          "info",
		LogFormat:         "json",
		ReadHeaderTimeout: 5 * time.Second,
		RequestTimeout:    30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		RateLimit:         120,
		RateLimitWindow:   time.Minute,
	}
}

// FromEnv builds a Server config from BLOODNET_* environment variables,
// layered over the YAML file named by BLOODNET_CONFIG when present.
func FromEnv() (Server, error) {
	return Load(os.Getenv)
}

// Load resolves configuration with getenv as the environment source.
// Precedence: environment, then config file, then Defaults.
func Load(getenv func(string) string) (Server, error) {
	cfg := Defaults()

	if path := getenv("BLOODNET_CONFIG"); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Server{}, err
		}
	}

	setString(&cfg.Addr, getenv("BLOODNET_ADDR"))
	setString(&cfg.SeedFile, getenv("BLOODNET_SEED_FILE"))
	setString(&cfg.DefaultLocale, getenv("BLOODNET_LOCALE"))
	setString(&cfg.LogLevel, getenv("BLOODNET_LOG_LEVEL"))
	setString(&cfg.LogFormat, getenv("BLOODNET_LOG_FORMAT"))

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"BLOODNET_READ_HEADER_TIMEOUT", &cfg.ReadHeaderTimeout},
		{"BLOODNET_REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"BLOODNET_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
		{"BLOODNET_RATE_LIMIT_WINDOW", &cfg.RateLimitWindow},
	}
	for _, d := range durations {
		v := getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("invalid %s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	if v := getenv("BLOODNET_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Server{}, fmt.Errorf("invalid BLOODNET_RATE_LIMIT %q: want a non-negative integer", v)
		}
		cfg.RateLimit = n
	}

	return cfg, nil
}

// mergeFile overlays the non-zero fields of a YAML config file onto cfg.
func mergeFile(cfg *Server, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
