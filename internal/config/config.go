// Package config loads the service configuration from YAML files by environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the resumedex API configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Database   DatabaseConfig   `yaml:"database"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Auth       AuthConfig       `yaml:"auth"`
	Storage    StorageConfig    `yaml:"storage"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ExtractionConfig holds document extraction service settings.
type ExtractionConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSec  int    `yaml:"timeout_sec"`
	CacheTTLSec int    `yaml:"cache_ttl_sec"`
}

// PatternConfig is a single tagging pattern.
type PatternConfig struct {
	Label  string `yaml:"label"`
	Phrase string `yaml:"phrase"`
}

// PipelineConfig holds analysis pipeline settings.
type PipelineConfig struct {
	Workers         int             `yaml:"workers"` // 0 = NumCPU
	MaxBatchSize    int             `yaml:"max_batch_size"`
	DefaultPageSize int             `yaml:"default_page_size"`
	Patterns        []PatternConfig `yaml:"patterns"` // empty = built-in defaults
	Months          []string        `yaml:"months"`   // empty = built-in defaults
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Extraction.TimeoutSec <= 0 {
		c.Extraction.TimeoutSec = 60
	}
	if c.Extraction.CacheTTLSec <= 0 {
		c.Extraction.CacheTTLSec = 86400
	}
	if c.Pipeline.MaxBatchSize <= 0 {
		c.Pipeline.MaxBatchSize = 100
	}
	if c.Pipeline.DefaultPageSize <= 0 {
		c.Pipeline.DefaultPageSize = 20
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "resumedex:"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must not be negative, got %d", c.Pipeline.Workers)
	}
	for i, p := range c.Pipeline.Patterns {
		if p.Phrase == "" {
			return fmt.Errorf("pipeline.patterns[%d].phrase is required", i)
		}
		switch p.Label {
		case "SKILL", "DEGREE":
			// ok
		default:
			return fmt.Errorf(
				"pipeline.patterns[%d].label must be \"SKILL\" or \"DEGREE\", got %q", i, p.Label,
			)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
