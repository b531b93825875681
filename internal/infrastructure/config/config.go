// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	port := cfg.Server.Port
//	maxLeads := cfg.Commission.MaxLeadGenerators
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Roster sources
const (
	RosterSourceBuiltin = "builtin"
	RosterSourceFile    = "file"
	RosterSourceSQLite  = "sqlite"
)

// Config represents the entire application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Commission    CommissionConfig    `yaml:"commission"`
	Roster        RosterConfig        `yaml:"roster"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// CommissionConfig holds calculation settings. Rates are fixed and not configurable.
type CommissionConfig struct {
	MaxLeadGenerators int `yaml:"max_lead_generators"`
}

// RosterConfig selects where the sales roster comes from
type RosterConfig struct {
	Source       string `yaml:"source"`        // builtin, file, sqlite
	Path         string `yaml:"path"`          // YAML roster file for source=file
	DatabasePath string `yaml:"database_path"` // SQLite database for source=sqlite
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when nothing else is specified
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Commission: CommissionConfig{
			MaxLeadGenerators: 10,
		},
		Roster: RosterConfig{
			Source:       RosterSourceBuiltin,
			DatabasePath: "komisi.db",
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
			Metrics: MetricsConfig{
				Enabled:   true,
				Namespace: "komisi",
			},
		},
	}
}

// Load reads and parses the config file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${KOMISI_PORT})
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	def := Default()
	return &Config{
		Server: ServerConfig{
			Port:           getEnvInt("KOMISI_PORT", def.Server.Port),
			AllowedOrigins: getEnvList("KOMISI_ALLOWED_ORIGINS", def.Server.AllowedOrigins),
		},
		Commission: CommissionConfig{
			MaxLeadGenerators: getEnvInt("KOMISI_MAX_LEAD_GENERATORS", def.Commission.MaxLeadGenerators),
		},
		Roster: RosterConfig{
			Source:       getEnv("KOMISI_ROSTER_SOURCE", def.Roster.Source),
			Path:         getEnv("KOMISI_ROSTER_PATH", ""),
			DatabasePath: getEnv("KOMISI_DB_PATH", def.Roster.DatabasePath),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", def.Observability.Logging.Level),
				Format: getEnv("LOG_FORMAT", def.Observability.Logging.Format),
			},
			Metrics: MetricsConfig{
				Enabled:   getEnv("KOMISI_METRICS_ENABLED", "true") != "false",
				Namespace: getEnv("KOMISI_METRICS_NAMESPACE", def.Observability.Metrics.Namespace),
			},
		},
	}
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnv_WithPath("config.yaml")
}

// LoadOrEnv_WithPath tries to load from specified path, falls back to environment variables
func LoadOrEnv_WithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Commission.MaxLeadGenerators <= 0 {
		return fmt.Errorf("commission.max_lead_generators must be positive, got %d", c.Commission.MaxLeadGenerators)
	}

	switch c.Roster.Source {
	case RosterSourceBuiltin:
	case RosterSourceFile:
		if c.Roster.Path == "" {
			return fmt.Errorf("roster.path is required when roster.source is %q", RosterSourceFile)
		}
	case RosterSourceSQLite:
		if c.Roster.DatabasePath == "" {
			return fmt.Errorf("roster.database_path is required when roster.source is %q", RosterSourceSQLite)
		}
	default:
		return fmt.Errorf("unknown roster.source %q", c.Roster.Source)
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var result int
		if _, err := fmt.Sscanf(val, "%d", &result); err == nil {
			return result
		}
	}
	return fallback
}

// getEnvList splits a comma-separated environment variable
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
