package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

// ServiceConfig is one remote endpoint. A family with neither value is
// disabled; a family with exactly one fails validation.
type ServiceConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// Config contains runtime configuration for arrstack-mcp.
type Config struct {
	ServerName                 string                   `yaml:"server_name"`
	DBPath                     string                   `yaml:"db_path"`
	LogLevel                   string                   `yaml:"log_level"`
	HealthCheckIntervalSeconds int                      `yaml:"health_check_interval_seconds"`
	Services                   map[string]ServiceConfig `yaml:"services"`
}

// Default returns a Config populated with safe defaults. No services are
// configured by default; families come from the config file or environment.
func Default() Config {
	return Config{
		ServerName:                 "arrstack-mcp",
		DBPath:                     filepath.Join(userHomeDir(), ".arrstack-mcp", "activity.db"),
		LogLevel:                   "info",
		HealthCheckIntervalSeconds: 0,
		Services:                   map[string]ServiceConfig{},
	}
}

// Load loads config from disk, then applies environment overrides
// ({FAMILY}_URL / {FAMILY}_API_KEY). If path does not exist, defaults plus
// environment are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if cfg.Services == nil {
		cfg.Services = map[string]ServiceConfig{}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays per-family environment variables on top of whatever the
// file provided. Environment wins; it is the original configuration surface
// for this system.
func (c *Config) applyEnv() {
	for _, service := range arr.Services() {
		prefix := strings.ToUpper(string(service))
		sc := c.Services[string(service)]
		if v := os.Getenv(prefix + "_URL"); v != "" {
			sc.URL = v
		}
		if v := os.Getenv(prefix + "_API_KEY"); v != "" {
			sc.APIKey = v
		}
		if sc.URL != "" || sc.APIKey != "" {
			c.Services[string(service)] = sc
		}
	}
}

// Validate checks configuration sanity.
func (c *Config) Validate() error {
	if c.ServerName == "" {
		return errors.New("server_name must not be empty")
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.HealthCheckIntervalSeconds < 0 {
		return errors.New("health_check_interval_seconds must be >= 0")
	}
	for name, sc := range c.Services {
		if !knownService(name) {
			return fmt.Errorf("unknown service %q in config", name)
		}
		hasURL := strings.TrimSpace(sc.URL) != ""
		hasKey := strings.TrimSpace(sc.APIKey) != ""
		if hasURL != hasKey {
			return fmt.Errorf("service %s needs both url and api_key (or neither)", name)
		}
	}
	return nil
}

// Endpoints returns the fully configured families. Families with neither
// value are absent, which is not an error: they are simply disabled.
func (c *Config) Endpoints() map[arr.Service]arr.Endpoint {
	out := make(map[arr.Service]arr.Endpoint, len(c.Services))
	for name, sc := range c.Services {
		if strings.TrimSpace(sc.URL) == "" || strings.TrimSpace(sc.APIKey) == "" {
			continue
		}
		out[arr.Service(name)] = arr.Endpoint{URL: sc.URL, APIKey: sc.APIKey}
	}
	return out
}

func knownService(name string) bool {
	for _, s := range arr.Services() {
		if string(s) == name {
			return true
		}
	}
	return false
}

// EnsurePaths creates parent directories for config-managed paths.
func (c *Config) EnsurePaths() error {
	c.DBPath = ExpandPath(c.DBPath)
	parent := filepath.Dir(c.DBPath)
	if parent == "." {
		return nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create db parent dir: %w", err)
	}
	return nil
}

// ExpandPath expands "~/" to the current user's home directory.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	if p == "~" {
		return userHomeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(userHomeDir(), p[2:])
	}
	return p
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
