// Package config loads server and CLI settings from the environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	// Embedded zone database so the business timezone resolves in distroless images.
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// DefaultPort avoids clashing with other local services on 8080.
const DefaultPort = "8111"

// Config holds every runtime setting.
type Config struct {
	Port               string   `mapstructure:"port"`
	Env                string   `mapstructure:"env"`
	UseMemoryStore     bool     `mapstructure:"use_memory_store"`
	SkipAuth           bool     `mapstructure:"skip_auth"`
	ProjectID          string   `mapstructure:"google_cloud_project"`
	BusinessTimezone   string   `mapstructure:"business_timezone"`
	PubSubSubscription string   `mapstructure:"pubsub_subscription"`
	LogLevel           string   `mapstructure:"log_level"`
	LogFormat          string   `mapstructure:"log_format"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	ExportBucket       string   `mapstructure:"export_bucket"`
	// PushAudience enables OIDC verification of /events/firestore deliveries.
	PushAudience       string   `mapstructure:"push_audience"`
}

var defaults = map[string]interface{}{
	"port":                 DefaultPort,
	"env":                  "production",
	"use_memory_store":     false,
	"skip_auth":            false,
	"google_cloud_project": "",
	"business_timezone":    "America/Sao_Paulo",
	"pubsub_subscription":  "",
	"log_level":            "info",
	"log_format":           "json",
	"allowed_origins":      []string{"http://localhost:1234", "http://127.0.0.1:1234"},
	"export_bucket":        "",
	"push_audience":        "",
}

// Load reads configuration from environment variables (PORT, ENV, USE_MEMORY_STORE, ...)
// layered over an optional config file. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Env == "local" {
		cfg.UseMemoryStore = true
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Local reports whether the process runs against local, unauthenticated infrastructure.
func (c *Config) Local() bool {
	return c.UseMemoryStore
}

// Location resolves the business timezone used for day and window boundaries.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid business timezone %q: %w", c.BusinessTimezone, err)
	}
	return loc, nil
}
