package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains the console HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BackendConfig points at the rental REST API. The base URL is injected
// here rather than hardcoded anywhere in the client.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SessionConfig covers the static Admin User sign-in: a display name, a
// bcrypt hash of the console password, and the signed session cookie.
type SessionConfig struct {
	Secret            string `yaml:"secret"`
	ExpiryMinutes     int    `yaml:"expiry_minutes"`
	AdminName         string `yaml:"admin_name"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// UIConfig contains list and dashboard presentation settings
type UIConfig struct {
	PageSize        int `yaml:"page_size"`
	DashboardSample int `yaml:"dashboard_sample"` // rentals fetched for the recent-revenue figure
}

// SchedulerConfig contains cron schedule settings for the alert pollers
type SchedulerConfig struct {
	RefreshOverdueRentals    string `yaml:"refresh_overdue_rentals"`
	RefreshMaintenanceAlerts string `yaml:"refresh_maintenance_alerts"`
}

// Load reads configuration from a YAML file, with .env/environment
// variables taking precedence over file values.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		c.Server.Port = cast.ToInt(val)
	}
	if val := os.Getenv("BACKEND_BASE_URL"); val != "" {
		c.Backend.BaseURL = val
	}
	if val := os.Getenv("BACKEND_TIMEOUT_SECONDS"); val != "" {
		c.Backend.TimeoutSeconds = cast.ToInt(val)
	}
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Session.Secret = val
	}
	if val := os.Getenv("SESSION_EXPIRY_MINUTES"); val != "" {
		c.Session.ExpiryMinutes = cast.ToInt(val)
	}
	if val := os.Getenv("ADMIN_NAME"); val != "" {
		c.Session.AdminName = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Session.AdminPasswordHash = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 15
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Session.AdminPasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}
	if c.Session.AdminName == "" {
		c.Session.AdminName = "Admin User"
	}
	if c.Session.ExpiryMinutes <= 0 {
		c.Session.ExpiryMinutes = 480
	}

	if c.UI.PageSize <= 0 {
		c.UI.PageSize = 10
	}
	if c.UI.DashboardSample <= 0 {
		c.UI.DashboardSample = 10
	}

	if c.Scheduler.RefreshOverdueRentals == "" {
		c.Scheduler.RefreshOverdueRentals = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.RefreshMaintenanceAlerts == "" {
		c.Scheduler.RefreshMaintenanceAlerts = "0 5 * * * *" // hourly at :05
	}

	return nil
}

// GetServerAddress returns the console listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
