// Package config holds ambient service configuration. Server/database
// settings use a hand-rolled env-var style (no config library needed
// for a flat set of scalars); the decision engine's own bounded
// numeric knobs live in OptimizerConfig (optimizer.go), loaded with
// viper so out-of-range values are caught at startup rather than
// silently clamped deep inside a simulation loop.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"nfl-survivor-go/logging"

	"github.com/joho/godotenv"
)

// Config holds ambient application configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Logging  LoggingConfig  `json:"logging"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `json:"port"`
	Host string `json:"host"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	Host     string        `json:"host"`
	Port     string        `json:"port"`
	Username string        `json:"username"`
	Password string        `json:"password"`
	Database string        `json:"database"`
	Timeout  time.Duration `json:"timeout"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level       string `json:"level"`
	Prefix      string `json:"prefix"`
	EnableColor bool   `json:"enable_color"`
	LogDir      string `json:"log_dir"`
	EnableFile  bool   `json:"enable_file"`
}

// AppConfig holds survivor-pool-specific application settings.
type AppConfig struct {
	CurrentSeason int  `json:"current_season"`
	IsDevelopment bool `json:"is_development"`
}

// Load loads configuration from environment variables and an optional
// .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Warnf("could not load .env file: %v", err)
	}

	environment := getEnv("ENVIRONMENT", "development")
	isDevelopment := strings.ToLower(environment) == "development"

	serverPort := getEnv("SERVER_PORT", "8080")
	if isDevelopment {
		if develPort := getEnv("DEVEL_SERVER_PORT", ""); develPort != "" {
			serverPort = develPort
		}
	}

	dbPort := getEnv("DB_PORT", "27017")
	if isDevelopment {
		if develPort := getEnv("DEVEL_DB_PORT", ""); develPort != "" {
			dbPort = develPort
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "survivor_pool"),
			Timeout:  getDurationEnv("DB_TIMEOUT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Prefix:      getEnv("LOG_PREFIX", "survivor-engine"),
			EnableColor: getBoolEnv("LOG_COLOR", true),
			LogDir:      getEnv("LOG_DIR", "./logs"),
			EnableFile:  getBoolEnv("LOG_FILE", false),
		},
		App: AppConfig{
			CurrentSeason: getIntEnv("CURRENT_SEASON", 2025),
			IsDevelopment: isDevelopment,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks required fields and sensible value ranges.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.Port == "" {
		return fmt.Errorf("database port is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.App.CurrentSeason < 2020 || c.App.CurrentSeason > 2035 {
		return fmt.Errorf("current season must be between 2020 and 2035, got: %d", c.App.CurrentSeason)
	}
	return nil
}

// GetServerAddress returns the full listen address.
func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// GetMongoURI returns the MongoDB connection URI.
func (c *Config) GetMongoURI() string {
	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=%s",
			c.Database.Username, c.Database.Password,
			c.Database.Host, c.Database.Port,
			c.Database.Database, c.Database.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", c.Database.Host, c.Database.Port, c.Database.Database)
}

// LogConfiguration logs the current configuration.
func (c *Config) LogConfiguration() {
	logging.Info("=== Application Configuration ===")
	logging.Infof("Server: %s", c.GetServerAddress())
	logging.Infof("Database: %s:%s/%s (Username: %s)", c.Database.Host, c.Database.Port, c.Database.Database, c.Database.Username)
	logging.Infof("Logging: Level=%s Prefix=%s Color=%t", c.Logging.Level, c.Logging.Prefix, c.Logging.EnableColor)
	logging.Infof("App: Season=%d Development=%t", c.App.CurrentSeason, c.App.IsDevelopment)
	logging.Info("================================")
}

// Helper functions for environment variable parsing.

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
