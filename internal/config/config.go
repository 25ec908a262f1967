package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds remote catalog API configuration
type CatalogConfig struct {
	BaseURL  string `mapstructure:"base_url"` // Catalog API base URL
	APIKey   string `mapstructure:"api_key"`  // RAWG API key
	PageSize int    `mapstructure:"page_size"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:  "https://api.rawg.io/api",
			PageSize: 12,
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("LUDO")
	viper.AutomaticEnv()
	// The key is usually provisioned as RAWG_API_KEY rather than via
	// the LUDO_ prefix
	viper.BindEnv("catalog.api_key", "LUDO_API_KEY", "RAWG_API_KEY")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// HasAPIKey reports whether a catalog API key is configured. Requests
// without one go out anyway and fail upstream.
func (c *Config) HasAPIKey() bool {
	return c.Catalog.APIKey != ""
}

// DataPath returns the path of the local database file.
func DataPath() string {
	return filepath.Join(defaultDataDir(), "ludo.db")
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ludo")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "ludo")
	}
}

// defaultDataDir returns the default data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "ludo")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "ludo")
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	return filepath.Join(defaultDataDir(), "ludo.log")
}
