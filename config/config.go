package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Assistant AssistantConfig
	Catalog   CatalogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds ranking engine configuration
type SearchConfig struct {
	MaxResults         int  `mapstructure:"max_results"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// AssistantConfig holds orchestrator configuration
type AssistantConfig struct {
	MinAddConfidence     float64 `mapstructure:"min_add_confidence"`
	AssumeInStockOnError bool    `mapstructure:"assume_in_stock_on_error"`
	EnableDebugLogging   bool    `mapstructure:"enable_debug_logging"`
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	Source     string `mapstructure:"source"` // "memory" or "feed"
	FeedURL    string `mapstructure:"feed_url"`
	FeedAPIKey string `mapstructure:"feed_api_key"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/groceryflow/")

	// Environment variable settings
	v.SetEnvPrefix("GROCERYFLOW")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Search defaults
	v.SetDefault("search.max_results", 50)
	v.SetDefault("search.enable_debug_logging", false)

	// Assistant defaults
	v.SetDefault("assistant.min_add_confidence", 0.0)
	v.SetDefault("assistant.assume_in_stock_on_error", true)
	v.SetDefault("assistant.enable_debug_logging", false)

	// Catalog defaults. The feed keys default to empty so viper still binds
	// their environment variables during Unmarshal.
	v.SetDefault("catalog.source", "memory")
	v.SetDefault("catalog.feed_url", "")
	v.SetDefault("catalog.feed_api_key", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.MaxResults < 1 || config.Search.MaxResults > 50 {
		return fmt.Errorf("search max_results must be between 1 and 50, got: %d", config.Search.MaxResults)
	}

	if config.Assistant.MinAddConfidence < 0 || config.Assistant.MinAddConfidence > 1 {
		return fmt.Errorf("assistant min_add_confidence must be between 0 and 1, got: %g", config.Assistant.MinAddConfidence)
	}

	if config.Catalog.Source != "memory" && config.Catalog.Source != "feed" {
		return fmt.Errorf("catalog source must be 'memory' or 'feed', got: %s", config.Catalog.Source)
	}

	if config.Catalog.Source == "feed" {
		if config.Catalog.FeedURL == "" {
			return fmt.Errorf("catalog feed URL is required when source is 'feed' (set GROCERYFLOW_CATALOG_FEED_URL)")
		}
		if config.Catalog.FeedAPIKey == "" {
			return fmt.Errorf("catalog feed API key is required when source is 'feed' (set GROCERYFLOW_CATALOG_FEED_API_KEY)")
		}
	}

	return nil
}
