package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Logging    LoggingConfig              `mapstructure:"logging"`
	Simulation SimulationConfig           `mapstructure:"simulation"`
	Economy    EconomyConfig              `mapstructure:"economy"`
	Neighbours map[string]NeighbourConfig `mapstructure:"neighbours"`
}

// SimulationConfig holds simulation run settings
type SimulationConfig struct {
	// Seed for the random source. Zero means seed from the current time,
	// giving a different sequence every run.
	Seed int64 `mapstructure:"seed"`

	// Verbose enables the line-by-line monthly report
	Verbose bool `mapstructure:"verbose"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/realm-economy")
	}

	// Enable environment variable reading
	v.SetEnvPrefix("REALM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if present; defaults cover a missing file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
