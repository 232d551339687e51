package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mailcheck/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mailcheck"

// Output format values for the output_format key.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Color mode values for the color key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version      int    `mapstructure:"version" yaml:"version"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	Color        string `mapstructure:"color" yaml:"color"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version:      1,
		OutputFormat: OutputText,
		Color:        ColorAuto,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MAILCHECK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("output_format", OutputText)
	viper.SetDefault("color", ColorAuto)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
