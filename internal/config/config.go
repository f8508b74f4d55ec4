// Package config provides configuration management for the diary server
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files, environment variable overrides
// with the DIARY_ prefix, defaults and validation. It manages server binding,
// UI defaults (theme, pagination), the mock data fixture and development
// options such as hot reload.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/logging"
)

// Default values applied by Load when a key is not set.
const (
	DefaultHost      = "localhost"
	DefaultPort      = 8080
	DefaultTheme     = "light"
	DefaultPageSize  = 12
	DefaultPageRange = 5
	DefaultOwner     = "민지"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	UI          UIConfig          `mapstructure:"ui" yaml:"ui"`
	Data        DataConfig        `mapstructure:"data" yaml:"data"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" yaml:"port"`
	Host           string   `mapstructure:"host" yaml:"host"`
	Environment    string   `mapstructure:"environment" yaml:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// UIConfig holds rendering defaults shared by every page.
type UIConfig struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	PageSize  int    `mapstructure:"page_size" yaml:"page_size"`
	PageRange int    `mapstructure:"page_range" yaml:"page_range"`
	Owner     string `mapstructure:"owner" yaml:"owner"`

	// DarkModeToggle shows the header theme switch on every route.
	DarkModeToggle bool `mapstructure:"dark_mode_toggle" yaml:"dark_mode_toggle"`
}

// DataConfig points at the mock data fixture. An empty path uses the embedded one.
type DataConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type DevelopmentConfig struct {
	HotReload bool `mapstructure:"hot_reload" yaml:"hot_reload"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns a fully populated configuration without consulting viper.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        DefaultPort,
			Host:        DefaultHost,
			Environment: "development",
		},
		UI: UIConfig{
			Theme:     DefaultTheme,
			PageSize:  DefaultPageSize,
			PageRange: DefaultPageRange,
			Owner:     DefaultOwner,
		},
		Development: DevelopmentConfig{HotReload: false},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "decode configuration")
	}

	defaults := Default()

	if config.Server.Port == 0 && !viper.IsSet("server.port") {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.Host == "" {
		config.Server.Host = defaults.Server.Host
	}
	if config.Server.Environment == "" {
		config.Server.Environment = defaults.Server.Environment
	}

	// Handle allowed origins set via env (workaround for viper slice handling)
	if viper.IsSet("server.allowed_origins") && len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")
	}

	if config.UI.Theme == "" {
		config.UI.Theme = defaults.UI.Theme
	}
	if !viper.IsSet("ui.page_size") {
		config.UI.PageSize = defaults.UI.PageSize
	}
	if !viper.IsSet("ui.page_range") {
		config.UI.PageRange = defaults.UI.PageRange
	}
	if viper.IsSet("ui.dark_mode_toggle") {
		config.UI.DarkModeToggle = viper.GetBool("ui.dark_mode_toggle")
	}
	if config.UI.Owner == "" {
		config.UI.Owner = defaults.UI.Owner
	}

	// Handle development settings set via viper (workaround for viper bool handling)
	if viper.IsSet("development.hot_reload") {
		config.Development.HotReload = viper.GetBool("development.hot_reload")
	}

	// The persistent --log-level flag is bound at the top level.
	if level := viper.GetString("log-level"); level != "" && !viper.IsSet("log.level") {
		config.Log.Level = level
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}

	if err := validateConfig(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid configuration")
	}

	return &config, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoggerConfig converts the log section into a logger configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.Log.Format
	return cfg
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := validateUIConfig(&config.UI); err != nil {
		return fmt.Errorf("ui config: %w", err)
	}

	if config.Data.Path != "" {
		if err := validatePath(config.Data.Path); err != nil {
			return fmt.Errorf("data config: invalid path '%s': %w", config.Data.Path, err)
		}
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("log config: format must be text or json, got %q", config.Log.Format)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
	for _, char := range dangerousChars {
		if strings.Contains(config.Host, char) {
			return fmt.Errorf("host contains dangerous character: %s", char)
		}
	}

	switch config.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("environment must be development or production, got %q", config.Environment)
	}

	return nil
}

func validateUIConfig(config *UIConfig) error {
	if config.Theme != "light" && config.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", config.Theme)
	}
	if config.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", config.PageSize)
	}
	if config.PageRange <= 0 {
		return fmt.Errorf("page_range must be positive, got %d", config.PageRange)
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
