package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDatabasePath = "TASKMASTER_DB_PATH"
	EnvLogLevel     = "TASKMASTER_LOG_LEVEL"
	EnvDevMode      = "TASKMASTER_DEV_MODE"
	EnvEnvFile      = "TASKMASTER_ENV_FILE"
	EnvThemeFile    = "TASKMASTER_THEME_FILE"
)

// DefaultLogLevel is used when neither the file nor the environment sets one
const DefaultLogLevel = "info"

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	LogLevel     string      `yaml:"log_level"`
	DevMode      bool        `yaml:"dev_mode"`
	KeyMappings  KeyMappings `yaml:"key_mappings"`
	ColorScheme  ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// DefaultDatabasePath returns ~/.taskmaster/tasks.db
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".taskmaster", "tasks.db")
	}
	return filepath.Join(home, ".taskmaster", "tasks.db")
}

// DataDir is the directory holding the default database and the log file
func DataDir() string {
	return filepath.Dir(DefaultDatabasePath())
}

// loadThemeFile merges the theme from TASKMASTER_THEME_FILE if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory and applies dotenv and
// environment overrides. Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, readErr
		}
	}

	loadThemeFile(config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}

// applyEnv layers the dotenv file, then the real environment, over the file values
func (c *Config) applyEnv() error {
	dotenv, err := readEnvFile()
	if err != nil {
		return err
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvDatabasePath); v != "" {
		c.DatabasePath = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := lookup(EnvDevMode); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDevMode, err)
		}
		c.DevMode = enabled
	}
	return nil
}

// readEnvFile reads TASKMASTER_ENV_FILE, or taskmaster.env next to config.yaml.
// A missing default file is not an error; a missing explicit one is.
func readEnvFile() (map[string]string, error) {
	path := os.Getenv(EnvEnvFile)
	explicit := path != ""
	if !explicit {
		configPath, err := getConfigPath()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(filepath.Dir(configPath), "taskmaster.env")
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location, for display
func Path() string {
	p, err := getConfigPath()
	if err != nil {
		return ""
	}
	return p
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskmaster", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskmaster", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath()
	}
	c.DatabasePath = expandHome(c.DatabasePath)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
