package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Validate when no Last.fm API key is set.
var ErrMissingAPIKey = errors.New("LASTFM_API_KEY is not set")

// Config holds application configuration
type Config struct {
	// Last.fm user whose recommendations are fetched
	// Default: "sebnow"
	User string

	// Fixed output width in display columns (0 = disabled)
	OutputWidth int

	// Timeout for each HTTP request
	HTTPTimeout time.Duration

	// Directory holding the history database
	DataDir string

	// Last.fm API credentials
	LastFM LastFMConfig
}

// LastFMConfig holds Last.fm specific configuration
type LastFMConfig struct {
	APIKey string
}

// HistoryDB returns the path of the recommendation history database
func (c *Config) HistoryDB() string {
	return filepath.Join(c.DataDir, "history.db")
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.LastFM.APIKey == "" {
		return fmt.Errorf("%w: export it or set lastfm.api_key in %s",
			ErrMissingAPIKey, filepath.Join(GetConfigDir(), "config.yaml"))
	}
	return nil
}

// Load reads configuration from .env, the config file and environment
func Load() (*Config, error) {
	// A .env file in the working directory is optional
	_ = godotenv.Load()

	return load(getConfigDir())
}

func load(configDir string) (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("user", "sebnow")
	v.SetDefault("output_width", 0)
	v.SetDefault("http_timeout", 10)
	v.SetDefault("data_dir", getDataDir())

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("PLAYLIE")
	v.AutomaticEnv()

	// LASTFM_API_KEY is the conventional name; PLAYLIE_LASTFM_API_KEY also works
	if err := v.BindEnv("lastfm.api_key", "LASTFM_API_KEY", "PLAYLIE_LASTFM_API_KEY"); err != nil {
		return nil, err
	}

	// Map config to struct
	cfg := &Config{
		User:        v.GetString("user"),
		OutputWidth: v.GetInt("output_width"),
		HTTPTimeout: time.Duration(v.GetInt("http_timeout")) * time.Second,
		DataDir:     v.GetString("data_dir"),
		LastFM: LastFMConfig{
			APIKey: v.GetString("lastfm.api_key"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "playlie")
}

// getDataDir returns the default data directory path
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".local", "share", "playlie")
}

// GetConfigDir returns the directory searched for config.yaml
func GetConfigDir() string {
	return getConfigDir()
}
