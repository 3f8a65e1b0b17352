package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrMissingCredentials is returned when the page id or access token is not configured
var ErrMissingCredentials = errors.New("page id and access token are required")

// Config holds all configuration for the application
type Config struct {
	// Graph API settings
	GraphURL    string
	APIVersion  string
	PageID      string
	AccessToken string
	Timeout     time.Duration

	// Output settings
	MessageWidth int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	EnvFile      string
	ConfigFile   string
	Filter       string
	Table        bool
	Progress     bool
	OpenFailures bool
	Verbose      bool
	Quiet        bool
	LogJSON      bool
}

// fileConfig is the TOML shape accepted by --config
type fileConfig struct {
	Graph struct {
		URL         string `toml:"url"`
		Version     string `toml:"version"`
		PageID      string `toml:"page_id"`
		AccessToken string `toml:"access_token"`
		Timeout     string `toml:"timeout"`
	} `toml:"graph"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		GraphURL:     DefaultGraphURL,
		APIVersion:   DefaultAPIVersion,
		Timeout:      DefaultTimeout,
		MessageWidth: DefaultMessageWidth,
		Flags:        Flags{EnvFile: DefaultEnvFile},
	}
}

// Load creates a config and applies, in order, the env file, the process
// environment and the optional TOML file named by the flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		// A missing default .env is fine, an explicitly requested one is not
		if flags.EnvFile != "" && flags.EnvFile != DefaultEnvFile {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if flags.ConfigFile != "" {
		if err := cfg.applyFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}

	cfg.GraphURL = strings.TrimRight(cfg.GraphURL, "/")
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPageID); v != "" {
		c.PageID = v
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		c.AccessToken = v
	}
	if v := os.Getenv(EnvAPIVersion); v != "" {
		c.APIVersion = v
	}
	if v := os.Getenv(EnvGraphURL); v != "" {
		c.GraphURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	g := fc.Graph
	if g.URL != "" {
		c.GraphURL = g.URL
	}
	if g.Version != "" {
		c.APIVersion = g.Version
	}
	if g.PageID != "" {
		c.PageID = g.PageID
	}
	if g.AccessToken != "" {
		c.AccessToken = g.AccessToken
	}
	if g.Timeout != "" {
		d, err := time.ParseDuration(g.Timeout)
		if err != nil {
			return fmt.Errorf("parse graph.timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks that the Graph manager can be built from this config
func (c *Config) Validate() error {
	if c.PageID == "" || c.AccessToken == "" {
		return fmt.Errorf("%w (set %s and %s)", ErrMissingCredentials, EnvPageID, EnvAccessToken)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// GetBaseURL returns the versioned Graph API root, e.g. https://graph.facebook.com/v19.0
func (c *Config) GetBaseURL() string {
	return c.GraphURL + "/" + strings.Trim(c.APIVersion, "/")
}
