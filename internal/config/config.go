// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration loadable from a JSON file. All fields are
// optional; missing values fall back to environment variables or defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (enables auth)

	// Upstream APIs
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	YouTubeAPIKey string `json:"youtube_api_key,omitempty"`

	// Client
	ServerURL string `json:"server_url,omitempty"` // Base URL the CLI content commands talk to
	PrefsDir  string `json:"prefs_dir,omitempty"`  // Directory holding the questionnaire file
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		ServerURL:     os.Getenv("SKILLGENIE_SERVER_URL"),
		PrefsDir:      os.Getenv("SKILLGENIE_PREFS_DIR"),
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.PrefsDir != "" {
		if info, err := os.Stat(c.PrefsDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'prefs_dir' is not a directory: %s", c.PrefsDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. File values win over defaults; defaults typically come from env.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.YouTubeAPIKey == "" {
		result.YouTubeAPIKey = defaults.YouTubeAPIKey
	}
	if result.ServerURL == "" {
		result.ServerURL = defaults.ServerURL
	}
	if result.PrefsDir == "" {
		result.PrefsDir = defaults.PrefsDir
	}
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	return result
}
