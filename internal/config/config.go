package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir      = ".taskboard"
	configFileName = "config.json"
)

// Config holds CLI-side settings. The auth token lives in the keyring, not
// here.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	Username   string `json:"username"`
}

// DefaultBaseURL is used when no base URL has been configured.
const DefaultBaseURL = "http://localhost:8080"

// GetConfigPath returns the path to the config file (~/.taskboard/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// LoadConfig loads the CLI config, returning defaults when none exists yet.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{APIBaseURL: DefaultBaseURL}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultBaseURL
	}
	return &cfg, nil
}

// SaveConfig writes the CLI config, creating ~/.taskboard if needed.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
