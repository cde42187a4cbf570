// Package config handles the connection configuration: a JSON config file
// or the NOCO_URL and NOCO_TOKEN environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Environment variable names honored when no config file is given.
const (
	EnvURL   = "NOCO_URL"
	EnvToken = "NOCO_TOKEN"
)

// Config holds the connection information for a NocoDB instance.
type Config struct {
	// BaseURL is the base URL of the NocoDB API.
	BaseURL string `json:"base_url"`
	// AuthToken is the JWT authentication token.
	AuthToken string `json:"auth_token"`
}

// FromFile reads a Config from a JSON file.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// ToFile writes the Config as JSON to a file.
func (c Config) ToFile(path string) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0600)
}

// Skeleton returns a placeholder Config for a freshly initialized config
// file.
func Skeleton() Config {
	return Config{
		BaseURL:   "https://noco.example.com/nc/project/api/v1/",
		AuthToken: "A-SECRET-TOKEN",
	}
}

// Resolve determines the connection config from a config file path and the
// url/token parameters. Exactly one source must be used: either the config
// file, or both url and token (from flags or the NOCO_URL/NOCO_TOKEN
// environment).
func Resolve(configPath, baseURL, token string) (Config, error) {
	if baseURL == "" {
		baseURL = os.Getenv(EnvURL)
	}
	if token == "" {
		token = os.Getenv(EnvToken)
	}

	gotConfig := configPath != ""
	gotURL := baseURL != ""
	gotToken := token != ""

	switch {
	case gotConfig && (gotURL || gotToken):
		return Config{}, errors.New("use either a config file or the --url and --token parameters")
	case gotURL != gotToken:
		return Config{}, errors.New("if defined by parameter both --url and --token have to be set")
	case gotURL && gotToken:
		return Config{BaseURL: baseURL, AuthToken: token}, nil
	case !gotConfig:
		return Config{}, errors.New("connection information missing, use a config file or the --url and --token parameters")
	}
	return FromFile(configPath)
}
