package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides. Keys and secrets are read
// from the environment or prompted interactively; they never live in the
// config file.
const (
	EnvHuduAPIKey          = "HUDU_API_KEY"
	EnvHuduBaseDomain      = "HUDU_BASE_DOMAIN"
	EnvAction1ClientID     = "ACTION1_CLIENT_ID"
	EnvAction1ClientSecret = "ACTION1_CLIENT_SECRET"
	EnvAction1Region       = "ACTION1_REGION"
)

// Config represents tool configuration file.
type Config struct {
	Hudu    HuduConfig    `yaml:"hudu"`
	Action1 Action1Config `yaml:"action1"`
	Export  ExportConfig  `yaml:"export"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// HuduConfig stores documentation-system settings.
type HuduConfig struct {
	BaseDomain string `yaml:"base_domain"`
}

// Action1Config stores endpoint-management settings.
type Action1Config struct {
	Region string `yaml:"region"`
}

// ExportConfig controls the CSV export.
type ExportConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// AssetsConfig controls the asset-creation run.
type AssetsConfig struct {
	LogPath string `yaml:"log_path"`
}

// LoggingConfig controls console log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Hudu:    HuduConfig{BaseDomain: "huducloud.com"},
		Action1: Action1Config{Region: "NorthAmerica"},
		Export:  ExportConfig{CSVPath: "EndpointDetails.csv"},
		Assets:  AssetsConfig{LogPath: "huduComputerAssetCreation.log"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads YAML configuration layered over defaults, then applies
// environment overrides. An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvHuduBaseDomain); v != "" {
		c.Hudu.BaseDomain = v
	}
	if v := os.Getenv(EnvAction1Region); v != "" {
		c.Action1.Region = v
	}
}
