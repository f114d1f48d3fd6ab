// Package config holds the hepsync runtime configuration. Everything has a
// working default so the tool runs without any config file at all; a YAML
// file or environment variables override the defaults when present.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Docker  DockerConfig  `yaml:"docker" json:"docker"`
	Calico  CalicoConfig  `yaml:"calico" json:"calico"`
	Labels  LabelsConfig  `yaml:"labels" json:"labels"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DockerConfig controls how the Docker daemon is reached.
type DockerConfig struct {
	// Endpoint is the Docker daemon address. Empty means "use the standard
	// DOCKER_HOST environment resolution".
	Endpoint string `yaml:"endpoint" json:"endpoint"`
}

// CalicoConfig controls how manifests are submitted to calicoctl.
type CalicoConfig struct {
	// ComposeDir is the directory holding the Calico docker-compose stack
	// that provides the calicoctl service.
	ComposeDir string `yaml:"compose_dir" json:"compose_dir"`
	// Service is the compose service name to run calicoctl through.
	Service string `yaml:"service" json:"service"`
	// AllowVersionMismatch passes --allow-version-mismatch on live applies.
	AllowVersionMismatch bool `yaml:"allow_version_mismatch" json:"allow_version_mismatch"`
}

// LabelsConfig names the Docker network label keys hepsync recognizes.
type LabelsConfig struct {
	App   string `yaml:"app" json:"app"`
	AppID string `yaml:"app_id" json:"app_id"`
	Role  string `yaml:"role" json:"role"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

var DefaultConfig = Config{
	Version: "1.0",
	Docker: DockerConfig{
		Endpoint: "",
	},
	Calico: CalicoConfig{
		ComposeDir:           "/etc/manifests/docker-compose/system/calico",
		Service:              "calicoctl",
		AllowVersionMismatch: true,
	},
	Labels: LabelsConfig{
		App:   "netpol.app",
		AppID: "netpol.app-id",
		Role:  "netpol.role",
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Format: "text",
	},
}

// LoadConfig loads the configuration from configPath, or from the first
// config file found in the standard locations when configPath is empty,
// then applies environment overrides. Returns the config, the path it was
// loaded from, and any error.
func LoadConfig(configPath string) (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config, configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	if val := os.Getenv("HEPSYNC_DOCKER_ENDPOINT"); val != "" {
		config.Docker.Endpoint = val
	}
	if val := os.Getenv("HEPSYNC_CALICO_COMPOSE_DIR"); val != "" {
		config.Calico.ComposeDir = val
	}
	if val := os.Getenv("HEPSYNC_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("HEPSYNC_LOG_FORMAT"); val != "" {
		config.Logging.Format = val
	}

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

func loadFromFile(config *Config, explicitPath string) (string, error) {
	// An explicitly requested file must exist; the search locations are
	// all optional.
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); os.IsNotExist(err) {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}

		data, err := os.ReadFile(explicitPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", explicitPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	configPaths := []string{
		os.Getenv("HEPSYNC_CONFIG_PATH"),
		"./hepsync-config.yml",
		"/etc/hepsync/hepsync-config.yml",
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

// Validate checks the configuration for values the pipeline cannot work
// with. It returns an error describing the first problem found.
func (c *Config) Validate() error {
	if c.Calico.ComposeDir == "" {
		return fmt.Errorf("calico.compose_dir cannot be empty")
	}
	if c.Calico.Service == "" {
		return fmt.Errorf("calico.service cannot be empty")
	}
	if c.Labels.App == "" || c.Labels.AppID == "" || c.Labels.Role == "" {
		return fmt.Errorf("label keys cannot be empty")
	}

	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}
