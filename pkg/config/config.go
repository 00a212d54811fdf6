package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/xnattools"
	configFileName = "config.yaml"
)

// Config is the suite-wide configuration shared by the XNAT tools.
type Config struct {
	Host     string `yaml:"host,omitempty"`     // Default XNAT host, e.g. https://xnat.example.org
	Username string `yaml:"username,omitempty"` // Default username for the host
}

// GetDefaultConfigPath returns the canonical location of the suite
// configuration file, ~/.config/xnattools/config.yaml.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}

	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// Load reads the configuration file at path. A missing file yields the zero
// configuration without error; a malformed file is reported.
func Load(path string) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

// LoadDefault loads the configuration from the canonical location.
func LoadDefault() (Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Save writes the configuration to path, creating parent directories as
// needed. An existing file is replaced.
func Save(path string, config Config) error {
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// SaveDefault writes the configuration to the canonical location.
func SaveDefault(config Config) error {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	return Save(path, config)
}
