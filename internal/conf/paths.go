package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigDir is the default directory name for bbvar files
	DefaultConfigDir = ".bbvar"
	// DefaultConfigName is the default variable file name
	DefaultConfigName = "vars.conf"
)

// GetConfigDir returns the bbvar configuration directory path
// Defaults to ~/.bbvar/ unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv("BBVAR_CONF_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// FindConfig finds a variable file by name
// If name is an absolute path, returns it as-is
// If name is a filename, looks in the config directory
// If name is empty, looks for the default file
func FindConfig(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("variable file not found: %s", name)
			}
			return "", fmt.Errorf("failed to stat variable file %s: %w", name, err)
		}
		return name, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = DefaultConfigName
	}

	// Add .conf extension if no recognized extension present
	if !strings.HasSuffix(name, ".conf") && !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".conf"
	}

	configPath := filepath.Join(configDir, name)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("variable file not found: %s", configPath)
		}
		return "", fmt.Errorf("failed to stat variable file %s: %w", configPath, err)
	}

	return configPath, nil
}

// ListConfigs returns all variable files in the config directory
func ListConfigs() ([]string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configDir); err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to access config directory %s: %w", configDir, err)
	}

	entries, err := os.ReadDir(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory %s: %w", configDir, err)
	}

	var configs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, ".conf") || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			configs = append(configs, filepath.Join(configDir, name))
		}
	}

	return configs, nil
}
