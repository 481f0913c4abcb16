package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the engine's configuration directory,
// ~/.halfmove/, creating no files itself — callers decide whether to read
// or write.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".halfmove"), nil
}

// GetConfigPath returns the absolute path to the engine's TOML config file,
// ~/.halfmove/engine.toml.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "engine.toml"), nil
}
