// Package config provides engine tuning configuration and persistence.
//
// Configuration is stored in ~/.halfmove/engine.toml: one TOML file under
// a dotfile directory, loaded with BurntSushi/toml.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultHashSizeMB is the default transposition table size.
const DefaultHashSizeMB = 64

// DefaultMaxDepth is the default ceiling on iterative deepening, well
// beyond what any practical time control reaches.
const DefaultMaxDepth = 64

// DefaultMoveOverheadMillis is subtracted from the time budget to leave
// headroom for UCI round-trip and process scheduling latency.
const DefaultMoveOverheadMillis = 30

// Config holds engine tuning options.
type Config struct {
	// HashSizeMB sizes the transposition table, in megabytes.
	HashSizeMB int
	// MaxDepth caps iterative deepening regardless of remaining time.
	MaxDepth int
	// MoveOverheadMillis is reserved off every time budget calculation.
	MoveOverheadMillis int
}

// DefaultConfig returns a Config with sensible defaults for an engine with
// no user configuration on disk.
func DefaultConfig() Config {
	return Config{
		HashSizeMB:         DefaultHashSizeMB,
		MaxDepth:           DefaultMaxDepth,
		MoveOverheadMillis: DefaultMoveOverheadMillis,
	}
}

// configFile is the TOML-serializable shape of Config, kept separate so
// the in-memory Config can evolve without breaking the on-disk format.
type configFile struct {
	Engine struct {
		HashSizeMB         int `toml:"hash_size_mb"`
		MaxDepth           int `toml:"max_depth"`
		MoveOverheadMillis int `toml:"move_overhead_millis"`
	} `toml:"engine"`
}

func configFileToConfig(cf configFile) Config {
	c := DefaultConfig()
	if cf.Engine.HashSizeMB > 0 {
		c.HashSizeMB = cf.Engine.HashSizeMB
	}
	if cf.Engine.MaxDepth > 0 {
		c.MaxDepth = cf.Engine.MaxDepth
	}
	if cf.Engine.MoveOverheadMillis > 0 {
		c.MoveOverheadMillis = cf.Engine.MoveOverheadMillis
	}
	return c
}

func configToConfigFile(c Config) configFile {
	var cf configFile
	cf.Engine.HashSizeMB = c.HashSizeMB
	cf.Engine.MaxDepth = c.MaxDepth
	cf.Engine.MoveOverheadMillis = c.MoveOverheadMillis
	return cf
}

// LoadConfig reads ~/.halfmove/engine.toml. It never returns an error:
// a missing or unparsable file yields DefaultConfig, matching how a UCI
// engine should start up usable even when misconfigured.
func LoadConfig() Config {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig()
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cf configFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return DefaultConfig()
	}
	return configFileToConfig(cf)
}

// SaveConfig writes config to ~/.halfmove/engine.toml, creating the
// directory if needed.
func SaveConfig(c Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(configToConfigFile(c)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}
	return nil
}
