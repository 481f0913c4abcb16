package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithMissingFile(t *testing.T) {
	configPath, err := GetConfigPath()
	require.NoError(t, err)

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		require.NoError(t, os.Rename(configPath, backupPath))
		defer os.Rename(backupPath, configPath)
	}

	require.Equal(t, DefaultConfig(), LoadConfig())
}

func TestSaveAndLoadConfig(t *testing.T) {
	configPath, err := GetConfigPath()
	require.NoError(t, err)

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		require.NoError(t, os.Rename(configPath, backupPath))
		defer os.Rename(backupPath, configPath)
	} else {
		defer os.Remove(configPath)
	}

	custom := Config{HashSizeMB: 256, MaxDepth: 12, MoveOverheadMillis: 50}
	require.NoError(t, SaveConfig(custom))
	require.Equal(t, custom, LoadConfig())
}

func TestSaveConfigCreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	require.NoError(t, err)

	require.NoError(t, SaveConfig(DefaultConfig()))

	_, err = os.Stat(configDir)
	require.NoError(t, err, "SaveConfig did not create the config directory")
}

func TestConfigFileToConfigFillsZeroFieldsWithDefaults(t *testing.T) {
	cf := configFile{}
	cf.Engine.HashSizeMB = 128
	// MaxDepth and MoveOverheadMillis left at zero, should fall back to defaults.

	want := DefaultConfig()
	want.HashSizeMB = 128

	require.Equal(t, want, configFileToConfig(cf))
}

func TestConfigToConfigFileRoundtrip(t *testing.T) {
	c := Config{HashSizeMB: 512, MaxDepth: 20, MoveOverheadMillis: 100}
	require.Equal(t, c, configFileToConfig(configToConfigFile(c)))
}

func TestDefaultConfigValues(t *testing.T) {
	want := Config{
		HashSizeMB:         DefaultHashSizeMB,
		MaxDepth:           DefaultMaxDepth,
		MoveOverheadMillis: DefaultMoveOverheadMillis,
	}
	require.Equal(t, want, DefaultConfig())
}
