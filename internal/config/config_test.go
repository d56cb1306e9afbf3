package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "yaml", cfg.Storage.Format)
	require.Empty(t, cfg.Storage.Path)
	require.Equal(t, "debug.log", cfg.Log.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.UI.Plain)
	require.Nil(t, cfg.Flags)
	require.NoError(t, cfg.Validate())
}

func TestValidateStorage(t *testing.T) {
	for _, format := range []string{"", "yaml", "YML", "xml", "json", " sqlite "} {
		require.NoError(t, ValidateStorage(StorageConfig{Format: format}), format)
	}

	err := ValidateStorage(StorageConfig{Format: "csv"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage.format")
	require.Contains(t, err.Error(), `"csv"`)
}

func TestValidateLog(t *testing.T) {
	require.NoError(t, ValidateLog(LogConfig{Level: ""}))
	require.NoError(t, ValidateLog(LogConfig{Level: "warn"}))

	err := ValidateLog(LogConfig{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
}

func TestValidate_ReportsFirstError(t *testing.T) {
	cfg := Defaults()
	cfg.Storage.Format = "toml"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage.format")
}

func TestStorePath(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "recipes.yaml", cfg.StorePath())

	cfg.Storage.Format = "sqlite"
	require.Equal(t, "recipes.db", cfg.StorePath())

	dir := t.TempDir()
	cfg.Storage.Path = dir
	require.Equal(t, filepath.Join(dir, "recipes.db"), cfg.StorePath())
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	defaults := Defaults()
	require.Equal(t, defaults.Storage, cfg.Storage)
	require.Equal(t, defaults.Log, cfg.Log)
	require.Equal(t, defaults.UI, cfg.UI)
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
