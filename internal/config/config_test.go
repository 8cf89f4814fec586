package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.Equal(t, 1, cfg.Version)
	require.Equal(t, "https://api.giphy.com", cfg.BaseURL)
	require.Equal(t, 24, cfg.Limit)
	require.Equal(t, "g", cfg.Rating)
	require.Equal(t, "en", cfg.Lang)
	require.Empty(t, cfg.APIKey)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.APIKey = "file-key"
	cfg.Rating = "pg-13"
	cfg.Lang = "de"
	cfg.UISettings.ShowDimensions = false

	require.NoError(t, svc.SaveToPath(cfg, path))

	t.Setenv(APIKeyEnvVar, "")
	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "file-key", loaded.APIKey)
	require.Equal(t, "pg-13", loaded.Rating)
	require.Equal(t, "de", loaded.Lang)
	require.False(t, loaded.UISettings.ShowDimensions)
}

func TestLoadFromPathFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\nrating = \"bogus\"\n"), 0600))

	t.Setenv(APIKeyEnvVar, "")
	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.giphy.com", cfg.BaseURL)
	require.Equal(t, 24, cfg.Limit)
	require.Equal(t, "en", cfg.Lang)
	require.Equal(t, "g", cfg.Rating, "unknown ratings fall back to g")
}

func TestEnvOverridesAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.APIKey = "file-key"
	require.NoError(t, svc.SaveToPath(cfg, path))

	t.Setenv(APIKeyEnvVar, "env-key")
	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "env-key", loaded.APIKey)
}

func TestLoadFromPathBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0600))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestSaveToPathCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	svc := NewConfigService()
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
