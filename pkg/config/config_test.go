package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "huducloud.com", cfg.Hudu.BaseDomain)
	require.Equal(t, "NorthAmerica", cfg.Action1.Region)
	require.Equal(t, "EndpointDetails.csv", cfg.Export.CSVPath)
	require.Equal(t, "huduComputerAssetCreation.log", cfg.Assets.LogPath)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hudubridge.yaml")
	data := []byte("hudu:\n  base_domain: docs.example.net\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "docs.example.net", cfg.Hudu.BaseDomain)
	require.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep their defaults
	require.Equal(t, "NorthAmerica", cfg.Action1.Region)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvHuduBaseDomain, "env.example.net")
	t.Setenv(EnvAction1Region, "Europe")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "env.example.net", cfg.Hudu.BaseDomain)
	require.Equal(t, "Europe", cfg.Action1.Region)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
