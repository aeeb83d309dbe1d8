package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ulko.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
region: eu-west-1
regions:
  - eu-west-1
  - eu-north-1
output_dir: /tmp/reports
log_level: debug
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, []string{"eu-west-1", "eu-north-1"}, cfg.Regions)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `region: us-west-2`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Regions)
}

func TestLoadRejectsEmptyRegion(t *testing.T) {
	path := writeConfig(t, `region: ""`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "region is required")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
}
