package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/config"
	"github.com/edgecheck/edgecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("EXTERNAL", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_FileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "host: edge.example.com\nport: 8080\ndata_path: samples\ncache: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edgecheck.yaml"), []byte(content), 0644))

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "edge.example.com", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "samples", cfg.DataPath)
	assert.False(t, cfg.Cache)
	// Untouched fields keep their defaults.
	assert.Equal(t, "resources", cfg.ResourcesPath)
	assert.False(t, cfg.External)
}

func TestLoader_EnvironmentWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edgecheck.yaml"), []byte("host: fromfile\n"), 0644))

	t.Setenv("EXTERNAL", "1")
	t.Setenv("HOST", "fromenv")
	t.Setenv("PORT", "9999")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.External)
	assert.Equal(t, "fromenv", cfg.Host)
	assert.Equal(t, 9999, cfg.Port)
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edgecheck.yaml"), []byte(":\n\t- broken"), 0644))

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
