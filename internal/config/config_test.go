package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Contains(t, cfg.Map.BasemapURL, "world.geojson")
	assert.Equal(t, "gemini-2.5-flash", cfg.GenAI.Model)
	assert.False(t, cfg.Session.Enabled)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Map.BasemapURL, cfg.Map.BasemapURL)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estuatlas.toml")
	body := `
[data]
dir = "/var/lib/estuatlas"

[genai]
model = "gemini-2.0-flash"

[session]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/estuatlas", cfg.Data.Dir)
	assert.Equal(t, "gemini-2.0-flash", cfg.GenAI.Model)
	assert.True(t, cfg.Session.Enabled)

	// untouched sections keep their defaults
	assert.Contains(t, cfg.Map.BasemapURL, "world.geojson")

	// derived paths follow the data dir
	assert.Equal(t, filepath.Join("/var/lib/estuatlas", "world.geojson"), cfg.BasemapCachePath())
	assert.Equal(t, filepath.Join("/var/lib/estuatlas", "session.json"), cfg.SessionPath())
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estuatlas.toml")
	require.NoError(t, os.WriteFile(path, []byte("[data\ndir="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSessionPathExplicitOverride(t *testing.T) {
	cfg := Defaults()
	cfg.Session.Path = "/tmp/custom.json"
	assert.Equal(t, "/tmp/custom.json", cfg.SessionPath())
}
