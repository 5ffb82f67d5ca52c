package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for estuatlas.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Map     MapConfig     `toml:"map"`
	GenAI   GenAIConfig   `toml:"genai"`
	Session SessionConfig `toml:"session"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type MapConfig struct {
	// BasemapURL is the background shape collection, fetched once at
	// startup (or cached via the basemap subcommand).
	BasemapURL string `toml:"basemap_url"`
}

type GenAIConfig struct {
	Model string `toml:"model"`
}

type SessionConfig struct {
	// Enabled persists the saved shortlist and census discoveries across
	// runs. Off by default: the atlas is fully usable in-memory.
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{Dir: "data"},
		Map: MapConfig{
			BasemapURL: "https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson",
		},
		GenAI:   GenAIConfig{Model: "gemini-2.5-flash"},
		Session: SessionConfig{Enabled: false},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if cfg.Session.Path == "" {
		cfg.Session.Path = filepath.Join(cfg.Data.Dir, "session.json")
	}
	return cfg, nil
}

// BasemapCachePath is where the basemap subcommand stores its download and
// where the TUI looks before going to the network.
func (c *Config) BasemapCachePath() string {
	return filepath.Join(c.Data.Dir, "world.geojson")
}

// SessionPath resolves the session file location.
func (c *Config) SessionPath() string {
	if c.Session.Path != "" {
		return c.Session.Path
	}
	return filepath.Join(c.Data.Dir, "session.json")
}
