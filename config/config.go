// Package config loads stavekit.yaml and applies environment overrides.
// Every field has a default so a missing config file is fine.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "stavekit.yaml"

type Config struct {
	// SampleDir holds the flat-keyed recordings, e.g. Ab4.mp3.
	SampleDir string `yaml:"sample_dir"`
	// GlyphDir holds the staff tile and per-duration note stickers.
	GlyphDir string `yaml:"glyph_dir"`

	SecondsPerBeat float64 `yaml:"seconds_per_beat"`
	SoundFont      string  `yaml:"sound_font"`
	Part           string  `yaml:"part"`

	ListenAddr string `yaml:"listen_addr"`

	// Catalog is optional; an empty table name disables it.
	CatalogTable    string `yaml:"catalog_table"`
	CatalogEndpoint string `yaml:"catalog_endpoint"`
}

func Default() Config {
	return Config{
		SampleDir:       "chromatic_samples_library",
		GlyphDir:        "visual_notes_library",
		SecondsPerBeat:  0.6,
		SoundFont:       "/usr/share/sounds/sf2/FluidR3_GM.sf2",
		Part:            "Violin",
		ListenAddr:      ":8080",
		CatalogEndpoint: "http://localhost:8000",
	}
}

// Load reads path (missing file means defaults) and then lets
// environment variables win over both.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %v: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("config: read %v: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("STAVEKIT_SAMPLE_DIR", &cfg.SampleDir)
	setString("STAVEKIT_GLYPH_DIR", &cfg.GlyphDir)
	setString("STAVEKIT_SOUND_FONT", &cfg.SoundFont)
	setString("STAVEKIT_PART", &cfg.Part)
	setString("STAVEKIT_LISTEN_ADDR", &cfg.ListenAddr)
	setString("STAVEKIT_CATALOG_TABLE", &cfg.CatalogTable)
	setString("STAVEKIT_CATALOG_ENDPOINT", &cfg.CatalogEndpoint)

	if v := os.Getenv("STAVEKIT_SECONDS_PER_BEAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.SecondsPerBeat = f
		}
	}
}
