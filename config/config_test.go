package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(err)
	assert.Equal("chromatic_samples_library", cfg.SampleDir)
	assert.Equal("visual_notes_library", cfg.GlyphDir)
	assert.Equal(0.6, cfg.SecondsPerBeat)
	assert.Equal(":8080", cfg.ListenAddr)
	assert.Empty(cfg.CatalogTable)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "stavekit.yaml")
	body := `
sample_dir: /srv/samples
seconds_per_beat: 0.5
catalog_table: stavekit-scores
`
	assert.NoError(os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal("/srv/samples", cfg.SampleDir)
	assert.Equal(0.5, cfg.SecondsPerBeat)
	assert.Equal("stavekit-scores", cfg.CatalogTable)
	// untouched fields keep their defaults
	assert.Equal("visual_notes_library", cfg.GlyphDir)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stavekit.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("sample_dir: [unbalanced"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("STAVEKIT_SAMPLE_DIR", "/env/samples")
	t.Setenv("STAVEKIT_SECONDS_PER_BEAT", "0.4")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(err)
	assert.Equal("/env/samples", cfg.SampleDir)
	assert.Equal(0.4, cfg.SecondsPerBeat)
}
