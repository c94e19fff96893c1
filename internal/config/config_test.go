package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".saves", cfg.SaveDir)
	assert.Equal(t, "scores.db", cfg.ScoresDB)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.TrailFile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"save_dir: /tmp/trail-saves\nscores_db: /tmp/trail-scores.db\nseed: 42\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/trail-saves", cfg.SaveDir)
	assert.Equal(t, "/tmp/trail-scores.db", cfg.ScoresDB)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
