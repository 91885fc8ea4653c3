package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Charts.SubgroupSize)
	assert.Equal(t, 0.2, cfg.Charts.EWMALambda)
	assert.Equal(t, 3.0, cfg.Charts.EWMALimit)
	assert.Equal(t, 0.5, cfg.Charts.CUSUMSlack)
	assert.Equal(t, 5.0, cfg.Charts.CUSUMInterval)
	assert.NoError(t, cfg.validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), *cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("charts:\n  ewma_lambda: 0.1\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 0.1, cfg.Charts.EWMALambda)
		// untouched fields keep their defaults
		assert.Equal(t, 3.0, cfg.Charts.EWMALimit)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("charts:\n  subgroup_size: 4\n"), 0644))
		t.Setenv("SPC_CHARTS_SUBGROUP_SIZE", "3")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Charts.SubgroupSize)
	})

	t.Run("invalid tunables are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("charts:\n  ewma_lambda: 2\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid yaml is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("charts: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestParamAccessors(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.2, cfg.EWMAParams().Lambda)
	assert.Equal(t, 5.0, cfg.CUSUMParams().H)
}
