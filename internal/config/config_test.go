package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "planfetch.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planfetch.yaml")

	cfg := DefaultConfig()
	cfg.OutputPath = "/tmp/plans.json"
	cfg.RefreshCron = "@daily"
	cfg.Headless = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := &Config{OutputPath: "plans.json"}
	cfg.Normalize()

	def := DefaultConfig()
	assert.Equal(t, def.PlansURL, cfg.PlansURL)
	assert.Equal(t, def.APIMatch, cfg.APIMatch)
	assert.Equal(t, def.TimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, "plans.json", cfg.OutputPath)
}

func TestLoadRejectsEmptyPathAndBadYAML(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "planfetch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}
