package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/config"
	"github.com/dublyo/dockergen/internal/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, k := range []string{"PORT", "OUTPUT", "MULTISTAGE", "VERBOSE"} {
		t.Setenv(config.EnvPrefix+k, "")
	}
	chdir(t, dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Defaults.Port)
	assert.Empty(t, cfg.Defaults.Output)
	assert.True(t, cfg.Defaults.Multistage)
	assert.False(t, cfg.Defaults.Verbose)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dockergen.yml"), []byte(`
defaults:
  port: "8000"
  output: build/Dockerfile
  multistage: true
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"DOCKERGEN_PORT=9000\nDOCKERGEN_MULTISTAGE=false\nUNRELATED=1\n"), 0o644))
	t.Setenv("DOCKERGEN_PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Defaults.Port, "process env wins")
	assert.False(t, cfg.Defaults.Multistage, ".env beats the YAML file")
	assert.Equal(t, "build/Dockerfile", cfg.Defaults.Output)

	_, set := os.LookupEnv("UNRELATED")
	assert.False(t, set, ".env must not leak into the process environment")
}

func TestLoadInvalid(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dockergen.yml"), []byte("defaults: [unclosed"), 0o644))

	_, err := config.Load()
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestLoadInvalidBool(t *testing.T) {
	isolate(t)
	t.Setenv("DOCKERGEN_MULTISTAGE", "sometimes")

	_, err := config.Load()
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestLoadFromFileMissing(t *testing.T) {
	isolate(t)

	_, err := config.LoadFromFile("nope.yml")
	assert.ErrorIs(t, err, errors.ErrConfigNotFound)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out.yml")

	cfg := config.DefaultConfig()
	cfg.Defaults.Port = "5000"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5000", loaded.Defaults.Port)
}
