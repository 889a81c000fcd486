package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoad_PartialFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rocket.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"rkt> \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rkt> ", cfg.Prompt)
	assert.Equal(t, Default().Banner, cfg.Banner)
}

func TestLoad_ColorFalseIsRespected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rocket.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rocket.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banner: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
