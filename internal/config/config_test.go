package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "robovm.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robovm.yaml")
	content := `
mode: aggressive
roots:
  - com/example/Main
classes_dir: build/classes
archive:
  include:
    - "com/keep/**"
  exclude:
    - "**/*.tmp"
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "aggressive", cfg.Mode)
	assert.Equal(t, []string{"com/example/Main"}, cfg.Roots)
	assert.Equal(t, "build/classes", cfg.ClassesDir)
	assert.Equal(t, []string{"com/keep/**"}, cfg.Archive.Include)
	assert.Equal(t, []string{"**/*.tmp"}, cfg.Archive.Exclude)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robovm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
