package cmd

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intrigus/robovm/internal/config"
)

func TestBuildStripConfigAppliesIncludeExcludeOrder(t *testing.T) {
	cfg, err := buildStripConfig(config.ArchiveConfig{
		Include: []string{"com/keep/**"},
		Exclude: []string{"**/*.class"},
	})
	require.NoError(t, err)

	include, err := cfg.ShouldInclude("com/keep/Foo.class")
	require.NoError(t, err)
	assert.True(t, include)

	include, err = cfg.ShouldInclude("com/other/Bar.class")
	require.NoError(t, err)
	assert.False(t, include)
}

func writeTestZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entryWriter, err := w.Create(name)
		require.NoError(t, err)
		_, err = entryWriter.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestStripArchiveCopiesOnlyIncludedEntries(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.jar")
	out := filepath.Join(dir, "out.jar")
	writeTestZip(t, in, map[string]string{
		"com/example/Foo.class":  "binary",
		"META-INF/MANIFEST.MF":   "manifest",
		"com/example/README.txt": "docs",
	})

	cfg, err := buildStripConfig(config.ArchiveConfig{})
	require.NoError(t, err)

	result, err := stripArchive(in, out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalEntries)
	assert.Contains(t, result.ExcludedEntries, "com/example/Foo.class")
	assert.Contains(t, result.IncludedEntries, "META-INF/MANIFEST.MF")
	assert.Contains(t, result.IncludedEntries, "com/example/README.txt")

	reader, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer reader.Close()
	assert.Len(t, reader.File, 2)
}

func TestStripArchiveRejectsMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg, err := buildStripConfig(config.ArchiveConfig{})
	require.NoError(t, err)

	_, err = stripArchive(filepath.Join(dir, "missing.jar"), filepath.Join(dir, "out.jar"), cfg)
	assert.Error(t, err)
}
