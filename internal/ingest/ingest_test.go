package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, dir, name, internalName string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := `{"internal_name":"` + internalName + `","info":{"methods":[{"name":"m","desc":"()V"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileParsesDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "A.json", "com/example/A")

	loader, err := NewLoader()
	require.NoError(t, err)

	clazz, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "com/example/A", clazz.InternalName)
	assert.Len(t, clazz.Info.Methods, 1)
}

func TestLoadFileCachesBySizeAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "A.json", "com/example/A")

	loader, err := NewLoader()
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)

	first, err := loader.LoadFile(path)
	require.NoError(t, err)

	// Mutate on disk without going through the loader, keeping the size
	// and restoring the mtime; a cache hit should still return the
	// stale-but-cached first parse.
	writeDescriptor(t, dir, "A.json", "com/example/B")
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	second, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "com/example/A", second.InternalName)
}

func TestLoadDirCollectsParseErrorsWithoutDroppingGoodFiles(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "good.json", "com/example/Good")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("not json"), 0o644))

	loader, err := NewLoader()
	require.NoError(t, err)

	classes, errs := loader.LoadDir(dir, nil)
	assert.Len(t, classes, 1)
	assert.Equal(t, "com/example/Good", classes[0].InternalName)
	assert.Len(t, errs, 1)
}

func TestLoadDirOnMissingDirectoryReportsError(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	classes, errs := loader.LoadDir(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Empty(t, classes)
	assert.NotEmpty(t, errs)
}
