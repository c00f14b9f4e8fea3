package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Discover tests ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscover_FiltersToEPUB(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "dracula.epub")
	touch(t, dir, "emma.epub")
	touch(t, dir, "cover.jpg")
	touch(t, dir, "notes.txt")
	touch(t, dir, "kindle.mobi")

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dracula.epub", "emma.epub"}, basenames(files))
}

func TestDiscover_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.epub")
	touch(t, dir, "b.EPUB")
	touch(t, dir, "c.ePub")

	files, err := Discover(dir)
	require.NoError(t, err)
	// Names are kept exactly as found.
	assert.Equal(t, []string{"a.epub", "b.EPUB", "c.ePub"}, basenames(files))
}

func TestDiscover_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.epub")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	touch(t, filepath.Join(dir, "nested"), "inner.epub")
	// Even a directory named like an archive is skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "decoy.epub"), 0o755))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.epub"}, basenames(files))
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	files, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestDiscover_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.epub", "alpha.epub", "mid.epub"} {
		touch(t, dir, name)
	}

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.epub", "mid.epub", "zeta.epub"}, basenames(files))
}
