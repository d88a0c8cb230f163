package zipfs_test

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/zipfs"
	"go.trai.ch/anvil/internal/core/domain"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := zipfs.Open(filepath.Join(t.TempDir(), "missing.jar"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchiveOpenFailed))
}

func TestCreate_StartsEmptyAndFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.jar")

	a, err := zipfs.Create(path)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	a.Write("a/b.txt", []byte("hello"))
	require.NoError(t, a.Close())

	reopened, err := zipfs.Open(path)
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck // Read-only mount

	data, err := reopened.Read("a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestArchive_ReadMissingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{"present.txt": "x"})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck // Read-only mount

	_, err = a.Read("absent.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchiveEntryMissing))
}

func TestArchive_NamesSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{
		"z.txt":     "1",
		"a.txt":     "2",
		"m/n.class": "3",
	})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck // Read-only mount

	assert.Equal(t, []string{"a.txt", "m/n.class", "z.txt"}, a.Names())
}

func TestArchive_NamesUnder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{
		"inject/pkg/A.class": "a",
		"inject/B.class":     "b",
		"other/C.class":      "c",
	})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck // Read-only mount

	assert.Equal(t, []string{"inject/B.class", "inject/pkg/A.class"}, a.NamesUnder("inject"))
	assert.Len(t, a.NamesUnder(""), 3)
}

func TestArchive_CleanCloseLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{"x.txt": "x"})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	a, err := zipfs.Open(path)
	require.NoError(t, err)

	_, err = a.Read("x.txt")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestArchive_WriteReplacesWholeEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{"x.txt": "old content"})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	a.Write("x.txt", []byte("new"))
	require.NoError(t, a.Close())

	reopened, err := zipfs.Open(path)
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck // Read-only mount

	data, err := reopened.Read("x.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestArchive_NormalizesEntryNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{`dir\file.txt`: "x"})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck // Read-only mount

	assert.True(t, a.Has("dir/file.txt"))
	assert.True(t, a.Has("/dir/file.txt"))
}

func TestArchive_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeZip(t, path, map[string]string{"x.txt": "x"})

	a, err := zipfs.Open(path)
	require.NoError(t, err)
	a.Write("y.txt", []byte("y"))

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestArchive_DeterministicFlush(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.jar")
	p2 := filepath.Join(dir, "two.jar")

	for _, p := range []string{p1, p2} {
		a, err := zipfs.Create(p)
		require.NoError(t, err)
		a.Write("b.txt", []byte("b"))
		a.Write("a.txt", []byte("a"))
		require.NoError(t, a.Close())
	}

	d1, err := os.ReadFile(p1)
	require.NoError(t, err)
	d2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}
