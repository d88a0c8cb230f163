package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJar(t *testing.T, path string, entries map[string]string) {
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

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	writeJar(t, filepath.Join(tmpDir, "client.jar"), map[string]string{"a/A.class": "A"})
	writeJar(t, filepath.Join(tmpDir, "server.jar"), map[string]string{"c/C.class": "C"})
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "patches.lzma"), []byte("p"), 0o600))

	configContent := `
game: "1.20.1"
patchSet: "47.2.0"
inputs:
  client: client.jar
  server: server.jar
  patches: patches.lzma
cache:
  global: global
  project: project
tools:
  merge: ["/bin/sh", "-c", "cp {client} {output}"]
  remap: ["/bin/sh", "-c", "cp {input} {output}"]
  patch: ["/bin/sh", "-c", "cp {clean} {output}"]
  accessTransform: ["/bin/sh", "-c", "cp {input} {output}"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "anvil.yaml"), []byte(configContent), 0o600))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"anvil", "run"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)
	assert.FileExists(t, filepath.Join(tmpDir, "global", "forge-47.2.0", "merged-final.jar"))
}
