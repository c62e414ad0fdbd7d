package pathscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanFindsExecutables(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	nonExe := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(nonExe, []byte("hi"), 0o644))

	m := Scan(dir, nil)
	path, ok := m.Lookup("mytool")
	require.True(t, ok)
	require.Equal(t, exe, path)

	_, ok = m.Lookup("data.txt")
	require.False(t, ok)
}

func TestScanWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))

	exe := filepath.Join(nested, "subtool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	m := Scan(dir, nil)
	path, ok := m.Lookup("subtool")
	require.True(t, ok)
	require.Equal(t, exe, path)
}

func TestScanSkipsUnreadableDirectory(t *testing.T) {
	m := Scan("/does/not/exist/at/all", nil)
	require.Equal(t, 0, m.Len())
}

func TestScanDefaultPathOnEmpty(t *testing.T) {
	// Just verify it doesn't panic and returns a usable Map.
	m := Scan("", nil)
	require.NotNil(t, m)
}
