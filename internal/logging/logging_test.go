package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/envtest"
)

func TestInitialize_DisabledByDefault(t *testing.T) {
	envtest.Setenv(t, "AUTOKEY_DEBUG", "")
	envtest.Setenv(t, "AUTOKEY_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	envtest.Setenv(t, "AUTOKEY_DEBUG", "")
	envtest.Setenv(t, "AUTOKEY_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test", "key", "value")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitialize_EnvDebugFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "env.log")
	envtest.Setenv(t, "AUTOKEY_DEBUG", "1")
	envtest.Setenv(t, "AUTOKEY_DEBUG_FILE", logFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "keep.txt"}, names)
}
