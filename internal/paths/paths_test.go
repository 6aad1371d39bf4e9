package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/envtest"
)

func TestGetAutoKeyHome(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		envtest.Setenv(t, "AUTOKEY_HOME", dir)
		assert.Equal(t, dir, GetAutoKeyHome())
		assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
		assert.Equal(t, filepath.Join(dir, "history.db"), GetHistoryDBPath())
		assert.Equal(t, filepath.Join(dir, "autokey.lock"), GetLockPath())
	})

	t.Run("default under home", func(t *testing.T) {
		envtest.Setenv(t, "AUTOKEY_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".autokey"), GetAutoKeyHome())
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}

func TestResolveConfigPath(t *testing.T) {
	exeDir := t.TempDir()
	original := executableFunc
	t.Cleanup(func() { executableFunc = original })
	executableFunc = func() (string, error) {
		return filepath.Join(exeDir, "autokey"), nil
	}

	assert.Equal(t, filepath.Join(exeDir, "config.json"), ResolveConfigPath(""))
	assert.Equal(t, filepath.Join(exeDir, "custom.json"), ResolveConfigPath("custom.json"))
	assert.Equal(t, "/etc/autokey.json", ResolveConfigPath("/etc/autokey.json"))
}

func TestResolveConfigPath_ExecutableUnknown(t *testing.T) {
	original := executableFunc
	t.Cleanup(func() { executableFunc = original })
	executableFunc = func() (string, error) {
		return "", errors.New("no executable")
	}

	assert.Equal(t, "config.json", ResolveConfigPath(""))
}
