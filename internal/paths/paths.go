package paths

import (
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
)

// DefaultConfigName is the bindings file looked up next to the executable
const DefaultConfigName = "config.json"

// executableFunc is overridden in tests
var executableFunc = os.Executable

// GetAutoKeyHome returns AUTOKEY_HOME or ~/.autokey default
func GetAutoKeyHome() string {
	home := env.Str("AUTOKEY_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".autokey"
		}
		return filepath.Join(homeDir, ".autokey")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $AUTOKEY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetAutoKeyHome(), "settings.json")
}

// GetHistoryDBPath returns $AUTOKEY_HOME/history.db
func GetHistoryDBPath() string {
	return filepath.Join(GetAutoKeyHome(), "history.db")
}

// GetLockPath returns $AUTOKEY_HOME/autokey.lock
func GetLockPath() string {
	return filepath.Join(GetAutoKeyHome(), "autokey.lock")
}

// GetDockPlistPath returns the macOS Dock preferences file
func GetDockPlistPath() string {
	return ExpandPath("~/Library/Preferences/com.apple.dock.plist")
}

// ResolveConfigPath expands ~ and resolves relative paths against the executable's directory
func ResolveConfigPath(path string) string {
	if path == "" {
		path = DefaultConfigName
	}
	path = ExpandPath(path)
	if filepath.IsAbs(path) {
		return path
	}

	exe, err := executableFunc()
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), path)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
