package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own AUTOKEY_HOME.
type TestEnvironment struct {
	AutoKeyHome string
	Home        string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp AUTOKEY_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	home := tb.TempDir()
	autoKeyHome := filepath.Join(home, ".autokey")
	if err := os.MkdirAll(autoKeyHome, 0755); err != nil {
		tb.Fatalf("Failed to create AUTOKEY_HOME: %v", err)
	}

	return &TestEnvironment{
		AutoKeyHome: autoKeyHome,
		Home:        home,
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out AUTOKEY_* variables and sets:
//   - AUTOKEY_HOME to the temp directory
//   - AUTOKEY_DEBUG to empty string (disables debug logging)
//   - HOME to the temp root
//   - NO_COLOR and TERM=dumb so output has no escape codes
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+5+len(e.extraEnv))

	// Build a set of keys we want to override
	overrideKeys := map[string]bool{
		"AUTOKEY_HOME":  true,
		"AUTOKEY_DEBUG": true,
		"HOME":          true,
		"NO_COLOR":      true,
		"TERM":          true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	// Filter out existing AUTOKEY_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "AUTOKEY_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"AUTOKEY_HOME="+e.AutoKeyHome,
		"AUTOKEY_DEBUG=",
		"HOME="+e.Home,
		"NO_COLOR=1",
		"TERM=dumb",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// ConfigPath returns an absolute bindings path inside the environment
func (e *TestEnvironment) ConfigPath() string {
	return filepath.Join(e.AutoKeyHome, "config.json")
}

// DBPath returns the path to the dispatch history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.AutoKeyHome, "history.db")
}

// WriteConfig writes a bindings file and returns its path
func (e *TestEnvironment) WriteConfig(content string) string {
	e.tb.Helper()
	path := e.ConfigPath()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// WriteSettings writes $AUTOKEY_HOME/settings.json
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.AutoKeyHome, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
