package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/domain"
)

func expectedDefaults() domain.Bindings {
	return domain.Bindings{
		"aaa": {domain.ActivateStep("Google Chrome", "", 3*time.Second)},
		"nnn": {domain.TerminalStep("echo 'My command'", "Main Window", 0)},
		"f12": {domain.TerminalStep("ls -lat", "File List", 0)},
	}
}

func TestLoadBindings_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	bindings, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, expectedDefaults(), bindings)

	require.FileExists(t, path)

	reloaded, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, bindings, reloaded)
}

func TestLoadBindings_EmptyFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	bindings, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, expectedDefaults(), bindings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"activate_command": "Google Chrome"`)
}

func TestDefaultBindingsFile_JSONShape(t *testing.T) {
	data, err := json.Marshal(DefaultBindingsFile())
	require.NoError(t, err)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, map[string]any{"activate_command": "Google Chrome", "window": "", "delay": float64(3)}, raw["aaa"][0])
	assert.Equal(t, map[string]any{"iterm_command": "echo 'My command'", "window": "Main Window"}, raw["nnn"][0])
	assert.Equal(t, map[string]any{"iterm_command": "ls -lat", "window": "File List"}, raw["f12"][0])
}

func TestParseBindings(t *testing.T) {
	data := []byte(`{
		// browser shortcuts
		"ggg": [
			{"url": "github.com", "delay": 0.5},
			{"activate_command": "Slack", "window": "general"},
		],
		"cmd+1": [{"iterm_command": "htop", "window": "Top"}],
		"f3": [{"activate_command": "Mail"}]
	}`)

	bindings, err := ParseBindings(data)
	require.NoError(t, err)

	assert.Equal(t, domain.ActionList{
		domain.BrowserTabStep("github.com", 500*time.Millisecond),
		domain.ActivateStep("Slack", "general", 0),
	}, bindings["ggg"])
	assert.Equal(t, domain.ActionList{domain.TerminalStep("htop", "Top", 0)}, bindings["cmd+1"])
	assert.Equal(t, domain.ActionList{domain.ActivateStep("Mail", "", 0)}, bindings["f3"])
}

func TestParseBindings_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"aaa": [`},
		{"not an object", `["aaa"]`},
		{"no action", `{"aaa": [{"window": "w"}]}`},
		{"two actions", `{"aaa": [{"activate_command": "Mail", "url": "x.com"}]}`},
		{"negative delay", `{"aaa": [{"activate_command": "Mail", "delay": -1}]}`},
		{"empty application", `{"aaa": [{"activate_command": ""}]}`},
		{"wrong type", `{"aaa": [{"activate_command": 12}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings, err := ParseBindings([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Nil(t, bindings)
		})
	}
}

func TestLoadBindings_MalformedIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"aaa": [{"activate_command": "Mail"}], "bbb": [{}]}`), 0644))

	bindings, err := LoadBindings(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `trigger "bbb" step 1`)
	assert.Nil(t, bindings)
}

func TestBindingsFileFrom_RoundTrip(t *testing.T) {
	original := domain.Bindings{
		"aaa":   {domain.ActivateStep("Google Chrome", "", 3*time.Second)},
		"cmd+2": {domain.BrowserTabStep("news.ycombinator.com", 250*time.Millisecond)},
		"f1":    {domain.TerminalStep("make test", "Tests", 0), domain.ActivateStep("iTerm", "Tests", 0)},
	}

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveBindingsFile(path, BindingsFileFrom(original)))

	loaded, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	store := NewFileStore(path)

	assert.Equal(t, path, store.Path())

	bindings, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, bindings, 3)
}
