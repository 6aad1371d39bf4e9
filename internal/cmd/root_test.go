package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"

	"github.com/renato0307/autokey/internal/config"
	"github.com/renato0307/autokey/internal/envtest"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/matcher"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func defaultCLI() *CLI {
	return &CLI{
		Config:      "config.json",
		MaxLogFiles: defaultMaxLogFiles,
		Source:      config.SourceHook,
	}
}

func TestApplySettings(t *testing.T) {
	settings := &config.Settings{
		ChordRepeat: boolPtr(true),
		Config:      "/etc/autokey/bindings.json",
		Debug:       boolPtr(true),
		DryRun:      boolPtr(true),
		History:     boolPtr(true),
		MaxLogFiles: intPtr(7),
		Source:      config.SourceTerminal,
	}

	tests := []struct {
		name   string
		cli    func() *CLI
		env    map[string]string
		verify func(t *testing.T, c *CLI)
	}{
		{
			name: "settings fill defaults",
			cli:  defaultCLI,
			verify: func(t *testing.T, c *CLI) {
				assert.True(t, c.ChordRepeat)
				assert.Equal(t, "/etc/autokey/bindings.json", c.Config)
				assert.True(t, c.Debug)
				assert.True(t, c.DryRun)
				assert.True(t, c.History)
				assert.Equal(t, 7, c.MaxLogFiles)
				assert.Equal(t, config.SourceTerminal, c.Source)
				assert.Equal(t, matcher.ChordEveryPress, c.chordPolicy())
			},
		},
		{
			name: "flags win over settings",
			cli: func() *CLI {
				c := defaultCLI()
				c.Config = "mine.json"
				c.MaxLogFiles = 3
				return c
			},
			verify: func(t *testing.T, c *CLI) {
				assert.Equal(t, "mine.json", c.Config)
				assert.Equal(t, 3, c.MaxLogFiles)
			},
		},
		{
			name: "env wins over settings",
			cli:  defaultCLI,
			env:  map[string]string{"AUTOKEY_DEBUG": "0", "AUTOKEY_MAX_LOG_FILES": "50"},
			verify: func(t *testing.T, c *CLI) {
				assert.False(t, c.Debug)
				assert.Equal(t, defaultMaxLogFiles, c.MaxLogFiles)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				envtest.Setenv(t, k, v)
			}
			c := tt.cli()
			c.SetSettings(settings)
			c.applySettings()
			tt.verify(t, c)
		})
	}
}

func TestApplySettings_NoSettings(t *testing.T) {
	c := defaultCLI()
	c.applySettings()

	assert.Equal(t, defaultCLI(), c)
	assert.Equal(t, matcher.ChordOnTransition, c.chordPolicy())
}

func TestShareDebug_SeenAfterLoggingStarted(t *testing.T) {
	envtest.Setenv(t, "AUTOKEY_DEBUG", "")
	envtest.Setenv(t, "AUTOKEY_DEBUG_FILE", "")

	// logging reads the environment before debug is shared
	_, err := logging.Initialize(false, "", 0)
	require.NoError(t, err)

	logFile := filepath.Join(t.TempDir(), "debug.log")
	shareDebug(logFile)

	assert.Equal(t, "1", env.Str("AUTOKEY_DEBUG"))
	assert.Equal(t, logFile, env.Str("AUTOKEY_DEBUG_FILE"))
	assert.Equal(t, "1", os.Getenv("AUTOKEY_DEBUG"))
}
