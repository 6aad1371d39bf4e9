package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/xyproto/env/v2"

	"github.com/renato0307/autokey/internal/adapters/keyboard"
	"github.com/renato0307/autokey/internal/config"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/matcher"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	ChordRepeat bool             `help:"Fire cmd+digit chords on every key press while they are held"`
	Config      string           `help:"Bindings file (relative paths resolve next to the executable)" default:"config.json"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	DryRun      bool             `help:"Print the AppleScript of each action instead of running it"`
	History     bool             `help:"Record every dispatch in $AUTOKEY_HOME/history.db"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ShowHistory int              `help:"Print the last N recorded dispatches and exit" placeholder:"N"`
	Source      string           `help:"Where key events come from" default:"hook" enum:"hook,terminal"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		shareDebug(logFilePath)
	}

	logging.Logger.Info("autokey starting",
		"config", c.Config,
		"source", c.Source,
		"dry_run", c.DryRun,
		"history", c.History,
		"chord_policy", c.chordPolicy())

	if c.Out == nil {
		c.Out = os.Stdout
	}

	// Create container AFTER logging is initialized so adapters log to the right place
	if c.ShowHistory > 0 {
		container, err := NewHistoryContainer()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		c.Container = container
		return nil
	}

	container, err := NewContainer(ContainerOptions{
		ChordPolicy: c.chordPolicy(),
		ConfigPath:  c.Config,
		DryRun:      c.DryRun,
		History:     c.History,
		Out:         c.Out,
		Source:      c.Source,
	})
	if err != nil {
		return err
	}
	c.Container = container
	return nil
}

// shareDebug exports the debug settings so adapters (the gorm logger) and
// child processes see them
func shareDebug(logFilePath string) {
	if err := env.Set("AUTOKEY_DEBUG", "1"); err != nil {
		logging.Logger.Warn("Failed to export AUTOKEY_DEBUG", "error", err)
	}
	if logFilePath != "" {
		if err := env.Set("AUTOKEY_DEBUG_FILE", logFilePath); err != nil {
			logging.Logger.Warn("Failed to export AUTOKEY_DEBUG_FILE", "error", err)
		}
	}
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}
	s := c.settings

	if c.MaxLogFiles == defaultMaxLogFiles && s.MaxLogFiles != nil {
		if !env.Has("AUTOKEY_MAX_LOG_FILES") {
			c.MaxLogFiles = *s.MaxLogFiles
		}
	}

	if !c.Debug && s.Debug != nil && *s.Debug {
		if !env.Has("AUTOKEY_DEBUG") {
			c.Debug = true
		}
	}

	if c.Config == "config.json" && s.Config != "" {
		c.Config = s.Config
	}
	if c.Source == config.SourceHook && s.Source != "" {
		c.Source = s.Source
	}
	if !c.ChordRepeat && s.ChordRepeat != nil {
		c.ChordRepeat = *s.ChordRepeat
	}
	if !c.DryRun && s.DryRun != nil {
		c.DryRun = *s.DryRun
	}
	if !c.History && s.History != nil {
		c.History = *s.History
	}
}

func (c *CLI) chordPolicy() matcher.ChordPolicy {
	if c.ChordRepeat {
		return matcher.ChordEveryPress
	}
	return matcher.ChordOnTransition
}

// Run prints the cheat sheet and listens until ctx is cancelled
func (c *CLI) Run(ctx context.Context) error {
	if c.ShowHistory > 0 {
		return c.Container.HistoryService.Render(ctx, c.Out, c.ShowHistory)
	}

	if err := c.Container.CheatSheet.Render(c.Out); err != nil {
		return fmt.Errorf("failed to print cheat sheet: %w", err)
	}
	fmt.Fprintf(c.Out, "\nListening for triggers (%s source). Press Ctrl-C to quit.\n", c.Source)

	err := c.Container.ListenerService.Run(ctx)
	if errors.Is(err, keyboard.ErrInterrupted) {
		return nil
	}
	return err
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
