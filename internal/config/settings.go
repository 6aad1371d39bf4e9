package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/renato0307/autokey/internal/paths"
)

// Key source names accepted by --source and settings.json
const (
	SourceHook     = "hook"
	SourceTerminal = "terminal"
)

// Settings represents the structure of $AUTOKEY_HOME/settings.json.
// Every field is optional; nil means "not set, use the flag default".
type Settings struct {
	ChordRepeat *bool  `json:"chord_repeat,omitempty"`
	Config      string `json:"config,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	DryRun      *bool  `json:"dry_run,omitempty"`
	History     *bool  `json:"history,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Validate checks values that the CLI would otherwise reject
func (s *Settings) Validate() error {
	switch s.Source {
	case "", SourceHook, SourceTerminal:
	default:
		return fmt.Errorf("unknown source %q (expected %q or %q)", s.Source, SourceHook, SourceTerminal)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative")
	}
	return nil
}

// LoadSettings loads settings from $AUTOKEY_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Config != "" {
		settings.Config = paths.ExpandPath(settings.Config)
	}

	return &settings, nil
}

// SaveSettings saves settings to an explicit path
func SaveSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
