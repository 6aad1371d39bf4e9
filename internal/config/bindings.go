package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/filelock"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/ports"
)

// StepConfig is one action step as written in config.json.
// Exactly one of ActivateCommand, ItermCommand and URL must be set.
type StepConfig struct {
	ActivateCommand *string `json:"activate_command,omitempty"`
	Delay           float64 `json:"delay,omitempty"`
	ItermCommand    *string `json:"iterm_command,omitempty"`
	URL             *string `json:"url,omitempty"`
	Window          *string `json:"window,omitempty"`
}

// BindingsFile is the on-disk shape of config.json
type BindingsFile map[string][]StepConfig

func strPtr(s string) *string { return &s }

// DefaultBindingsFile is written when config.json is missing or empty
func DefaultBindingsFile() BindingsFile {
	return BindingsFile{
		"aaa": {
			{ActivateCommand: strPtr("Google Chrome"), Window: strPtr(""), Delay: 3},
		},
		"nnn": {
			{ItermCommand: strPtr("echo 'My command'"), Window: strPtr("Main Window")},
		},
		"f12": {
			{ItermCommand: strPtr("ls -lat"), Window: strPtr("File List")},
		},
	}
}

// ToStep converts the JSON form into a validated tagged step
func (s StepConfig) ToStep() (domain.ActionStep, error) {
	payloads := 0
	for _, p := range []*string{s.ActivateCommand, s.ItermCommand, s.URL} {
		if p != nil {
			payloads++
		}
	}
	if payloads != 1 {
		return domain.ActionStep{}, fmt.Errorf(
			"%w: exactly one of activate_command, iterm_command or url is required, got %d",
			domain.ErrInvalidStep, payloads)
	}
	if s.Delay < 0 || math.IsNaN(s.Delay) || math.IsInf(s.Delay, 0) {
		return domain.ActionStep{}, fmt.Errorf("%w: invalid delay %v", domain.ErrInvalidStep, s.Delay)
	}

	window := ""
	if s.Window != nil {
		window = *s.Window
	}
	delay := time.Duration(s.Delay * float64(time.Second))

	var step domain.ActionStep
	switch {
	case s.ActivateCommand != nil:
		step = domain.ActivateStep(*s.ActivateCommand, window, delay)
	case s.ItermCommand != nil:
		step = domain.TerminalStep(*s.ItermCommand, window, delay)
	default:
		step = domain.BrowserTabStep(*s.URL, delay)
	}

	if err := step.Validate(); err != nil {
		return domain.ActionStep{}, err
	}
	return step, nil
}

// StepConfigFrom converts a domain step back to its JSON form
func StepConfigFrom(step domain.ActionStep) StepConfig {
	sc := StepConfig{Delay: step.Delay.Seconds()}
	switch step.Kind {
	case domain.ActionActivate:
		sc.ActivateCommand = strPtr(step.Activate.Application)
		sc.Window = strPtr(step.Activate.Window)
	case domain.ActionTerminal:
		sc.ItermCommand = strPtr(step.Terminal.Command)
		sc.Window = strPtr(step.Terminal.Window)
	case domain.ActionBrowserTab:
		sc.URL = strPtr(step.BrowserTab.URLFragment)
	}
	return sc
}

// ToBindings validates every step and builds the domain mapping
func (f BindingsFile) ToBindings() (domain.Bindings, error) {
	bindings := make(domain.Bindings, len(f))

	triggers := make([]string, 0, len(f))
	for trigger := range f {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)

	for _, trigger := range triggers {
		if _, ok := domain.ClassifyTriggerID(trigger); !ok {
			logging.Logger.Warn("Binding can never fire, trigger shape not recognized", "trigger", trigger)
		}

		steps := f[trigger]
		list := make(domain.ActionList, 0, len(steps))
		for i, sc := range steps {
			step, err := sc.ToStep()
			if err != nil {
				return nil, fmt.Errorf("trigger %q step %d: %w", trigger, i+1, err)
			}
			list = append(list, step)
		}
		bindings[trigger] = list
	}
	return bindings, nil
}

// BindingsFileFrom converts domain bindings to their JSON form
func BindingsFileFrom(b domain.Bindings) BindingsFile {
	f := make(BindingsFile, len(b))
	for trigger, list := range b {
		steps := make([]StepConfig, 0, len(list))
		for _, step := range list {
			steps = append(steps, StepConfigFrom(step))
		}
		f[trigger] = steps
	}
	return f
}

// ParseBindings decodes config.json content. Comments and trailing commas are tolerated.
func ParseBindings(data []byte) (domain.Bindings, error) {
	var file BindingsFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	bindings, err := file.ToBindings()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return bindings, nil
}

// LoadBindings reads config.json, writing the defaults first when the file
// is missing or empty. A parse or validation error returns no bindings at all.
func LoadBindings(path string) (domain.Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		logging.Logger.Info("Config missing or empty, writing defaults", "path", path)
		defaults := DefaultBindingsFile()
		if err := SaveBindingsFile(path, defaults); err != nil {
			return nil, err
		}
		return defaults.ToBindings()
	}

	bindings, err := ParseBindings(data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	logging.Logger.Debug("Bindings loaded", "path", path, "count", len(bindings))
	return bindings, nil
}

// SaveBindingsFile writes config.json with two-space indentation under an exclusive lock
func SaveBindingsFile(path string, file BindingsFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := filelock.Lock(f); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer filelock.Unlock(f)

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// FileStore implements ports.BindingStore over a config.json path
type FileStore struct {
	path string
}

// Compile-time interface verification
var _ ports.BindingStore = (*FileStore)(nil)

// NewFileStore creates a store for the given, already resolved, path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements ports.BindingStore.Load
func (s *FileStore) Load() (domain.Bindings, error) {
	return LoadBindings(s.path)
}

// Path implements ports.BindingStore.Path
func (s *FileStore) Path() string {
	return s.path
}
