package domain

import (
	"fmt"
	"time"
)

// ActionKind tags which payload an ActionStep carries
type ActionKind string

const (
	ActionActivate   ActionKind = "activate"
	ActionTerminal   ActionKind = "terminal"
	ActionBrowserTab ActionKind = "browser_tab"
)

// Activate brings an application to the front, optionally raising a named window
type Activate struct {
	Application string
	Window      string
}

// Terminal opens a new terminal window, types Command into it and titles it Window
type Terminal struct {
	Command string
	Window  string
}

// BrowserTab focuses the first browser tab whose URL contains URLFragment,
// or opens http://<URLFragment> in a new tab
type BrowserTab struct {
	URLFragment string
}

// ActionStep is one automation step. Exactly one payload matching Kind is set.
// Delay is waited after the step runs, before the next step.
type ActionStep struct {
	Activate   *Activate
	BrowserTab *BrowserTab
	Delay      time.Duration
	Kind       ActionKind
	Terminal   *Terminal
}

// ActivateStep builds an activate step
func ActivateStep(application, window string, delay time.Duration) ActionStep {
	return ActionStep{
		Kind:     ActionActivate,
		Activate: &Activate{Application: application, Window: window},
		Delay:    delay,
	}
}

// TerminalStep builds a terminal command step
func TerminalStep(command, window string, delay time.Duration) ActionStep {
	return ActionStep{
		Kind:     ActionTerminal,
		Terminal: &Terminal{Command: command, Window: window},
		Delay:    delay,
	}
}

// BrowserTabStep builds a browser tab step
func BrowserTabStep(fragment string, delay time.Duration) ActionStep {
	return ActionStep{
		Kind:       ActionBrowserTab,
		BrowserTab: &BrowserTab{URLFragment: fragment},
		Delay:      delay,
	}
}

// Validate checks that exactly one payload is present and that it matches Kind
func (s ActionStep) Validate() error {
	payloads := 0
	if s.Activate != nil {
		payloads++
	}
	if s.Terminal != nil {
		payloads++
	}
	if s.BrowserTab != nil {
		payloads++
	}
	if payloads != 1 {
		return fmt.Errorf("%w: expected exactly one action, got %d", ErrInvalidStep, payloads)
	}
	if s.Delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidStep, s.Delay)
	}

	switch s.Kind {
	case ActionActivate:
		if s.Activate == nil {
			return fmt.Errorf("%w: kind %s without activate payload", ErrInvalidStep, s.Kind)
		}
		if s.Activate.Application == "" {
			return fmt.Errorf("%w: empty application name", ErrInvalidStep)
		}
	case ActionTerminal:
		if s.Terminal == nil {
			return fmt.Errorf("%w: kind %s without terminal payload", ErrInvalidStep, s.Kind)
		}
		if s.Terminal.Command == "" {
			return fmt.Errorf("%w: empty terminal command", ErrInvalidStep)
		}
	case ActionBrowserTab:
		if s.BrowserTab == nil {
			return fmt.Errorf("%w: kind %s without browser tab payload", ErrInvalidStep, s.Kind)
		}
		if s.BrowserTab.URLFragment == "" {
			return fmt.Errorf("%w: empty url", ErrInvalidStep)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, s.Kind)
	}
	return nil
}

// Describe returns the one-line summary shown in the cheat sheet
func (s ActionStep) Describe() string {
	switch s.Kind {
	case ActionActivate:
		if s.Activate.Window != "" {
			return fmt.Sprintf("Activate %s (%s)", s.Activate.Application, s.Activate.Window)
		}
		return "Activate " + s.Activate.Application
	case ActionTerminal:
		return "iTerm: " + truncate(s.Terminal.Command, 30) + "..."
	case ActionBrowserTab:
		return "Chrome: " + s.BrowserTab.URLFragment
	}
	return "Unknown command"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ActionList is the ordered list of steps bound to one trigger
type ActionList []ActionStep

// Describe summarizes the list by its first step
func (l ActionList) Describe() string {
	if len(l) == 0 {
		return "No actions"
	}
	if len(l) == 1 {
		return l[0].Describe()
	}
	return fmt.Sprintf("%s (+%d more)", l[0].Describe(), len(l)-1)
}

// Bindings maps trigger identifiers to action lists
type Bindings map[string]ActionList

// Lookup returns the action list configured for a trigger identifier
func (b Bindings) Lookup(id string) (ActionList, bool) {
	list, ok := b[id]
	return list, ok
}

// Validate checks every step of every binding
func (b Bindings) Validate() error {
	for id, list := range b {
		for i, step := range list {
			if err := step.Validate(); err != nil {
				return fmt.Errorf("trigger %q step %d: %w", id, i+1, err)
			}
		}
	}
	return nil
}

// FallbackBindings is the positional list of pinned applications; F1 maps to index 0
type FallbackBindings []string

// At returns the application bound to function key n (1-indexed)
func (f FallbackBindings) At(n int) (string, bool) {
	if n < 1 || n > len(f) {
		return "", false
	}
	return f[n-1], true
}
