package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionStep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		step    ActionStep
		wantErr bool
	}{
		{"activate", ActivateStep("Mail", "", 0), false},
		{"activate with window", ActivateStep("iTerm", "Main", time.Second), false},
		{"terminal", TerminalStep("ls -lat", "File List", 0), false},
		{"browser tab", BrowserTabStep("github.com", 0), false},
		{"no payload", ActionStep{Kind: ActionActivate}, true},
		{"two payloads", ActionStep{
			Kind:     ActionActivate,
			Activate: &Activate{Application: "Mail"},
			Terminal: &Terminal{Command: "ls"},
		}, true},
		{"kind mismatch", ActionStep{Kind: ActionTerminal, Activate: &Activate{Application: "Mail"}}, true},
		{"unknown kind", ActionStep{Kind: "teleport", Activate: &Activate{Application: "Mail"}}, true},
		{"empty application", ActivateStep("", "", 0), true},
		{"empty command", TerminalStep("", "w", 0), true},
		{"empty url", BrowserTabStep("", 0), true},
		{"negative delay", ActivateStep("Mail", "", -time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStep)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActionStep_Describe(t *testing.T) {
	tests := []struct {
		name     string
		step     ActionStep
		expected string
	}{
		{"activate", ActivateStep("Google Chrome", "", 3*time.Second), "Activate Google Chrome"},
		{"activate with window", ActivateStep("iTerm", "Main", 0), "Activate iTerm (Main)"},
		{"short command", TerminalStep("ls -lat", "File List", 0), "iTerm: ls -lat..."},
		{"long command truncated", TerminalStep("echo 'this command is longer than thirty characters'", "", 0), "iTerm: echo 'this command is longer t..."},
		{"browser", BrowserTabStep("github.com", 0), "Chrome: github.com"},
		{"unknown", ActionStep{}, "Unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.step.Describe())
		})
	}
}

func TestActionList_Describe(t *testing.T) {
	assert.Equal(t, "No actions", ActionList{}.Describe())
	assert.Equal(t, "Activate Mail", ActionList{ActivateStep("Mail", "", 0)}.Describe())
	assert.Equal(t, "Activate Mail (+1 more)", ActionList{
		ActivateStep("Mail", "", 0),
		BrowserTabStep("example.com", 0),
	}.Describe())
}

func TestBindings_Validate(t *testing.T) {
	valid := Bindings{
		"aaa": {ActivateStep("Google Chrome", "", 3*time.Second)},
		"f12": {TerminalStep("ls -lat", "File List", 0)},
	}
	assert.NoError(t, valid.Validate())

	invalid := Bindings{
		"aaa": {ActivateStep("Google Chrome", "", 0), ActionStep{Kind: ActionTerminal}},
	}
	err := invalid.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Contains(t, err.Error(), `trigger "aaa" step 2`)
}

func TestFallbackBindings_At(t *testing.T) {
	fallback := FallbackBindings{"Finder", "Safari"}

	tests := []struct {
		n        int
		expected string
		ok       bool
	}{
		{0, "", false},
		{1, "Finder", true},
		{2, "Safari", true},
		{3, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		app, ok := fallback.At(tt.n)
		assert.Equal(t, tt.ok, ok, "n=%d", tt.n)
		assert.Equal(t, tt.expected, app, "n=%d", tt.n)
	}
}
