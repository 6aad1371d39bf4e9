package services

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/autokey/internal/domain"
)

func TestCheatSheet_Render(t *testing.T) {
	bindings := domain.Bindings{
		"aaa":   {domain.ActivateStep("Google Chrome", "", 3*time.Second)},
		"nnn":   {domain.TerminalStep("echo 'My command'", "Main Window", 0)},
		"f12":   {domain.TerminalStep("ls -lat", "File List", 0)},
		"f2":    {domain.BrowserTabStep("github.com", 0), domain.ActivateStep("Slack", "", 0)},
		"cmd+1": {domain.ActivateStep("Mail", "Inbox", 0)},
	}
	fallback := domain.FallbackBindings{"Finder", "Safari"}

	var buf bytes.Buffer
	require.NoError(t, NewCheatSheet(bindings, fallback).Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "AutoKey Cheat Sheet")
	assert.Contains(t, out, "aaa        Activate Google Chrome")
	assert.Contains(t, out, "nnn        iTerm: echo 'My command'...")
	assert.Contains(t, out, "F2         Chrome: github.com (+1 more)")
	assert.Contains(t, out, "F12        iTerm: ls -lat...")
	assert.Contains(t, out, "cmd+1      Activate Mail (Inbox)")
	assert.Contains(t, out, "F1         Activate Finder")
	assert.Contains(t, out, "F2         Activate Safari")

	// function keys sort numerically, not lexically
	assert.Less(t, strings.Index(out, "F2         Chrome"), strings.Index(out, "F12        iTerm"))

	// sections appear in a fixed order
	triplet := strings.Index(out, "Triplet Commands:")
	function := strings.Index(out, "Function Key Commands:")
	chord := strings.Index(out, "Chord Commands:")
	dock := strings.Index(out, "Dock Commands (Function Keys):")
	assert.True(t, triplet < function && function < chord && chord < dock)
}

func TestCheatSheet_DockLimitedToTwelve(t *testing.T) {
	var apps domain.FallbackBindings
	for i := 1; i <= 15; i++ {
		apps = append(apps, fmt.Sprintf("App%d", i))
	}

	var buf bytes.Buffer
	require.NoError(t, NewCheatSheet(domain.Bindings{}, apps).Render(&buf))

	assert.Contains(t, buf.String(), "F12        Activate App12")
	assert.NotContains(t, buf.String(), "App13")
	assert.Contains(t, buf.String(), "(none)")
}

func TestCheatSheet_UnclassifiedTriggersOmitted(t *testing.T) {
	var buf bytes.Buffer
	bindings := domain.Bindings{"hello": {domain.ActivateStep("Mail", "", 0)}}
	require.NoError(t, NewCheatSheet(bindings, nil).Render(&buf))

	assert.NotContains(t, buf.String(), "hello")
}
