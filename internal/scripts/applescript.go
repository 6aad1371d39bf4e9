// Package scripts generates the AppleScript sent to the action backend.
// Every user-supplied string is passed through Quote before interpolation.
package scripts

import (
	"fmt"
	"strings"

	"github.com/renato0307/autokey/internal/domain"
)

const (
	terminalApp        = "iTerm"
	terminalProcess    = "iTerm2"
	browserApp         = "Google Chrome"
	returnKeyCode      = 36
	windowTitleMenu    = "Edit Window Title"
	windowTitleDelay   = "0.5"
	browserURLScheme   = "http://"
	undoKeystrokeValue = "z"
)

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote renders s as an AppleScript string literal
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// Script is a generated script plus the argv passed to its run handler
type Script struct {
	Args   []string
	Source string
}

// Undo presses command+z in the frontmost application
func Undo() Script {
	return Script{Source: fmt.Sprintf(
		`tell application "System Events" to keystroke %s using command down`,
		Quote(undoKeystrokeValue),
	)}
}

// Activate brings app to the front and, when window is set, raises that window
func Activate(a domain.Activate) Script {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application %s\n", Quote(a.Application))
	b.WriteString("\tactivate\n")
	if a.Window != "" {
		fmt.Fprintf(&b, "\tset index of window %s to 1\n", Quote(a.Window))
	}
	b.WriteString("end tell\n")
	return Script{Source: b.String()}
}

// Terminal opens a new iTerm window with the default profile, types the command
// and renames the window through the Window menu
func Terminal(t domain.Terminal) Script {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application %s\n", Quote(terminalApp))
	b.WriteString("\tcreate window with default profile\n")
	b.WriteString("\ttell current window\n")
	b.WriteString("\t\ttell current session\n")
	fmt.Fprintf(&b, "\t\t\twrite text %s\n", Quote(t.Command))
	b.WriteString("\t\tend tell\n")
	b.WriteString("\tend tell\n")
	b.WriteString("end tell\n")
	if t.Window != "" {
		b.WriteString("tell application \"System Events\"\n")
		fmt.Fprintf(&b, "\ttell process %s\n", Quote(terminalProcess))
		fmt.Fprintf(&b, "\t\tclick menu item %s of menu \"Window\" of menu bar 1\n", Quote(windowTitleMenu))
		fmt.Fprintf(&b, "\t\tdelay %s\n", windowTitleDelay)
		fmt.Fprintf(&b, "\t\tkeystroke %s\n", Quote(t.Window))
		fmt.Fprintf(&b, "\t\tkey code %d\n", returnKeyCode)
		b.WriteString("\tend tell\n")
		b.WriteString("end tell\n")
	}
	return Script{Source: b.String()}
}

// BrowserTab searches every Chrome tab for a URL containing the fragment and
// raises it, or opens a new tab. The fragment travels as argv, never inline.
func BrowserTab(t domain.BrowserTab) Script {
	source := fmt.Sprintf(`on run argv
	set urlSubstring to item 1 of argv
	tell application %s
		activate
		repeat with w in windows
			set tabIndex to 1
			repeat with t in tabs of w
				if urlSubstring is in (URL of t as string) then
					set active tab index of w to tabIndex
					set index of w to 1
					return "Tab found and activated."
				end if
				set tabIndex to tabIndex + 1
			end repeat
		end repeat
		if (count of windows) is 0 then
			make new window
		end if
		tell front window
			make new tab with properties {URL:%s & urlSubstring}
		end tell
		return "New tab created with URL: " & %s & urlSubstring
	end tell
end run
`, Quote(browserApp), Quote(browserURLScheme), Quote(browserURLScheme))
	return Script{Source: source, Args: []string{t.URLFragment}}
}

// ForStep generates the script for one action step
func ForStep(step domain.ActionStep) (Script, error) {
	switch step.Kind {
	case domain.ActionActivate:
		if step.Activate != nil {
			return Activate(*step.Activate), nil
		}
	case domain.ActionTerminal:
		if step.Terminal != nil {
			return Terminal(*step.Terminal), nil
		}
	case domain.ActionBrowserTab:
		if step.BrowserTab != nil {
			return BrowserTab(*step.BrowserTab), nil
		}
	}
	return Script{}, fmt.Errorf("%w: no script for kind %q", domain.ErrInvalidStep, step.Kind)
}
