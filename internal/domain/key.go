package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyKind distinguishes keys that produce a character from symbolic keys
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyNamed
)

// Direction is the press/release direction of a key event
type Direction int

const (
	Press Direction = iota
	Release
)

// String returns the direction name used in logs
func (d Direction) String() string {
	if d == Release {
		return "release"
	}
	return "press"
}

// Command modifier names as reported by the key sources
const (
	KeyCmd      = "cmd"
	KeyCmdRight = "cmd_r"
)

// Key identifies a physical key. It is comparable and used as the held-keys set member.
type Key struct {
	Kind KeyKind
	Char rune   // set when Kind == KeyChar
	Name string // set when Kind == KeyNamed
}

// CharKey builds a character key
func CharKey(r rune) Key {
	return Key{Kind: KeyChar, Char: r}
}

// NamedKey builds a named key, normalizing the name to lower case
func NamedKey(name string) Key {
	return Key{Kind: KeyNamed, Name: strings.ToLower(name)}
}

// IsCommand reports whether the key is a command modifier
func (k Key) IsCommand() bool {
	return k.Kind == KeyNamed && (k.Name == KeyCmd || k.Name == KeyCmdRight)
}

// Digit returns the digit value of a character key holding '0'..'9'
func (k Key) Digit() (int, bool) {
	if k.Kind != KeyChar || k.Char < '0' || k.Char > '9' {
		return 0, false
	}
	return int(k.Char - '0'), true
}

// String renders the key for logs and diagnostics
func (k Key) String() string {
	if k.Kind == KeyChar {
		return strconv.QuoteRune(k.Char)
	}
	return k.Name
}

// KeyEvent is a single press or release observed by a key source
type KeyEvent struct {
	Key       Key
	Direction Direction
}

// CharPress creates a press event for a character key
func CharPress(r rune) KeyEvent {
	return KeyEvent{Key: CharKey(r), Direction: Press}
}

// CharRelease creates a release event for a character key
func CharRelease(r rune) KeyEvent {
	return KeyEvent{Key: CharKey(r), Direction: Release}
}

// NamedPress creates a press event for a named key
func NamedPress(name string) KeyEvent {
	return KeyEvent{Key: NamedKey(name), Direction: Press}
}

// NamedRelease creates a release event for a named key
func NamedRelease(name string) KeyEvent {
	return KeyEvent{Key: NamedKey(name), Direction: Release}
}

// String renders the event for logs
func (e KeyEvent) String() string {
	return fmt.Sprintf("%s %s", e.Direction, e.Key)
}

// IsFunctionKeyName reports whether name is a literal "f" followed by one or more digits
func IsFunctionKeyName(name string) bool {
	if len(name) < 2 || name[0] != 'f' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FunctionKeyIndex parses the numeric suffix of a function key name ("f3" -> 3)
func FunctionKeyIndex(name string) (int, bool) {
	if !IsFunctionKeyName(name) {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
