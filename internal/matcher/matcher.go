// Package matcher turns a stream of raw key events into triggers.
//
// A Matcher owns all rolling state (the last three character presses and the
// set of held keys) and is not safe for concurrent use. The listener feeds it
// one event at a time from a single goroutine.
package matcher

import (
	"sort"

	"github.com/renato0307/autokey/internal/domain"
)

// ChordPolicy controls when command+digit chords are emitted
type ChordPolicy int

const (
	// ChordOnTransition emits a chord only on the press that completes it.
	// Presses of unrelated keys and auto-repeats of held keys do not re-fire.
	ChordOnTransition ChordPolicy = iota
	// ChordEveryPress re-emits every held chord on each press while it is held.
	ChordEveryPress
)

// String returns the policy name used in logs
func (p ChordPolicy) String() string {
	if p == ChordEveryPress {
		return "every-press"
	}
	return "on-transition"
}

const bufferSize = 3

// Matcher recognizes triplet, function key and chord triggers
type Matcher struct {
	buffer []rune
	held   map[domain.Key]struct{}
	policy ChordPolicy
}

// New creates a Matcher with empty state
func New(policy ChordPolicy) *Matcher {
	return &Matcher{
		buffer: make([]rune, 0, bufferSize),
		held:   make(map[domain.Key]struct{}),
		policy: policy,
	}
}

// Process consumes one event and returns the triggers it completes, in emission order
func (m *Matcher) Process(ev domain.KeyEvent) []domain.Trigger {
	var triggers []domain.Trigger

	if ev.Direction == domain.Press {
		switch ev.Key.Kind {
		case domain.KeyChar:
			if t, ok := m.pushChar(ev.Key.Char); ok {
				triggers = append(triggers, t)
			}
		case domain.KeyNamed:
			if domain.IsFunctionKeyName(ev.Key.Name) {
				triggers = append(triggers, domain.NamedTrigger(ev.Key.Name))
			}
		}
	}

	_, wasHeld := m.held[ev.Key]
	if ev.Direction == domain.Press {
		m.held[ev.Key] = struct{}{}
		triggers = append(triggers, m.chords(ev.Key, wasHeld)...)
	} else {
		delete(m.held, ev.Key)
	}

	return triggers
}

// pushChar appends to the rolling buffer and reports a completed triplet
func (m *Matcher) pushChar(r rune) (domain.Trigger, bool) {
	if len(m.buffer) == bufferSize {
		copy(m.buffer, m.buffer[1:])
		m.buffer = m.buffer[:bufferSize-1]
	}
	m.buffer = append(m.buffer, r)

	if len(m.buffer) < bufferSize {
		return domain.Trigger{}, false
	}
	for _, c := range m.buffer[1:] {
		if c != m.buffer[0] {
			return domain.Trigger{}, false
		}
	}
	return domain.TripletTrigger(r), true
}

// chords evaluates command+digit combinations after pressed has been added to the held set
func (m *Matcher) chords(pressed domain.Key, wasHeld bool) []domain.Trigger {
	commands := m.commandsHeld()
	if commands == 0 {
		return nil
	}

	if m.policy == ChordOnTransition {
		if wasHeld {
			return nil
		}
		if d, ok := pressed.Digit(); ok {
			return []domain.Trigger{domain.ChordTrigger(d)}
		}
		// a second command key does not complete anything new
		if !pressed.IsCommand() || commands > 1 {
			return nil
		}
	}

	var triggers []domain.Trigger
	for d := 0; d <= 9; d++ {
		if _, ok := m.held[domain.CharKey(rune('0'+d))]; ok {
			triggers = append(triggers, domain.ChordTrigger(d))
		}
	}
	return triggers
}

func (m *Matcher) commandsHeld() int {
	n := 0
	for k := range m.held {
		if k.IsCommand() {
			n++
		}
	}
	return n
}

// Reset clears the rolling buffer and the held set
func (m *Matcher) Reset() {
	m.buffer = m.buffer[:0]
	clear(m.held)
}

// Held returns the currently held keys, sorted for stable diagnostics
func (m *Matcher) Held() []domain.Key {
	keys := make([]domain.Key, 0, len(m.held))
	for k := range m.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Buffer returns a copy of the rolling character buffer, oldest first
func (m *Matcher) Buffer() []rune {
	return append([]rune(nil), m.buffer...)
}
