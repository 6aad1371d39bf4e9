package keyboard

import (
	"context"
	"errors"
	"unicode"

	hook "github.com/robotn/gohook"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/ports"
)

// ErrHookStopped is returned when the OS hook closes its event channel
var ErrHookStopped = errors.New("keyboard hook stopped")

// Shift keys are tracked so letters typed with shift match their upper-case triplets
const (
	keyShift  = "shift"
	keyShiftR = "shift_r"
)

// HookSource implements ports.KeySource with a global OS keyboard hook
type HookSource struct {
	end    func()
	keymap func(rawcode uint16) (domain.Key, bool)
	start  func() chan hook.Event

	pressed map[uint16]domain.Key
	shifted int
}

// Compile-time interface verification
var _ ports.KeySource = (*HookSource)(nil)

// NewHookSource creates a source backed by robotn/gohook
func NewHookSource() *HookSource {
	return &HookSource{
		end:     hook.End,
		keymap:  keyForRawcode,
		start:   hook.Start,
		pressed: make(map[uint16]domain.Key),
	}
}

// Run implements ports.KeySource.Run
func (s *HookSource) Run(ctx context.Context, events chan<- domain.KeyEvent) error {
	raw := s.start()
	defer s.end()

	logging.Logger.Info("Keyboard hook started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-raw:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrHookStopped
			}
			ke, ok := s.translate(ev)
			if !ok {
				continue
			}
			select {
			case events <- ke:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// translate maps a hook event to a key event. The hook reports a physical
// press as KeyHold and a release as KeyUp; KeyDown carries only the typed
// character and is ignored so each press is counted once.
func (s *HookSource) translate(ev hook.Event) (domain.KeyEvent, bool) {
	switch ev.Kind {
	case hook.KeyHold:
		// auto-repeat presses count again, with the key chosen on the first press
		if key, repeat := s.pressed[ev.Rawcode]; repeat {
			return domain.KeyEvent{Key: key, Direction: domain.Press}, true
		}
		key, ok := s.keymap(ev.Rawcode)
		if !ok {
			logging.Logger.Debug("Unmapped key press", "rawcode", ev.Rawcode, "keycode", ev.Keycode)
			return domain.KeyEvent{}, false
		}
		if isShift(key) {
			s.shifted++
		}
		if key.Kind == domain.KeyChar && s.shifted > 0 {
			key = domain.CharKey(shiftChar(key.Char))
		}
		s.pressed[ev.Rawcode] = key
		return domain.KeyEvent{Key: key, Direction: domain.Press}, true

	case hook.KeyUp:
		key, ok := s.pressed[ev.Rawcode]
		if !ok {
			return domain.KeyEvent{}, false
		}
		delete(s.pressed, ev.Rawcode)
		if isShift(key) && s.shifted > 0 {
			s.shifted--
		}
		return domain.KeyEvent{Key: key, Direction: domain.Release}, true
	}
	return domain.KeyEvent{}, false
}

// usShifted maps the US layout's unshifted symbol keys to what shift types
var usShifted = map[rune]rune{
	'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')', '-': '_',
	'=': '+', '[': '{', ']': '}', '\\': '|', ';': ':', '\'': '"',
	',': '<', '.': '>', '/': '?',
}

func shiftChar(r rune) rune {
	if shifted, ok := usShifted[r]; ok {
		return shifted
	}
	return unicode.ToUpper(r)
}

func isShift(k domain.Key) bool {
	return k.Kind == domain.KeyNamed && (k.Name == keyShift || k.Name == keyShiftR)
}
