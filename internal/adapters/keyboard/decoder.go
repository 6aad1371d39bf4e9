package keyboard

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/renato0307/autokey/internal/domain"
)

const esc = 0x1b

// maxSequence bounds an unterminated escape sequence before it is dropped
const maxSequence = 16

// SS3 function keys (xterm F1-F4: ESC O P..S)
var ss3FunctionKeys = map[byte]string{
	'P': "f1",
	'Q': "f2",
	'R': "f3",
	'S': "f4",
}

// CSI function keys (vt220: ESC [ <n> ~)
var csiFunctionKeys = map[int]string{
	11: "f1",
	12: "f2",
	13: "f3",
	14: "f4",
	15: "f5",
	17: "f6",
	18: "f7",
	19: "f8",
	20: "f9",
	21: "f10",
	23: "f11",
	24: "f12",
	25: "f13",
	26: "f14",
	28: "f15",
	29: "f16",
	31: "f17",
	32: "f18",
	33: "f19",
	34: "f20",
}

var controlKeys = map[rune]string{
	'\r': "enter",
	'\n': "enter",
	'\t': "tab",
	0x7f: "backspace",
}

// Decoder turns terminal input bytes into key events. A terminal only
// reports presses, so every key yields a press immediately followed by its
// release. Meta+digit (ESC followed by a digit, what terminals send for
// Option/Alt+digit) is reported as the command key held around the digit.
type Decoder struct {
	interrupted bool
	pending     []byte
}

// NewDecoder creates a new Decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed consumes p and returns every complete key it finishes.
// Incomplete escape sequences stay pending for the next call.
func (d *Decoder) Feed(p []byte) []domain.KeyEvent {
	d.pending = append(d.pending, p...)

	var out []domain.KeyEvent
	for len(d.pending) > 0 && !d.interrupted {
		evs, n := d.decodeOne(d.pending)
		if n == 0 {
			break
		}
		out = append(out, evs...)
		d.pending = d.pending[n:]
	}
	return out
}

// Pending reports whether an incomplete sequence is buffered
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush resolves whatever is pending once no more input is coming.
// A lone ESC becomes the escape key; anything else is dropped.
func (d *Decoder) Flush() []domain.KeyEvent {
	defer func() { d.pending = nil }()
	if len(d.pending) == 1 && d.pending[0] == esc {
		return tap(domain.NamedKey("esc"))
	}
	return nil
}

// Interrupted reports whether Ctrl-C was read
func (d *Decoder) Interrupted() bool {
	return d.interrupted
}

// decodeOne decodes the key at the start of b. n == 0 means more bytes are needed.
func (d *Decoder) decodeOne(b []byte) (evs []domain.KeyEvent, n int) {
	if b[0] == esc {
		return d.decodeEscape(b)
	}

	if !utf8.FullRune(b) {
		return nil, 0
	}
	r, size := utf8.DecodeRune(b)

	if r == 0x03 {
		d.interrupted = true
		return nil, size
	}
	if name, ok := controlKeys[r]; ok {
		return tap(domain.NamedKey(name)), size
	}
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return nil, size
	}
	return tap(domain.CharKey(r)), size
}

func (d *Decoder) decodeEscape(b []byte) ([]domain.KeyEvent, int) {
	if len(b) < 2 {
		return nil, 0
	}

	switch next := b[1]; {
	case next == 'O':
		if len(b) < 3 {
			return nil, 0
		}
		if name, ok := ss3FunctionKeys[b[2]]; ok {
			return tap(domain.NamedKey(name)), 3
		}
		return nil, 3

	case next == '[':
		return decodeCSI(b)

	case next >= '0' && next <= '9':
		cmd := domain.NamedKey(domain.KeyCmd)
		digit := domain.CharKey(rune(next))
		return []domain.KeyEvent{
			{Key: cmd, Direction: domain.Press},
			{Key: digit, Direction: domain.Press},
			{Key: digit, Direction: domain.Release},
			{Key: cmd, Direction: domain.Release},
		}, 2
	}

	return tap(domain.NamedKey("esc")), 1
}

// decodeCSI handles ESC [ <params> <final>
func decodeCSI(b []byte) ([]domain.KeyEvent, int) {
	for i := 2; i < len(b); i++ {
		c := b[i]
		if c < 0x40 || c > 0x7e {
			if i >= maxSequence {
				return nil, i
			}
			continue
		}

		params := string(b[2:i])
		n := i + 1

		// modifiers after ';' are ignored: shift+F5 still reads as f5
		first, _, _ := strings.Cut(params, ";")

		switch {
		case c == '~':
			code, err := strconv.Atoi(first)
			if err != nil {
				return nil, n
			}
			if name, ok := csiFunctionKeys[code]; ok {
				return tap(domain.NamedKey(name)), n
			}
		case c >= 'P' && c <= 'S' && (first == "" || first == "1"):
			return tap(domain.NamedKey(ss3FunctionKeys[c])), n
		case c == 'A':
			return tap(domain.NamedKey("up")), n
		case c == 'B':
			return tap(domain.NamedKey("down")), n
		case c == 'C':
			return tap(domain.NamedKey("right")), n
		case c == 'D':
			return tap(domain.NamedKey("left")), n
		}
		return nil, n
	}

	if len(b) >= maxSequence {
		return nil, len(b)
	}
	return nil, 0
}

// tap is a press immediately followed by its release
func tap(k domain.Key) []domain.KeyEvent {
	return []domain.KeyEvent{
		{Key: k, Direction: domain.Press},
		{Key: k, Direction: domain.Release},
	}
}
