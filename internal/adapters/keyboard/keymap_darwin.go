//go:build darwin

package keyboard

import "github.com/renato0307/autokey/internal/domain"

// macOS virtual key codes (Carbon kVK_* constants), as reported in Rawcode
var namedRawcodes = map[uint16]string{
	36:  "enter",
	48:  "tab",
	49:  "space",
	51:  "backspace",
	53:  "esc",
	54:  domain.KeyCmdRight,
	55:  domain.KeyCmd,
	56:  keyShift,
	57:  "caps_lock",
	58:  "alt",
	59:  "ctrl",
	60:  keyShiftR,
	61:  "alt_r",
	62:  "ctrl_r",
	64:  "f17",
	79:  "f18",
	80:  "f19",
	90:  "f20",
	96:  "f5",
	97:  "f6",
	98:  "f7",
	99:  "f3",
	100: "f8",
	101: "f9",
	103: "f11",
	105: "f13",
	106: "f16",
	107: "f14",
	109: "f10",
	111: "f12",
	113: "f15",
	118: "f4",
	120: "f2",
	122: "f1",
	123: "left",
	124: "right",
	125: "down",
	126: "up",
}

// US layout characters for the ANSI key positions
var charRawcodes = map[uint16]rune{
	0:  'a',
	1:  's',
	2:  'd',
	3:  'f',
	4:  'h',
	5:  'g',
	6:  'z',
	7:  'x',
	8:  'c',
	9:  'v',
	11: 'b',
	12: 'q',
	13: 'w',
	14: 'e',
	15: 'r',
	16: 'y',
	17: 't',
	18: '1',
	19: '2',
	20: '3',
	21: '4',
	22: '6',
	23: '5',
	24: '=',
	25: '9',
	26: '7',
	27: '-',
	28: '8',
	29: '0',
	30: ']',
	31: 'o',
	32: 'u',
	33: '[',
	34: 'i',
	35: 'p',
	37: 'l',
	38: 'j',
	39: '\'',
	40: 'k',
	41: ';',
	42: '\\',
	43: ',',
	44: '/',
	45: 'n',
	46: 'm',
	47: '.',
	50: '`',
}

func keyForRawcode(rawcode uint16) (domain.Key, bool) {
	if name, ok := namedRawcodes[rawcode]; ok {
		return domain.NamedKey(name), true
	}
	if r, ok := charRawcodes[rawcode]; ok {
		return domain.CharKey(r), true
	}
	return domain.Key{}, false
}
