//go:build !darwin

package keyboard

import (
	"strings"
	"unicode/utf8"

	hook "github.com/robotn/gohook"

	"github.com/renato0307/autokey/internal/domain"
)

// commandAliases are the names the hook uses for the platform command key
var commandAliases = map[string]string{
	"cmd":     domain.KeyCmd,
	"command": domain.KeyCmd,
	"lcmd":    domain.KeyCmd,
	"super":   domain.KeyCmd,
	"win":     domain.KeyCmd,
	"rcmd":    domain.KeyCmdRight,
}

func keyForRawcode(rawcode uint16) (domain.Key, bool) {
	return keyForName(hook.RawcodetoKeychar(rawcode))
}

// keyForName normalizes the hook's key names to autokey keys
func keyForName(name string) (domain.Key, bool) {
	if name == "" {
		return domain.Key{}, false
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return domain.CharKey(r), true
	}

	lower := strings.ToLower(name)
	if alias, ok := commandAliases[lower]; ok {
		return domain.NamedKey(alias), true
	}
	switch lower {
	case "lshift":
		return domain.NamedKey(keyShift), true
	case "rshift":
		return domain.NamedKey(keyShiftR), true
	}
	return domain.NamedKey(lower), true
}
