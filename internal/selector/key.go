package selector

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"atomicgo.dev/keyboard/keys"
)

// Key identifies a key press. It is the name atomicgo's keys package gives a
// key ("up", "enter", "ctrl+c", "alt+x") or the typed rune itself ("j").
type Key string

// Keys used by the default keymaps.
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyEnter Key = "enter"
	KeySpace Key = "space"
	KeyCtrlC Key = "ctrl+c"
)

const altPrefix = "alt+"

// KeyOf converts a decoded key press into its keymap identity.
func KeyOf(k keys.Key) Key {
	// A bare space may arrive as a rune (simulated input) or as keys.Space.
	if k.Code == keys.RuneKey && len(k.Runes) == 1 && k.Runes[0] == ' ' {
		if k.AltPressed {
			return Key(altPrefix + string(KeySpace))
		}
		return KeySpace
	}
	return Key(k.String())
}

// RuneKey returns the identity of a printable character.
func RuneKey(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	return Key(string(r))
}

var namedKeys = func() map[string]struct{} {
	names := make(map[string]struct{})
	for c := keys.KeyCode(-64); c <= 127; c++ {
		if c == keys.RuneKey {
			continue
		}
		if n := c.String(); n != "" {
			names[n] = struct{}{}
		}
	}
	return names
}()

// ParseKey validates a key name as written in a config file or on the
// command line. Named keys are case-insensitive; a single character is taken
// literally so "J" and "j" stay distinct.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return "", fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return RuneKey(r), nil
	}

	name := strings.ToLower(s)
	if strings.HasPrefix(name, altPrefix) {
		rest := s[len(altPrefix):]
		if utf8.RuneCountInString(rest) == 1 {
			r, _ := utf8.DecodeRuneInString(rest)
			return Key(altPrefix + string(RuneKey(r))), nil
		}
	}
	base := strings.TrimPrefix(name, altPrefix)
	if _, ok := namedKeys[base]; !ok {
		return "", fmt.Errorf("unknown key %q", s)
	}
	return Key(name), nil
}

// Display renders the key for help text.
func (k Key) Display() string {
	switch k {
	case KeyUp:
		return "↑"
	case KeyDown:
		return "↓"
	}
	return string(k)
}
